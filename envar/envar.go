package envar

import (
	"os"
	"strings"
)

const (
	// MockframeConfig overrides the default config file
	MockframeConfig = "MOCKFRAME_CONFIG"
)

// ConfigFile returns the config file named by $MOCKFRAME_CONFIG, ok is false when it is unset or blank
func ConfigFile() (path string, ok bool) {
	path = strings.TrimSpace(os.Getenv(MockframeConfig))
	return path, path != ""
}
