package config

import (
	"errors"
	"fmt"
	"github.com/allape/gogger"
	"github.com/allape/mockframe/envar"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var l = gogger.New("mockframe.config")

const DefaultConfigPath = "mockframe.toml"

type OutputFormat string

const (
	FormatAuto OutputFormat = "auto"
	FormatPNG  OutputFormat = "png"
	FormatJPEG OutputFormat = "jpeg"
	FormatGIF  OutputFormat = "gif"
	FormatBMP  OutputFormat = "bmp"
	FormatTIFF OutputFormat = "tiff"
)

var ErrInvalidConfig = errors.New("invalid config")

type Assets struct {
	Background string `toml:"background" yaml:"background"`
	Frame      string `toml:"frame" yaml:"frame"`
	Artwork    string `toml:"artwork" yaml:"artwork"`
}

type Frame struct {
	// EdgeWidth
	// Slice thickness in pixels, the frame template must be larger than 2*EdgeWidth in both dimensions.
	EdgeWidth int `toml:"edge_width" yaml:"edge_width"`
	// ClipEdges
	// Stop the last edge tile of each side at the span end instead of letting it overdraw the next corner.
	ClipEdges bool `toml:"clip_edges" yaml:"clip_edges"`
}

type Output struct {
	Path   string       `toml:"path" yaml:"path"`
	Format OutputFormat `toml:"format" yaml:"format"`
	Ext    TagString    `toml:"ext" yaml:"ext"`
}

// Guide renders the slice regions over the frame template, disabled when Path is empty
type Guide struct {
	Path      string    `toml:"path" yaml:"path"`
	Ext       TagString `toml:"ext" yaml:"ext"`
	LineWidth float64   `toml:"line_width" yaml:"line_width"`
	FontSize  float64   `toml:"font_size" yaml:"font_size"`
}

// Mockup places the framed artwork on the background, disabled when Path is empty
type Mockup struct {
	Path   string    `toml:"path" yaml:"path"`
	Ext    TagString `toml:"ext" yaml:"ext"`
	Fit    bool      `toml:"fit" yaml:"fit"`
	Margin int       `toml:"margin" yaml:"margin"`
}

type Config struct {
	Assets Assets `toml:"assets" yaml:"assets"`
	Frame  Frame  `toml:"frame" yaml:"frame"`
	Output Output `toml:"output" yaml:"output"`
	Guide  Guide  `toml:"guide" yaml:"guide"`
	Mockup Mockup `toml:"mockup" yaml:"mockup"`
}

func Default() Config {
	return Config{
		Assets: Assets{
			Background: "back.jpg",
			Frame:      "frame.jpg",
			Artwork:    "art.jpg",
		},
		Frame: Frame{
			EdgeWidth: 40,
		},
		Output: Output{
			Path:   "output.png",
			Format: FormatAuto,
		},
		Guide: Guide{
			LineWidth: 2,
			FontSize:  14,
		},
	}
}

// GetConfig
// Reads configFile over the defaults.
// An empty configFile falls back to $MOCKFRAME_CONFIG and then DefaultConfigPath,
// only the last one is allowed to be missing.
func GetConfig(configFile string) (Config, error) {
	explicit := configFile != ""
	if !explicit {
		configFile, explicit = envar.ConfigFile()
	}
	if !explicit {
		configFile = DefaultConfigPath
	}

	config := Default()

	_, err := os.Stat(configFile)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			l.Warn().Println("config file not found, use defaults:", configFile)
			return config, config.Validate()
		}
		return config, err
	}

	l.Info().Println("reading config file:", configFile)

	configData, err := os.ReadFile(configFile)
	if err != nil {
		return config, err
	}

	err = Unmarshal(configFile, configData, &config)
	if err != nil {
		return config, fmt.Errorf("parse %s: %w", configFile, err)
	}

	config.Resolve(filepath.Dir(configFile))

	err = config.Validate()
	if err != nil {
		return config, err
	}

	l.Verbose().Println("use config:", config)

	return config, nil
}

// Unmarshal decodes YAML for .yaml/.yml files and TOML for everything else
func Unmarshal(name string, data []byte, config *Config) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, config)
	default:
		return toml.Unmarshal(data, config)
	}
}

// Resolve makes relative paths relative to dir
func (c *Config) Resolve(dir string) {
	for _, p := range []*string{
		&c.Assets.Background,
		&c.Assets.Frame,
		&c.Assets.Artwork,
		&c.Output.Path,
		&c.Guide.Path,
		&c.Mockup.Path,
	} {
		if *p == "" || filepath.IsAbs(*p) {
			continue
		}
		*p = filepath.Join(dir, *p)
	}
}

func (c Config) Validate() error {
	if c.Frame.EdgeWidth <= 0 {
		return fmt.Errorf("%w: edge_width must be positive, got %d", ErrInvalidConfig, c.Frame.EdgeWidth)
	}

	if c.Assets.Background == "" {
		return fmt.Errorf("%w: assets.background is empty", ErrInvalidConfig)
	} else if c.Assets.Frame == "" {
		return fmt.Errorf("%w: assets.frame is empty", ErrInvalidConfig)
	} else if c.Assets.Artwork == "" {
		return fmt.Errorf("%w: assets.artwork is empty", ErrInvalidConfig)
	}

	if c.Output.Path == "" {
		return fmt.Errorf("%w: output.path is empty", ErrInvalidConfig)
	}

	switch c.Output.Format {
	case "", FormatAuto, FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF:
	default:
		return fmt.Errorf("%w: unknown output format: %s", ErrInvalidConfig, c.Output.Format)
	}

	if c.Mockup.Margin < 0 {
		return fmt.Errorf("%w: mockup.margin must not be negative, got %d", ErrInvalidConfig, c.Mockup.Margin)
	}

	return nil
}
