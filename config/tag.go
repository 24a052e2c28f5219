package config

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// TagString
// Extra encoder options in struct tag syntax.
// Example: quality:"90" compression:"best"
type TagString reflect.StructTag

func (d TagString) Get(key string) string {
	return reflect.StructTag(d).Get(key)
}

// GetInt parses key as an integer, a missing key gives defaultValue
func (d TagString) GetInt(key string, defaultValue int) (int, error) {
	value := d.Get(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// GetIntIn is GetInt limited to [lo, hi]
func (d TagString) GetIntIn(key string, defaultValue, lo, hi int) (int, error) {
	n, err := d.GetInt(key, defaultValue)
	if err != nil {
		return 0, err
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%s should be in [%d, %d], got %d", key, lo, hi, n)
	}
	return n, nil
}

// GetOneOf returns the value of key if it is one of choices, a missing key gives choices[0]
func (d TagString) GetOneOf(key string, choices ...string) (string, error) {
	value := d.Get(key)
	if value == "" && len(choices) > 0 {
		return choices[0], nil
	}
	if !slices.Contains(choices, value) {
		return "", fmt.Errorf("%s should be one of %v, got %s", key, choices, value)
	}
	return value, nil
}
