// Package utils holds small request parsing helpers shared by HTTP handlers.
package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParseFloatParam parses a required float query parameter.
func ParseFloatParam(values url.Values, name string) (float64, error) {
	raw := values.Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be a number, got %q", name, raw)
	}
	return v, nil
}

// ParseOptionalFloatParam parses an optional float query parameter, returning
// the fallback when absent.
func ParseOptionalFloatParam(values url.Values, name string, fallback float64) (float64, error) {
	raw := values.Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be a number, got %q", name, raw)
	}
	return v, nil
}

// ParseOptionalIntParam parses an optional integer query parameter, returning
// the fallback when absent.
func ParseOptionalIntParam(values url.Values, name string, fallback int) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be an integer, got %q", name, raw)
	}
	return v, nil
}
