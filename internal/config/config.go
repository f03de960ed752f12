package config

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Config holds the effective settings for the shell window.
type Config struct {
	// Display names the X server, e.g. ":1". Empty means $DISPLAY.
	Display     string `yaml:"display"`
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	BorderWidth int    `yaml:"border_width"`
	LogLevel    string `yaml:"log_level"`
}

const (
	DefaultTitle       = "termwin"
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultBorderWidth = 2
	DefaultLogLevel    = "info"
)

// LogLevels lists the accepted log_level values.
var LogLevels = []string{"debug", "info", "warning", "error"}

// DefaultConfig returns the built-in settings used when no file or flag
// overrides them.
func DefaultConfig() *Config {
	return &Config{
		Title:       DefaultTitle,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		BorderWidth: DefaultBorderWidth,
		LogLevel:    DefaultLogLevel,
	}
}

type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
	SourceFlag    SourceKind = "flag"
)

// Source records where a setting was last written.
type Source struct {
	Kind   SourceKind
	File   string
	Line   int
	Column int
}

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return &ValidationError{Path: "title", Err: fmt.Errorf("title must not be empty")}
	}
	if c.Width < 1 || c.Width > math.MaxUint16 {
		return &ValidationError{Path: "width", Err: fmt.Errorf("width must be between 1 and %d", math.MaxUint16)}
	}
	if c.Height < 1 || c.Height > math.MaxUint16 {
		return &ValidationError{Path: "height", Err: fmt.Errorf("height must be between 1 and %d", math.MaxUint16)}
	}
	if c.BorderWidth < 0 || c.BorderWidth > math.MaxUint16 {
		return &ValidationError{Path: "border_width", Err: fmt.Errorf("border_width must be between 0 and %d", math.MaxUint16)}
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: %s", strings.Join(LogLevels, ", "))}
	}
	return nil
}
