package glyph

import (
	"errors"
	"fmt"
)

// Sentinel errors for glyph package.
var (
	// ErrThemeNotFound is returned when the requested theme has no directory
	// under the asset root.
	ErrThemeNotFound = errors.New("glyph: theme does not exist")

	// ErrInvalidSize is returned when a provider is asked for a non-positive
	// pixel size.
	ErrInvalidSize = errors.New("glyph: size must be positive")

	// ErrUnknownBackend is returned for an unrecognized Source.Backend.
	ErrUnknownBackend = errors.New("glyph: unknown rasterizer backend")

	// ErrInvalidPiece is returned when rendering a zero or out of range Piece.
	ErrInvalidPiece = errors.New("glyph: invalid piece")

	// ErrProcess marks a rasterizer that failed to run or exited non-zero.
	ErrProcess = errors.New("glyph: rasterizer process error")

	// ErrOutput marks a rasterizer whose output was missing or not a PNG.
	ErrOutput = errors.New("glyph: rasterizer output error")
)

// ConfigurationError reports an invalid provider configuration. It is
// returned by New before any glyph is rendered.
type ConfigurationError struct {
	Field string // "theme", "size", "backend", "asset root"
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v (%s %q)", e.Err, e.Field, e.Value)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// RasterizationError reports a failed vector to raster conversion.
// Kind is ErrProcess or ErrOutput; Err is the underlying cause.
type RasterizationError struct {
	Path   string // vector source
	Kind   error
	Err    error
	Stderr string // trimmed standard error of the process, if any
}

func (e *RasterizationError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *RasterizationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
