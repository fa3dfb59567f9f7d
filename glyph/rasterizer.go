package glyph

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Rasterizer converts an SVG file to PNG bytes of the given pixel width.
// Failures are reported as *RasterizationError.
type Rasterizer interface {
	Rasterize(ctx context.Context, vectorPath string, width int) ([]byte, error)
}

// ExecRasterizer runs an external Inkscape compatible executable and reads
// the PNG from its standard output:
//
//	<Path> <svg> -w <width> --export-type png -o -
type ExecRasterizer struct {
	Path string

	// Timeout bounds one run. Zero means the run is bounded by ctx only.
	Timeout time.Duration
}

// Rasterize implements Rasterizer. It blocks until the process exits.
func (r *ExecRasterizer) Rasterize(ctx context.Context, vectorPath string, width int) ([]byte, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	// #nosec G204 -- the executable is part of the caller's configuration
	cmd := exec.CommandContext(ctx, r.Path,
		vectorPath,
		"-w", strconv.Itoa(width),
		"--export-type", "png",
		"-o", "-",
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(ctxErr, err)
		}
		return nil, &RasterizationError{
			Path:   vectorPath,
			Kind:   ErrProcess,
			Err:    err,
			Stderr: strings.TrimSpace(stderr.String()),
		}
	}
	if stdout.Len() == 0 {
		return nil, &RasterizationError{
			Path:   vectorPath,
			Kind:   ErrOutput,
			Err:    errors.New("empty standard output"),
			Stderr: strings.TrimSpace(stderr.String()),
		}
	}
	return stdout.Bytes(), nil
}
