// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for snapshot formats other than PNG,
// BMP and TIFF.
var ErrUnsupportedFormat = errors.New("gloo: unsupported image format")

// Encode writes the snapshot to w as "png", "bmp" or "tiff".
func (p *Pixels) Encode(w io.Writer, format string) error {
	img := p.Image()
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save writes the snapshot to path, picking the format from the file
// extension.
func (p *Pixels) Save(path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("gloo: create file: %w", err)
	}
	if err := p.Encode(f, format); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}

// Scaled returns an RGBA copy of the snapshot resampled to width x height
// with a Catmull-Rom filter.
func (p *Pixels) Scaled(width, height int) *Pixels {
	dst := image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), p.Image(), p.Bounds(), draw.Src, nil)
	return &Pixels{width: dst.Rect.Dx(), height: dst.Rect.Dy(), channels: 4, data: dst.Pix}
}
