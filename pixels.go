// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gloo/gl"
)

// Pixels is a snapshot of a framebuffer region, stored top row first.
type Pixels struct {
	width    int
	height   int
	channels int     // 3 (RGB) or 4 (RGBA)
	data     []uint8 // row-major, width*channels bytes per row
}

// Width returns the width of the snapshot.
func (p *Pixels) Width() int {
	return p.width
}

// Height returns the height of the snapshot.
func (p *Pixels) Height() int {
	return p.height
}

// Channels returns 4 for RGBA snapshots and 3 for RGB.
func (p *Pixels) Channels() int {
	return p.channels
}

// Data returns the raw bytes, top row first.
func (p *Pixels) Data() []uint8 {
	return p.data
}

// Pixel returns the channels of one pixel, or nil outside the snapshot.
// The returned slice aliases Data.
func (p *Pixels) Pixel(x, y int) []uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return nil
	}
	i := (y*p.width + x) * p.channels
	return p.data[i : i+p.channels : i+p.channels]
}

// At implements the image.Image interface.
func (p *Pixels) At(x, y int) color.Color {
	px := p.Pixel(x, y)
	if px == nil {
		return color.NRGBA{}
	}
	c := color.NRGBA{R: px[0], G: px[1], B: px[2], A: 255}
	if p.channels == 4 {
		c.A = px[3]
	}
	return c
}

// Bounds implements the image.Image interface.
func (p *Pixels) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixels) ColorModel() color.Model {
	return color.NRGBAModel
}

// Image converts the snapshot to an image.NRGBA. RGB snapshots become
// opaque.
func (p *Pixels) Image() *image.NRGBA {
	img := image.NewNRGBA(p.Bounds())
	if p.channels == 4 {
		copy(img.Pix, p.data)
		return img
	}
	for i, j := 0, 0; i < len(p.data); i, j = i+3, j+4 {
		img.Pix[j+0] = p.data[i+0]
		img.Pix[j+1] = p.data[i+1]
		img.Pix[j+2] = p.data[i+2]
		img.Pix[j+3] = 255
	}
	return img
}

// SavePNG saves the snapshot to a PNG file.
func (p *Pixels) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("gloo: create file: %w", err)
	}
	if err := png.Encode(f, p.Image()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadPixels reads a framebuffer region as 8-bit RGBA, or RGB when alpha
// is false. A nil viewport reads the current viewport; otherwise it must
// hold exactly x, y, width and height.
//
// GL returns rows bottom first; the snapshot is flipped so row 0 is the
// top of the region.
func (c *Context) ReadPixels(viewport []int, alpha bool) (*Pixels, error) {
	if viewport == nil {
		v, err := c.GetParameter("viewport")
		if err != nil {
			return nil, err
		}
		viewport = v.([]int)
	}
	if len(viewport) != 4 {
		return nil, invalid("viewport", "want 4 values, got %d", len(viewport))
	}
	x, y, w, h := viewport[0], viewport[1], viewport[2], viewport[3]
	if w < 0 || h < 0 {
		return nil, invalid("viewport", "negative size %dx%d", w, h)
	}
	for _, v := range viewport {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, invalid("viewport", "%d out of int32 range", v)
		}
	}

	format, channels := gl.RGB, 3
	if alpha {
		format, channels = gl.RGBA, 4
	}
	buf := make([]uint8, w*h*channels)
	err := c.call("ReadPixels", func() {
		c.fns.ReadPixels(buf, int32(x), int32(y), int32(w), int32(h), format, gl.UNSIGNED_BYTE)
	})
	if err != nil {
		return nil, err
	}

	stride := w * channels
	row := make([]uint8, stride)
	for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := buf[top*stride : (top+1)*stride]
		b := buf[bottom*stride : (bottom+1)*stride]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}
	return &Pixels{width: w, height: h, channels: channels, data: buf}, nil
}
