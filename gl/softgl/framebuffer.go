// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softgl

import (
	"github.com/gogpu/gloo/gl"
)

const clearMask = gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT

// Clear implements gl.Functions. It honours the scissor test, the color
// write mask, the depth write mask and the front stencil write mask.
func (c *Context) Clear(mask gl.Enum) {
	if mask&^clearMask != 0 {
		c.fail(gl.INVALID_VALUE)
		return
	}
	x0, y0, x1, y1 := 0, 0, c.width, c.height
	if c.caps[gl.SCISSOR_TEST] {
		s := c.scissor
		x0, y0 = max(x0, int(s[0])), max(y0, int(s[1]))
		x1, y1 = min(x1, int(s[0]+s[2])), min(y1, int(s[1]+s[3]))
	}
	var rgba [4]uint8
	for i, v := range c.clearColor {
		rgba[i] = toUnorm8(v)
	}
	stencil := uint8(c.clearStenc)
	smask := uint8(c.front.writeMask)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := y*c.width + x
			if mask&gl.COLOR_BUFFER_BIT != 0 {
				px := c.color[i*4 : i*4+4]
				for ch := range 4 {
					if c.colorMask[ch] {
						px[ch] = rgba[ch]
					}
				}
			}
			if mask&gl.DEPTH_BUFFER_BIT != 0 && c.depthMask {
				c.depth[i] = c.clearDepth
			}
			if mask&gl.STENCIL_BUFFER_BIT != 0 {
				c.stencil[i] = c.stencil[i]&^smask | stencil&smask
			}
		}
	}
}

// ReadPixels implements gl.Functions. Pixels outside the framebuffer read
// as zero.
func (c *Context) ReadPixels(dst []byte, x, y, width, height int32, format, ty gl.Enum) {
	if width < 0 || height < 0 {
		c.fail(gl.INVALID_VALUE)
		return
	}
	var channels int
	switch format {
	case gl.RGBA:
		channels = 4
	case gl.RGB:
		channels = 3
	default:
		c.fail(gl.INVALID_ENUM)
		return
	}
	if ty != gl.UNSIGNED_BYTE {
		c.fail(gl.INVALID_ENUM)
		return
	}
	w, h := int(width), int(height)
	if len(dst) < w*h*channels {
		c.fail(gl.INVALID_OPERATION)
		return
	}
	for row := range h {
		fy := int(y) + row
		for col := range w {
			fx := int(x) + col
			out := dst[(row*w+col)*channels : (row*w+col+1)*channels]
			if fx < 0 || fy < 0 || fx >= c.width || fy >= c.height {
				clear(out)
				continue
			}
			i := (fy*c.width + fx) * 4
			copy(out, c.color[i:i+channels])
		}
	}
}

// DepthAt returns the depth buffer value at (x, y), bottom row first.
func (c *Context) DepthAt(x, y int) float32 {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.depth[y*c.width+x]
}

// StencilAt returns the stencil buffer value at (x, y), bottom row first.
func (c *Context) StencilAt(x, y int) uint8 {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.stencil[y*c.width+x]
}
