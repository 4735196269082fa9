// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gloo/gl"
)

// BufferKind selects the binding target of a Buffer.
type BufferKind uint8

const (
	// VertexBuffer binds to GL_ARRAY_BUFFER.
	VertexBuffer BufferKind = iota
	// IndexBuffer binds to GL_ELEMENT_ARRAY_BUFFER.
	IndexBuffer
)

// Buffer is a GL buffer object. Its handle is 0 until Activate creates
// the native object.
type Buffer struct {
	c      *Context
	target gl.Enum
	size   int
	handle uint32
}

// NewBuffer describes a buffer of size bytes. No native call is made
// until Activate.
func (c *Context) NewBuffer(kind BufferKind, size int) (*Buffer, error) {
	if size < 0 {
		return nil, invalid("buffer", "negative size %d", size)
	}
	target := gl.ARRAY_BUFFER
	if kind == IndexBuffer {
		target = gl.ELEMENT_ARRAY_BUFFER
	}
	return &Buffer{c: c, target: target, size: size}, nil
}

// Handle returns the native name, or 0 if the buffer is not realised.
func (b *Buffer) Handle() uint32 { return b.handle }

// Target returns the binding target.
func (b *Buffer) Target() gl.Enum { return b.target }

// Size returns the size in bytes.
func (b *Buffer) Size() int { return b.size }

// Activate creates the native object on first use and binds it.
func (b *Buffer) Activate() error {
	if b.handle == 0 {
		if err := b.c.call("CreateBuffer", func() { b.handle = b.c.fns.CreateBuffer() }); err != nil {
			return err
		}
	}
	return b.c.call("BindBuffer", func() { b.c.fns.BindBuffer(b.target, b.handle) })
}

// Delete releases the native object. The buffer may be activated again.
func (b *Buffer) Delete() error {
	if b.handle == 0 {
		return nil
	}
	name := b.handle
	b.handle = 0
	return b.c.call("DeleteBuffer", func() { b.c.fns.DeleteBuffer(name) })
}

// Texture is a GL texture object. Like Buffer, the handle is 0 until
// Activate.
type Texture struct {
	c      *Context
	target gl.Enum
	dim    gputypes.TextureDimension
	size   [3]int
	handle uint32
}

var textureTargets = map[gputypes.TextureDimension]string{
	gputypes.TextureDimension1D: "texture_1d",
	gputypes.TextureDimension2D: "texture_2d",
	gputypes.TextureDimension3D: "texture_3d",
}

// NewTexture describes a texture. Unused extents (height for 1D, depth
// for 1D and 2D) are stored as 1. Targets the profile lacks fail with
// ErrUnsupportedParameter.
func (c *Context) NewTexture(dim gputypes.TextureDimension, width, height, depth int) (*Texture, error) {
	name, ok := textureTargets[dim]
	if !ok {
		return nil, invalid("texture", "unknown dimension %d", dim)
	}
	target, err := gl.Lookup(name, c.profile)
	if err != nil {
		return nil, unsupported(name, "texture target is not defined in the %s profile", c.profile)
	}
	switch dim {
	case gputypes.TextureDimension1D:
		height, depth = 1, 1
	case gputypes.TextureDimension2D:
		depth = 1
	}
	if width < 0 || height < 0 || depth < 0 {
		return nil, invalid("texture", "negative size %dx%dx%d", width, height, depth)
	}
	return &Texture{c: c, target: target, dim: dim, size: [3]int{width, height, depth}}, nil
}

// Handle returns the native name, or 0 if the texture is not realised.
func (t *Texture) Handle() uint32 { return t.handle }

// Target returns the binding target.
func (t *Texture) Target() gl.Enum { return t.target }

// Dimension returns 1D, 2D or 3D.
func (t *Texture) Dimension() gputypes.TextureDimension { return t.dim }

// Size returns width, height and depth in texels.
func (t *Texture) Size() (width, height, depth int) {
	return t.size[0], t.size[1], t.size[2]
}

// Activate creates the native object on first use and binds it.
func (t *Texture) Activate() error {
	if t.handle == 0 {
		if err := t.c.call("CreateTexture", func() { t.handle = t.c.fns.CreateTexture() }); err != nil {
			return err
		}
	}
	return t.c.call("BindTexture", func() { t.c.fns.BindTexture(t.target, t.handle) })
}

// Delete releases the native object.
func (t *Texture) Delete() error {
	if t.handle == 0 {
		return nil
	}
	name := t.handle
	t.handle = 0
	return t.c.call("DeleteTexture", func() { t.c.fns.DeleteTexture(name) })
}
