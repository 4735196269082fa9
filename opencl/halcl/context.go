// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halcl

import (
	"fmt"
	"io"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gloo/gl"
	"github.com/gogpu/gloo/opencl"
)

// Context is an opened adapter. It implements opencl.Context.
type Context struct {
	dev      *device
	device   hal.Device
	queue    hal.Queue
	external bool

	mu     sync.Mutex
	mems   map[*Mem]struct{}
	closed bool
}

func newContext(d *device, device hal.Device, queue hal.Queue, external bool) *Context {
	return &Context{
		dev:      d,
		device:   device,
		queue:    queue,
		external: external,
		mems:     make(map[*Mem]struct{}),
	}
}

// Devices implements opencl.Context.
func (c *Context) Devices() []opencl.Device { return []opencl.Device{c.dev} }

// HalDevice returns the hal.Device, so a context can itself be passed
// wherever a HAL device provider is accepted.
func (c *Context) HalDevice() any { return c.device }

// HalQueue returns the hal.Queue.
func (c *Context) HalQueue() any { return c.queue }

// Live reports how many memory objects are not yet released.
func (c *Context) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.mems)
}

// NewGLBuffer implements opencl.Context with a storage buffer of size
// bytes.
func (c *Context) NewGLBuffer(flags opencl.MemFlags, name uint32, size int) (opencl.Mem, error) {
	if c.isClosed() {
		return nil, ErrClosed
	}
	if size <= 0 {
		return nil, fmt.Errorf("halcl: GL buffer %d has no storage", name)
	}
	buf, err := c.device.CreateBuffer(&hal.BufferDescriptor{
		Label: fmt.Sprintf("gloo buffer %d", name),
		Size:  uint64(size),
		Usage: bufferUsage(flags),
	})
	if err != nil {
		return nil, fmt.Errorf("halcl: create buffer: %w", err)
	}
	return c.track(&Mem{ctx: c, name: name, flags: flags, buffer: buf})
}

// NewGLTexture implements opencl.Context with an RGBA8 2-D texture.
func (c *Context) NewGLTexture(flags opencl.MemFlags, target gl.Enum, miplevel int, name uint32, width, height int) (opencl.Mem, error) {
	if c.isClosed() {
		return nil, ErrClosed
	}
	if miplevel != 0 {
		return nil, fmt.Errorf("halcl: GL texture %d level %d: only level 0 is shared", name, miplevel)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("halcl: GL texture %d has no storage (%dx%d)", name, width, height)
	}
	tex, err := c.device.CreateTexture(&hal.TextureDescriptor{
		Label:         fmt.Sprintf("gloo %s %d", gl.Name(target), name),
		Size:          hal.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         textureUsage(flags),
	})
	if err != nil {
		return nil, fmt.Errorf("halcl: create texture: %w", err)
	}
	return c.track(&Mem{ctx: c, name: name, flags: flags, texture: tex})
}

func bufferUsage(f opencl.MemFlags) gputypes.BufferUsage {
	u := gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst
	if f == opencl.MemReadOnly {
		u = gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst
	}
	return u
}

func textureUsage(f opencl.MemFlags) gputypes.TextureUsage {
	u := gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding
	if f != opencl.MemReadOnly {
		u |= gputypes.TextureUsageStorageBinding
	}
	return u
}

func (c *Context) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// track registers m, or frees its storage if the context was closed
// while it was being created.
func (c *Context) track(m *Mem) (opencl.Mem, error) {
	c.mu.Lock()
	closed := c.closed
	if !closed {
		c.mems[m] = struct{}{}
	}
	c.mu.Unlock()
	if closed {
		m.free()
		return nil, ErrClosed
	}
	return m, nil
}

func (c *Context) release(m *Mem) {
	c.mu.Lock()
	_, live := c.mems[m]
	delete(c.mems, m)
	c.mu.Unlock()
	if live {
		m.free()
	}
}

// Close releases every memory object and, unless the device is shared,
// the device itself. The runtime forgets the context. Closing twice is a
// no-op.
func (c *Context) Close() error {
	c.dev.p.rt.forget(c)
	c.destroy()
	return nil
}

func (c *Context) destroy() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	mems := make([]*Mem, 0, len(c.mems))
	for m := range c.mems {
		mems = append(mems, m)
	}
	c.mu.Unlock()
	for _, m := range mems {
		c.release(m)
	}
	if !c.external {
		c.device.Destroy()
	}
}

// Mem is a HAL buffer or texture standing in for a GL object.
type Mem struct {
	ctx     *Context
	name    uint32
	flags   opencl.MemFlags
	buffer  hal.Buffer
	texture hal.Texture
}

// GLName returns the GL object name the memory object mirrors.
func (m *Mem) GLName() uint32 { return m.name }

// Flags returns the access flags.
func (m *Mem) Flags() opencl.MemFlags { return m.flags }

// Buffer returns the HAL buffer, or nil for texture memory.
func (m *Mem) Buffer() hal.Buffer { return m.buffer }

// Texture returns the HAL texture, or nil for buffer memory.
func (m *Mem) Texture() hal.Texture { return m.texture }

func (m *Mem) free() {
	if m.buffer != nil {
		m.ctx.device.DestroyBuffer(m.buffer)
	}
	if m.texture != nil {
		m.ctx.device.DestroyTexture(m.texture)
	}
}

// Release implements opencl.Mem. Releasing twice is a no-op.
func (m *Mem) Release() error {
	m.ctx.release(m)
	return nil
}

var (
	_ opencl.Context = (*Context)(nil)
	_ io.Closer      = (*Context)(nil)
	_ opencl.Mem     = (*Mem)(nil)
)
