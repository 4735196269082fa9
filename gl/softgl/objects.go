// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softgl

import "github.com/gogpu/gloo/gl"

// Buffer and texture names share one counter; a name is never reused.

// CreateBuffer implements gl.Functions.
func (c *Context) CreateBuffer() uint32 {
	c.nextName++
	c.buffers[c.nextName] = 0
	return c.nextName
}

// BindBuffer implements gl.Functions.
func (c *Context) BindBuffer(target gl.Enum, name uint32) {
	if !c.valid(target, bufferTargets) {
		return
	}
	if err := c.bind(c.buffers, target, name); err != gl.NO_ERROR {
		c.fail(err)
	}
}

// DeleteBuffer implements gl.Functions. Unknown names are ignored.
func (c *Context) DeleteBuffer(name uint32) {
	c.unbind(c.buffers, name)
}

// CreateTexture implements gl.Functions.
func (c *Context) CreateTexture() uint32 {
	c.nextName++
	c.textures[c.nextName] = 0
	return c.nextName
}

// BindTexture implements gl.Functions.
func (c *Context) BindTexture(target gl.Enum, name uint32) {
	if !c.valid(target, textureTargets) {
		return
	}
	if err := c.bind(c.textures, target, name); err != gl.NO_ERROR {
		c.fail(err)
	}
}

// DeleteTexture implements gl.Functions.
func (c *Context) DeleteTexture(name uint32) {
	c.unbind(c.textures, name)
}

// bind attaches name to target. The first bind fixes the object's target;
// binding it to another target later is INVALID_OPERATION.
func (c *Context) bind(objs map[uint32]gl.Enum, target gl.Enum, name uint32) gl.Enum {
	if name == 0 {
		delete(c.bindings, target)
		return gl.NO_ERROR
	}
	bound, ok := objs[name]
	switch {
	case !ok:
		return gl.INVALID_OPERATION
	case bound != 0 && bound != target:
		return gl.INVALID_OPERATION
	}
	objs[name] = target
	c.bindings[target] = name
	return gl.NO_ERROR
}

func (c *Context) unbind(objs map[uint32]gl.Enum, name uint32) {
	target, ok := objs[name]
	if !ok {
		return
	}
	delete(objs, name)
	if target != 0 && c.bindings[target] == name {
		delete(c.bindings, target)
	}
}

// Binding returns the name bound to target, or 0.
func (c *Context) Binding(target gl.Enum) uint32 {
	return c.bindings[target]
}

// IsBuffer reports whether name is a live buffer object.
func (c *Context) IsBuffer(name uint32) bool {
	_, ok := c.buffers[name]
	return ok
}

// IsTexture reports whether name is a live texture object.
func (c *Context) IsTexture(name uint32) bool {
	_, ok := c.textures[name]
	return ok
}
