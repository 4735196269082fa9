// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"github.com/gogpu/gloo/gl"
)

// maxStaleErrors bounds how many queued error flags are drained before a
// call. Drivers keep one flag per error class, so a handful is plenty.
const maxStaleErrors = 8

// Context validates state requests and forwards them to one current
// graphics context.
//
// A Context is not safe for concurrent use; like the GL context behind
// it, it belongs to the thread that made it current.
type Context struct {
	fns        gl.Functions
	profile    gl.Profile
	errorCheck bool
}

// NewContext wraps the native functions of a current context.
//
//	// Validate against the driver's own profile, polling GetError.
//	c := gloo.NewContext(fns)
//
//	// Skip error polling on a hot path.
//	c := gloo.NewContext(fns, gloo.WithErrorCheck(false))
func NewContext(fns gl.Functions, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	profile := fns.Profile()
	if options.profileSet {
		profile = options.profile
	}
	return &Context{
		fns:        fns,
		profile:    profile,
		errorCheck: options.errorCheck,
	}
}

// Profile returns the namespace requests are validated against.
func (c *Context) Profile() gl.Profile { return c.profile }

// Functions returns the native functions the context forwards to.
func (c *Context) Functions() gl.Functions { return c.fns }

// call runs one native call and converts a raised GL error into a
// *DriverError naming the call.
func (c *Context) call(name string, fn func()) error {
	if !c.errorCheck {
		fn()
		return nil
	}
	for range maxStaleErrors {
		code := c.fns.GetError()
		if code == gl.NO_ERROR {
			break
		}
		Logger().Debug("gloo: discarded stale driver error", "code", codeName(code))
	}
	fn()
	if code := c.fns.GetError(); code != gl.NO_ERROR {
		Logger().Warn("gloo: driver rejected call", "call", name, "code", codeName(code))
		return &DriverError{Call: name, Code: code}
	}
	return nil
}

// Clear clears the buffers whose argument is non-nil. Each non-nil
// argument first becomes the buffer's clear value; color must hold
// exactly four components.
func (c *Context) Clear(color []float64, depth *float64, stencil *int) error {
	s := State{}
	var mask gl.Enum
	if color != nil {
		s["clear_color"] = color
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth != nil {
		s["clear_depth"] = *depth
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if stencil != nil {
		s["clear_stencil"] = *stencil
		mask |= gl.STENCIL_BUFFER_BIT
	}
	if mask == 0 {
		return nil
	}
	if err := c.SetState("", s); err != nil {
		return err
	}
	return c.call("Clear", func() { c.fns.Clear(mask) })
}

// ClearAll clears color, depth and stencil with their current clear
// values.
func (c *Context) ClearAll() error {
	return c.call("Clear", func() {
		c.fns.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
	})
}

// Flush asks the driver to start executing queued commands.
func (c *Context) Flush() error {
	return c.call("Flush", c.fns.Flush)
}

// Finish blocks until all queued commands have completed.
func (c *Context) Finish() error {
	return c.call("Finish", c.fns.Finish)
}
