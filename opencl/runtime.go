// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opencl

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gloo/gl"
)

// Runtime is a compute API able to share memory with GL.
type Runtime interface {
	// Name identifies the runtime in logs (e.g. "vulkan").
	Name() string

	// GLSharing reports whether contexts can bind memory objects to GL
	// objects. A runtime may alias the GL storage or mirror it; its
	// documentation says which.
	GLSharing() bool

	// Platforms lists platforms in a stable enumeration order.
	Platforms() ([]Platform, error)

	// NewContext creates a context sharing with the current GL context.
	// With no devices, the runtime picks the platform's default devices.
	// With a nil platform, the context is created from the current GL
	// share group.
	NewContext(p Platform, devices []Device) (Context, error)
}

// Platform is one vendor implementation.
type Platform interface {
	Name() string
	Devices() ([]Device, error)
}

// Device is one compute device. Devices are compared with ==, so a
// runtime must return the same value for the same device.
type Device interface {
	Name() string
	Type() gputypes.DeviceType
}

// Context is a compute context sharing with GL. A context that also
// implements io.Closer is closed when the manager's device search
// rejects it.
type Context interface {
	// Devices returns the devices the context was created on.
	Devices() []Device

	// NewGLBuffer wraps GL buffer object name holding size bytes.
	NewGLBuffer(flags MemFlags, name uint32, size int) (Mem, error)

	// NewGLTexture wraps mip level miplevel of GL texture object name as
	// a 2-D image of width x height texels.
	NewGLTexture(flags MemFlags, target gl.Enum, miplevel int, name uint32, width, height int) (Mem, error)
}

// Mem is a compute memory object bound to a GL object. Whether GL writes
// are visible through it without a copy depends on the runtime.
type Mem interface {
	Release() error
}

// MemFlags are the compute access flags of a memory object.
type MemFlags uint8

const (
	MemReadWrite MemFlags = iota
	MemReadOnly
	MemWriteOnly
)

// String returns the flag name.
func (f MemFlags) String() string {
	switch f {
	case MemReadWrite:
		return "read_write"
	case MemReadOnly:
		return "read_only"
	case MemWriteOnly:
		return "write_only"
	default:
		return "unknown"
	}
}

// isGPU reports whether d counts as a GPU for device selection.
func isGPU(d Device) bool {
	switch d.Type() {
	case gputypes.DeviceTypeDiscreteGPU, gputypes.DeviceTypeIntegratedGPU, gputypes.DeviceTypeVirtualGPU:
		return true
	}
	return false
}
