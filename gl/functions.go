// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gl defines the native OpenGL surface gloo drives: enum codes,
// the symbolic token table, and the Functions interface implemented by
// a binding (or by the software driver in gl/softgl).
package gl

// Functions is the raw graphics API bound to one current context.
//
// Implementations behave like a GL driver: invalid arguments are not
// reported through return values but recorded in an error flag that
// GetError reads and resets.
type Functions interface {
	// Profile reports the namespace the context was created with.
	Profile() Profile
	GetError() Enum

	Enable(cap Enum)
	Disable(cap Enum)
	IsEnabled(cap Enum) bool

	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)
	Hint(target, mode Enum)
	DepthRangef(near, far float32)
	FrontFace(mode Enum)
	CullFace(mode Enum)
	LineWidth(width float32)
	PolygonOffset(factor, units float32)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendColor(r, g, b, a float32)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	StencilFuncSeparate(face, fn Enum, ref int32, mask uint32)
	StencilMaskSeparate(face Enum, mask uint32)
	StencilOpSeparate(face, sfail, dpfail, dppass Enum)
	DepthFunc(fn Enum)
	DepthMask(flag bool)
	ColorMask(r, g, b, a bool)
	SampleCoverage(value float32, invert bool)

	ClearColor(r, g, b, a float32)
	ClearDepthf(d float32)
	ClearStencil(s int32)
	Clear(mask Enum)
	Flush()
	Finish()

	// ReadPixels copies a framebuffer region into dst, bottom row first.
	ReadPixels(dst []byte, x, y, width, height int32, format, ty Enum)

	GetIntegerv(pname Enum, dst []int32)
	GetFloatv(pname Enum, dst []float32)
	GetBooleanv(pname Enum, dst []bool)
	GetString(pname Enum) string

	CreateBuffer() uint32
	BindBuffer(target Enum, name uint32)
	DeleteBuffer(name uint32)
	CreateTexture() uint32
	BindTexture(target Enum, name uint32)
	DeleteTexture(name uint32)
}
