// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package softgl is a software implementation of gl.Functions.
//
// It keeps the complete pipeline state that gloo manipulates, an RGBA8
// color buffer, a depth buffer and a stencil buffer, and validates every
// call the way a strict driver does: bad enums set INVALID_ENUM, bad
// values set INVALID_VALUE, and the first recorded error is returned by
// GetError. It performs no rasterization beyond Clear.
//
// A Context is not safe for concurrent use, like the GL context it
// stands in for.
package softgl

import (
	"math"

	"github.com/gogpu/gloo/gl"
)

// Default framebuffer and limit values.
const (
	DefaultWidth  = 64
	DefaultHeight = 64

	maxTextureSize = 4096
	maxViewportDim = 8192
)

type stencilFace struct {
	fn        gl.Enum
	ref       int32
	valueMask uint32
	writeMask uint32
	sfail     gl.Enum
	dpfail    gl.Enum
	dppass    gl.Enum
}

var _ gl.Functions = (*Context)(nil)

// Context is an in-memory GL context.
type Context struct {
	profile gl.Profile
	width   int
	height  int
	samples int

	color   []uint8 // RGBA8, bottom row first
	depth   []float32
	stencil []uint8

	err gl.Enum

	caps       map[gl.Enum]bool
	viewport   [4]int32
	scissor    [4]int32
	hints      map[gl.Enum]gl.Enum
	depthRange [2]float32
	frontFace  gl.Enum
	cullFace   gl.Enum
	lineWidth  float32
	polyFactor float32
	polyUnits  float32

	blendSrcRGB, blendDstRGB     gl.Enum
	blendSrcAlpha, blendDstAlpha gl.Enum
	blendEqRGB, blendEqAlpha     gl.Enum
	blendColor                   [4]float32

	front, back stencilFace

	depthFunc  gl.Enum
	depthMask  bool
	colorMask  [4]bool
	covValue   float32
	covInvert  bool
	clearColor [4]float32
	clearDepth float32
	clearStenc int32

	nextName uint32
	buffers  map[uint32]gl.Enum
	textures map[uint32]gl.Enum
	bindings map[gl.Enum]uint32
}

// Option configures a Context.
type Option func(*Context)

// WithProfile selects the namespace the context reports and enforces.
func WithProfile(p gl.Profile) Option {
	return func(c *Context) {
		c.profile = p
	}
}

// WithSamples sets the reported multisample count.
func WithSamples(n int) Option {
	return func(c *Context) {
		c.samples = n
	}
}

// New creates a context with a width x height framebuffer and GL default
// state. Non-positive dimensions fall back to the defaults.
func New(width, height int, opts ...Option) *Context {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	c := &Context{
		profile: gl.ProfileDesktop,
		width:   width,
		height:  height,
		color:   make([]uint8, width*height*4),
		depth:   make([]float32, width*height),
		stencil: make([]uint8, width*height),
		caps:    map[gl.Enum]bool{gl.DITHER: true},
		hints:   make(map[gl.Enum]gl.Enum),

		viewport:   [4]int32{0, 0, int32(width), int32(height)},
		scissor:    [4]int32{0, 0, int32(width), int32(height)},
		depthRange: [2]float32{0, 1},
		frontFace:  gl.CCW,
		cullFace:   gl.BACK,
		lineWidth:  1,

		blendSrcRGB: gl.ONE, blendDstRGB: gl.ZERO,
		blendSrcAlpha: gl.ONE, blendDstAlpha: gl.ZERO,
		blendEqRGB: gl.FUNC_ADD, blendEqAlpha: gl.FUNC_ADD,

		depthFunc:  gl.LESS,
		depthMask:  true,
		colorMask:  [4]bool{true, true, true, true},
		covValue:   1,
		clearDepth: 1,

		buffers:  make(map[uint32]gl.Enum),
		textures: make(map[uint32]gl.Enum),
		bindings: make(map[gl.Enum]uint32),
	}
	c.front = defaultStencilFace()
	c.back = defaultStencilFace()
	for _, o := range opts {
		o(c)
	}
	return c
}

func defaultStencilFace() stencilFace {
	return stencilFace{
		fn:        gl.ALWAYS,
		valueMask: math.MaxUint32,
		writeMask: math.MaxUint32,
		sfail:     gl.KEEP,
		dpfail:    gl.KEEP,
		dppass:    gl.KEEP,
	}
}

// Size returns the framebuffer dimensions.
func (c *Context) Size() (width, height int) {
	return c.width, c.height
}

// Profile implements gl.Functions.
func (c *Context) Profile() gl.Profile {
	return c.profile
}

// GetError returns and resets the error flag.
func (c *Context) GetError() gl.Enum {
	e := c.err
	c.err = gl.NO_ERROR
	return e
}

// fail records e unless an earlier error is still pending.
func (c *Context) fail(e gl.Enum) {
	if c.err == gl.NO_ERROR {
		c.err = e
	}
}

// valid reports whether e is in set and defined in the active profile,
// recording INVALID_ENUM otherwise.
func (c *Context) valid(e gl.Enum, set map[gl.Enum]bool) bool {
	if !set[e] || !gl.Available(e, c.profile) {
		c.fail(gl.INVALID_ENUM)
		return false
	}
	return true
}

func enumSet(es ...gl.Enum) map[gl.Enum]bool {
	m := make(map[gl.Enum]bool, len(es))
	for _, e := range es {
		m[e] = true
	}
	return m
}

var (
	capabilities = enumSet(gl.BLEND, gl.CULL_FACE, gl.DEPTH_TEST, gl.DITHER,
		gl.POLYGON_OFFSET_FILL, gl.SAMPLE_ALPHA_TO_COVERAGE, gl.SAMPLE_COVERAGE,
		gl.SCISSOR_TEST, gl.STENCIL_TEST, gl.LINE_SMOOTH, gl.POLYGON_SMOOTH, gl.MULTISAMPLE)
	faces        = enumSet(gl.FRONT, gl.BACK, gl.FRONT_AND_BACK)
	windings     = enumSet(gl.CW, gl.CCW)
	compareFuncs = enumSet(gl.NEVER, gl.LESS, gl.EQUAL, gl.LEQUAL, gl.GREATER,
		gl.NOTEQUAL, gl.GEQUAL, gl.ALWAYS)
	stencilOps = enumSet(gl.ZERO, gl.KEEP, gl.REPLACE, gl.INCR, gl.DECR, gl.INVERT,
		gl.INCR_WRAP, gl.DECR_WRAP)
	blendFactors = enumSet(gl.ZERO, gl.ONE, gl.SRC_COLOR, gl.ONE_MINUS_SRC_COLOR,
		gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.DST_ALPHA, gl.ONE_MINUS_DST_ALPHA,
		gl.DST_COLOR, gl.ONE_MINUS_DST_COLOR, gl.SRC_ALPHA_SATURATE,
		gl.CONSTANT_COLOR, gl.ONE_MINUS_CONSTANT_COLOR,
		gl.CONSTANT_ALPHA, gl.ONE_MINUS_CONSTANT_ALPHA)
	blendEquations = enumSet(gl.FUNC_ADD, gl.FUNC_SUBTRACT, gl.FUNC_REVERSE_SUBTRACT,
		gl.MIN, gl.MAX)
	hintTargets = enumSet(gl.GENERATE_MIPMAP_HINT, gl.PERSPECTIVE_CORRECTION_HINT,
		gl.POINT_SMOOTH_HINT, gl.LINE_SMOOTH_HINT, gl.POLYGON_SMOOTH_HINT, gl.FOG_HINT,
		gl.TEXTURE_COMPRESSION_HINT, gl.FRAGMENT_SHADER_DERIVATIVE_HINT)
	hintModes      = enumSet(gl.DONT_CARE, gl.FASTEST, gl.NICEST)
	bufferTargets  = enumSet(gl.ARRAY_BUFFER, gl.ELEMENT_ARRAY_BUFFER)
	textureTargets = enumSet(gl.TEXTURE_1D, gl.TEXTURE_2D, gl.TEXTURE_3D)
)

// Enable implements gl.Functions.
func (c *Context) Enable(cap gl.Enum) {
	if c.valid(cap, capabilities) {
		c.caps[cap] = true
	}
}

// Disable implements gl.Functions.
func (c *Context) Disable(cap gl.Enum) {
	if c.valid(cap, capabilities) {
		c.caps[cap] = false
	}
}

// IsEnabled implements gl.Functions.
func (c *Context) IsEnabled(cap gl.Enum) bool {
	if !c.valid(cap, capabilities) {
		return false
	}
	return c.caps[cap]
}

// Viewport implements gl.Functions.
func (c *Context) Viewport(x, y, width, height int32) {
	if width < 0 || height < 0 {
		c.fail(gl.INVALID_VALUE)
		return
	}
	c.viewport = [4]int32{x, y, min(width, maxViewportDim), min(height, maxViewportDim)}
}

// Scissor implements gl.Functions.
func (c *Context) Scissor(x, y, width, height int32) {
	if width < 0 || height < 0 {
		c.fail(gl.INVALID_VALUE)
		return
	}
	c.scissor = [4]int32{x, y, width, height}
}

// Hint implements gl.Functions.
func (c *Context) Hint(target, mode gl.Enum) {
	if !c.valid(target, hintTargets) || !c.valid(mode, hintModes) {
		return
	}
	c.hints[target] = mode
}

// DepthRangef implements gl.Functions. Values are clamped to [0, 1].
func (c *Context) DepthRangef(near, far float32) {
	c.depthRange = [2]float32{clamp01(near), clamp01(far)}
}

// FrontFace implements gl.Functions.
func (c *Context) FrontFace(mode gl.Enum) {
	if c.valid(mode, windings) {
		c.frontFace = mode
	}
}

// CullFace implements gl.Functions.
func (c *Context) CullFace(mode gl.Enum) {
	if c.valid(mode, faces) {
		c.cullFace = mode
	}
}

// LineWidth implements gl.Functions.
func (c *Context) LineWidth(width float32) {
	if width <= 0 || math.IsNaN(float64(width)) {
		c.fail(gl.INVALID_VALUE)
		return
	}
	c.lineWidth = width
}

// PolygonOffset implements gl.Functions.
func (c *Context) PolygonOffset(factor, units float32) {
	c.polyFactor, c.polyUnits = factor, units
}

// BlendFuncSeparate implements gl.Functions.
func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	for _, f := range []gl.Enum{srcRGB, dstRGB, srcAlpha, dstAlpha} {
		if !c.valid(f, blendFactors) {
			return
		}
	}
	c.blendSrcRGB, c.blendDstRGB = srcRGB, dstRGB
	c.blendSrcAlpha, c.blendDstAlpha = srcAlpha, dstAlpha
}

// BlendColor implements gl.Functions. Components are clamped to [0, 1].
func (c *Context) BlendColor(r, g, b, a float32) {
	c.blendColor = [4]float32{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// BlendEquationSeparate implements gl.Functions.
func (c *Context) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) {
	if !c.valid(modeRGB, blendEquations) || !c.valid(modeAlpha, blendEquations) {
		return
	}
	c.blendEqRGB, c.blendEqAlpha = modeRGB, modeAlpha
}

// stencilFaces returns the faces addressed by face, or nil after
// recording INVALID_ENUM.
func (c *Context) stencilFaces(face gl.Enum) []*stencilFace {
	if !c.valid(face, faces) {
		return nil
	}
	switch face {
	case gl.FRONT:
		return []*stencilFace{&c.front}
	case gl.BACK:
		return []*stencilFace{&c.back}
	default:
		return []*stencilFace{&c.front, &c.back}
	}
}

// StencilFuncSeparate implements gl.Functions.
func (c *Context) StencilFuncSeparate(face, fn gl.Enum, ref int32, mask uint32) {
	fs := c.stencilFaces(face)
	if fs == nil || !c.valid(fn, compareFuncs) {
		return
	}
	for _, f := range fs {
		f.fn, f.ref, f.valueMask = fn, ref, mask
	}
}

// StencilMaskSeparate implements gl.Functions.
func (c *Context) StencilMaskSeparate(face gl.Enum, mask uint32) {
	for _, f := range c.stencilFaces(face) {
		f.writeMask = mask
	}
}

// StencilOpSeparate implements gl.Functions.
func (c *Context) StencilOpSeparate(face, sfail, dpfail, dppass gl.Enum) {
	fs := c.stencilFaces(face)
	if fs == nil {
		return
	}
	for _, op := range []gl.Enum{sfail, dpfail, dppass} {
		if !c.valid(op, stencilOps) {
			return
		}
	}
	for _, f := range fs {
		f.sfail, f.dpfail, f.dppass = sfail, dpfail, dppass
	}
}

// DepthFunc implements gl.Functions.
func (c *Context) DepthFunc(fn gl.Enum) {
	if c.valid(fn, compareFuncs) {
		c.depthFunc = fn
	}
}

// DepthMask implements gl.Functions.
func (c *Context) DepthMask(flag bool) {
	c.depthMask = flag
}

// ColorMask implements gl.Functions.
func (c *Context) ColorMask(r, g, b, a bool) {
	c.colorMask = [4]bool{r, g, b, a}
}

// SampleCoverage implements gl.Functions.
func (c *Context) SampleCoverage(value float32, invert bool) {
	c.covValue, c.covInvert = clamp01(value), invert
}

// ClearColor implements gl.Functions.
func (c *Context) ClearColor(r, g, b, a float32) {
	c.clearColor = [4]float32{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// ClearDepthf implements gl.Functions.
func (c *Context) ClearDepthf(d float32) {
	c.clearDepth = clamp01(d)
}

// ClearStencil implements gl.Functions.
func (c *Context) ClearStencil(s int32) {
	c.clearStenc = s
}

// Flush implements gl.Functions. The software context has no queue.
func (c *Context) Flush() {}

// Finish implements gl.Functions.
func (c *Context) Finish() {}

func clamp01(v float32) float32 {
	switch {
	case v < 0 || math.IsNaN(float64(v)):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func toUnorm8(v float32) uint8 {
	return uint8(math.Round(float64(clamp01(v)) * 255))
}
