// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softgl

import (
	"math"

	"github.com/gogpu/gloo/gl"
)

// Reported framebuffer and implementation strings.
const (
	Vendor   = "gogpu"
	Renderer = "gloo software"
)

// desktopQueries are state names with no ES 2.0 counterpart.
var desktopQueries = enumSet(gl.DOUBLEBUFFER, gl.STEREO)

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func enums(es ...gl.Enum) []float64 {
	out := make([]float64, len(es))
	for i, e := range es {
		out[i] = float64(e)
	}
	return out
}

// query returns the value of pname as float64 components, or false after
// recording INVALID_ENUM.
func (c *Context) query(pname gl.Enum) ([]float64, bool) {
	if desktopQueries[pname] && c.profile != gl.ProfileDesktop {
		c.fail(gl.INVALID_ENUM)
		return nil, false
	}
	if hintTargets[pname] {
		if !gl.Available(pname, c.profile) {
			c.fail(gl.INVALID_ENUM)
			return nil, false
		}
		mode, ok := c.hints[pname]
		if !ok {
			mode = gl.DONT_CARE
		}
		return enums(mode), true
	}
	if capabilities[pname] {
		if !gl.Available(pname, c.profile) {
			c.fail(gl.INVALID_ENUM)
			return nil, false
		}
		return []float64{b2f(c.caps[pname])}, true
	}

	switch pname {
	case gl.VIEWPORT:
		v := c.viewport
		return []float64{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}, true
	case gl.SCISSOR_BOX:
		s := c.scissor
		return []float64{float64(s[0]), float64(s[1]), float64(s[2]), float64(s[3])}, true
	case gl.DEPTH_RANGE:
		return []float64{float64(c.depthRange[0]), float64(c.depthRange[1])}, true
	case gl.FRONT_FACE:
		return enums(c.frontFace), true
	case gl.CULL_FACE_MODE:
		return enums(c.cullFace), true
	case gl.LINE_WIDTH:
		return []float64{float64(c.lineWidth)}, true
	case gl.POLYGON_OFFSET_FACTOR:
		return []float64{float64(c.polyFactor)}, true
	case gl.POLYGON_OFFSET_UNITS:
		return []float64{float64(c.polyUnits)}, true
	case gl.BLEND_COLOR:
		return f32s(c.blendColor[:]), true
	case gl.BLEND_SRC_RGB:
		return enums(c.blendSrcRGB), true
	case gl.BLEND_DST_RGB:
		return enums(c.blendDstRGB), true
	case gl.BLEND_SRC_ALPHA:
		return enums(c.blendSrcAlpha), true
	case gl.BLEND_DST_ALPHA:
		return enums(c.blendDstAlpha), true
	case gl.BLEND_EQUATION_RGB:
		return enums(c.blendEqRGB), true
	case gl.BLEND_EQUATION_ALPHA:
		return enums(c.blendEqAlpha), true
	case gl.STENCIL_FUNC:
		return enums(c.front.fn), true
	case gl.STENCIL_REF:
		return []float64{float64(c.front.ref)}, true
	case gl.STENCIL_VALUE_MASK:
		return []float64{float64(c.front.valueMask)}, true
	case gl.STENCIL_WRITEMASK:
		return []float64{float64(c.front.writeMask)}, true
	case gl.STENCIL_FAIL:
		return enums(c.front.sfail), true
	case gl.STENCIL_PASS_DEPTH_FAIL:
		return enums(c.front.dpfail), true
	case gl.STENCIL_PASS_DEPTH_PASS:
		return enums(c.front.dppass), true
	case gl.STENCIL_BACK_FUNC:
		return enums(c.back.fn), true
	case gl.STENCIL_BACK_REF:
		return []float64{float64(c.back.ref)}, true
	case gl.STENCIL_BACK_VALUE_MASK:
		return []float64{float64(c.back.valueMask)}, true
	case gl.STENCIL_BACK_WRITEMASK:
		return []float64{float64(c.back.writeMask)}, true
	case gl.STENCIL_BACK_FAIL:
		return enums(c.back.sfail), true
	case gl.STENCIL_BACK_PASS_DEPTH_FAIL:
		return enums(c.back.dpfail), true
	case gl.STENCIL_BACK_PASS_DEPTH_PASS:
		return enums(c.back.dppass), true
	case gl.DEPTH_FUNC:
		return enums(c.depthFunc), true
	case gl.DEPTH_WRITEMASK:
		return []float64{b2f(c.depthMask)}, true
	case gl.COLOR_WRITEMASK:
		m := c.colorMask
		return []float64{b2f(m[0]), b2f(m[1]), b2f(m[2]), b2f(m[3])}, true
	case gl.SAMPLE_COVERAGE_VALUE:
		return []float64{float64(c.covValue)}, true
	case gl.SAMPLE_COVERAGE_INVERT:
		return []float64{b2f(c.covInvert)}, true
	case gl.COLOR_CLEAR_VALUE:
		return f32s(c.clearColor[:]), true
	case gl.DEPTH_CLEAR_VALUE:
		return []float64{float64(c.clearDepth)}, true
	case gl.STENCIL_CLEAR_VALUE:
		return []float64{float64(c.clearStenc)}, true
	case gl.MAX_TEXTURE_SIZE:
		return []float64{maxTextureSize}, true
	case gl.MAX_VIEWPORT_DIMS:
		return []float64{maxViewportDim, maxViewportDim}, true
	case gl.ALIASED_LINE_WIDTH_RANGE:
		return []float64{1, 64}, true
	case gl.RED_BITS, gl.GREEN_BITS, gl.BLUE_BITS, gl.ALPHA_BITS, gl.STENCIL_BITS:
		return []float64{8}, true
	case gl.DEPTH_BITS:
		return []float64{24}, true
	case gl.SAMPLES:
		return []float64{float64(c.samples)}, true
	case gl.SAMPLE_BUFFERS:
		return []float64{b2f(c.samples > 0)}, true
	case gl.DOUBLEBUFFER, gl.STEREO:
		return []float64{0}, true
	}
	c.fail(gl.INVALID_ENUM)
	return nil, false
}

func f32s(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}

// GetIntegerv implements gl.Functions. Fractional values are rounded;
// unsigned masks above MaxInt32 are returned as their two's complement.
func (c *Context) GetIntegerv(pname gl.Enum, dst []int32) {
	vals, ok := c.query(pname)
	if !ok {
		return
	}
	for i := range min(len(dst), len(vals)) {
		v := math.Round(vals[i])
		switch {
		case v > math.MaxUint32:
			dst[i] = math.MaxInt32
		case v > math.MaxInt32:
			// Masks keep their bit pattern.
			dst[i] = int32(uint32(v))
		default:
			dst[i] = int32(v)
		}
	}
}

// GetFloatv implements gl.Functions.
func (c *Context) GetFloatv(pname gl.Enum, dst []float32) {
	vals, ok := c.query(pname)
	if !ok {
		return
	}
	for i := range min(len(dst), len(vals)) {
		dst[i] = float32(vals[i])
	}
}

// GetBooleanv implements gl.Functions.
func (c *Context) GetBooleanv(pname gl.Enum, dst []bool) {
	vals, ok := c.query(pname)
	if !ok {
		return
	}
	for i := range min(len(dst), len(vals)) {
		dst[i] = vals[i] != 0
	}
}

// GetString implements gl.Functions.
func (c *Context) GetString(pname gl.Enum) string {
	switch pname {
	case gl.VENDOR:
		return Vendor
	case gl.RENDERER:
		return Renderer
	case gl.VERSION:
		if c.profile == gl.ProfileES2 {
			return "OpenGL ES 2.0 softgl"
		}
		return "2.1 softgl"
	case gl.SHADING_LANGUAGE_VERSION:
		if c.profile == gl.ProfileES2 {
			return "OpenGL ES GLSL ES 1.00"
		}
		return "1.20"
	}
	c.fail(gl.INVALID_ENUM)
	return ""
}
