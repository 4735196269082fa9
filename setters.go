// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

// Typed setters. Each is SetState with a single entry, so validation and
// error reporting are identical to the map form.

func (c *Context) set(name string, value any) error {
	return c.SetState("", State{name: value})
}

// SetViewport sets the viewport rectangle in window pixels.
func (c *Context) SetViewport(x, y, width, height int) error {
	return c.set("viewport", []int{x, y, width, height})
}

// SetHint sets an implementation hint, e.g. SetHint("generate_mipmap_hint", "nicest").
func (c *Context) SetHint(target, mode string) error {
	return c.set("hint", []string{target, mode})
}

// SetDepthRange sets the depth range mapping.
func (c *Context) SetDepthRange(near, far float64) error {
	return c.set("depth_range", []float64{near, far})
}

// SetFrontFace sets the winding of front-facing polygons: "cw" or "ccw".
func (c *Context) SetFrontFace(mode string) error {
	return c.set("front_face", mode)
}

// SetCullFace selects the culled faces. Use Enable("cull_face") to turn
// culling on.
func (c *Context) SetCullFace(mode string) error {
	return c.set("cull_face", mode)
}

// SetLineWidth sets the rasterized line width in pixels.
func (c *Context) SetLineWidth(width float64) error {
	return c.set("line_width", width)
}

// SetPolygonOffset sets the depth offset scale factor and units.
func (c *Context) SetPolygonOffset(factor, units float64) error {
	return c.set("polygon_offset", []float64{factor, units})
}

// SetBlendFunc sets the blend factors as srgb, drgb, salpha, dalpha.
// Missing destination factors default to "zero"; missing alpha factors
// repeat the RGB ones.
func (c *Context) SetBlendFunc(factors ...string) error {
	return c.set("blend_func", factors)
}

// SetBlendColor sets the constant blend color. Exactly four components
// are required.
func (c *Context) SetBlendColor(rgba ...float64) error {
	return c.set("blend_color", rgba)
}

// SetBlendEquation sets the RGB and, optionally, alpha blend equations.
func (c *Context) SetBlendEquation(modes ...string) error {
	return c.set("blend_equation", modes)
}

// SetScissor sets the scissor box in window pixels. Use
// Enable("scissor_test") to apply it.
func (c *Context) SetScissor(x, y, width, height int) error {
	return c.set("scissor", []int{x, y, width, height})
}

// SetStencilFunc sets the stencil test for face ("front", "back" or
// "front_and_back").
func (c *Context) SetStencilFunc(fn string, ref, mask int, face string) error {
	return c.set("stencil_func", []any{fn, ref, mask, face})
}

// SetStencilMask sets the stencil write mask for face.
func (c *Context) SetStencilMask(mask int, face string) error {
	return c.set("stencil_mask", []any{mask, face})
}

// SetStencilOp sets the stencil actions for stencil fail, depth fail and
// depth pass on face.
func (c *Context) SetStencilOp(sfail, dpfail, dppass, face string) error {
	return c.set("stencil_op", []string{sfail, dpfail, dppass, face})
}

// SetDepthFunc sets the depth comparison, e.g. "less" or "lequal".
func (c *Context) SetDepthFunc(fn string) error {
	return c.set("depth_func", fn)
}

// SetDepthMask enables or disables writes to the depth buffer.
func (c *Context) SetDepthMask(flag bool) error {
	return c.set("depth_mask", flag)
}

// SetColorMask selects which color channels are written.
func (c *Context) SetColorMask(r, g, b, a bool) error {
	return c.set("color_mask", []bool{r, g, b, a})
}

// SetSampleCoverage sets the multisample coverage value and inversion.
func (c *Context) SetSampleCoverage(value float64, invert bool) error {
	return c.set("sample_coverage", []any{value, invert})
}

// SetClearColor sets the color used by Clear.
func (c *Context) SetClearColor(r, g, b, a float64) error {
	return c.set("clear_color", []float64{r, g, b, a})
}

// SetClearDepth sets the depth value used by Clear.
func (c *Context) SetClearDepth(depth float64) error {
	return c.set("clear_depth", depth)
}

// SetClearStencil sets the stencil index used by Clear.
func (c *Context) SetClearStencil(index int) error {
	return c.set("clear_stencil", index)
}

// Enable turns on the named capabilities, e.g. Enable("blend", "depth_test").
func (c *Context) Enable(names ...string) error {
	return c.toggle(names, true)
}

// Disable turns off the named capabilities.
func (c *Context) Disable(names ...string) error {
	return c.toggle(names, false)
}

func (c *Context) toggle(names []string, on bool) error {
	if len(names) == 0 {
		return nil
	}
	s := make(State, len(names))
	for _, n := range names {
		s[n] = on
	}
	return c.SetState("", s)
}
