// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"sort"

	"github.com/gogpu/gloo/gl"
)

// State is a set of named state values, shaped like keyword arguments:
// each value is a scalar (number, bool or token string) or a sequence of
// them. A scalar is read as a one-element argument list.
//
//	gloo.State{
//	    "blend":      true,
//	    "blend_func": []string{"src_alpha", "one_minus_src_alpha"},
//	    "viewport":   []int{0, 0, 640, 480},
//	}
type State map[string]any

// setting is one parsed, validated state ready to be forwarded.
type setting interface {
	apply(c *Context) error
}

type stateSpec struct {
	name     string
	min, max int
	parse    func(a *args) setting
}

// stateSpecs lists the known states in application order. Capability
// flags are appended at init so they are applied after all modes.
var stateSpecs = []stateSpec{
	{"viewport", 4, 4, func(a *args) setting {
		return viewportSetting{a.int32(0), a.int32(1), a.int32(2), a.int32(3)}
	}},
	{"hint", 2, 2, func(a *args) setting {
		return hintSetting{a.token(0, hintTargetTokens), a.token(1, hintModeTokens)}
	}},
	{"depth_range", 1, 2, func(a *args) setting {
		s := depthRangeSetting{near: a.float(0), far: 1}
		if a.has(1) {
			s.far = a.float(1)
		}
		return s
	}},
	{"front_face", 1, 1, func(a *args) setting {
		return frontFaceSetting{a.token(0, frontFaceTokens)}
	}},
	{"cull_face", 1, 1, func(a *args) setting {
		if on, ok := asBool(a.vals[0]); ok {
			return capabilitySetting{"cull_face", gl.CULL_FACE, on}
		}
		return cullFaceSetting{a.token(0, faceTokens)}
	}},
	{"line_width", 1, 1, func(a *args) setting {
		return lineWidthSetting{a.float(0)}
	}},
	{"polygon_offset", 1, 2, func(a *args) setting {
		s := polygonOffsetSetting{factor: a.float(0)}
		if a.has(1) {
			s.units = a.float(1)
		}
		return s
	}},
	{"blend_func", 1, 4, func(a *args) setting {
		s := blendFuncSetting{srcRGB: a.token(0, blendTokens), dstRGB: gl.ZERO}
		if a.has(1) {
			s.dstRGB = a.token(1, blendTokens)
		}
		s.srcAlpha, s.dstAlpha = s.srcRGB, s.dstRGB
		if a.has(2) {
			s.srcAlpha = a.token(2, blendTokens)
		}
		if a.has(3) {
			s.dstAlpha = a.token(3, blendTokens)
		}
		return s
	}},
	{"blend_color", 4, 4, func(a *args) setting {
		return blendColorSetting{[4]float32{a.float(0), a.float(1), a.float(2), a.float(3)}}
	}},
	{"blend_equation", 1, 2, func(a *args) setting {
		s := blendEquationSetting{rgb: a.token(0, equationTokens)}
		s.alpha = s.rgb
		if a.has(1) {
			s.alpha = a.token(1, equationTokens)
		}
		return s
	}},
	{"scissor", 4, 4, func(a *args) setting {
		return scissorSetting{a.int32(0), a.int32(1), a.int32(2), a.int32(3)}
	}},
	{"stencil_func", 1, 4, func(a *args) setting {
		s := stencilFuncSetting{fn: a.token(0, compareTokens), mask: 8, face: gl.FRONT_AND_BACK}
		if a.has(1) {
			s.ref = a.int32(1)
		}
		if a.has(2) {
			s.mask = a.uint32(2)
		}
		if a.has(3) {
			s.face = a.token(3, faceTokens)
		}
		return s
	}},
	{"stencil_mask", 1, 2, func(a *args) setting {
		s := stencilMaskSetting{mask: a.uint32(0), face: gl.FRONT_AND_BACK}
		if a.has(1) {
			s.face = a.token(1, faceTokens)
		}
		return s
	}},
	{"stencil_op", 1, 4, func(a *args) setting {
		s := stencilOpSetting{sfail: a.token(0, stencilOpTokens), dpfail: gl.KEEP, dppass: gl.KEEP, face: gl.FRONT_AND_BACK}
		if a.has(1) {
			s.dpfail = a.token(1, stencilOpTokens)
		}
		if a.has(2) {
			s.dppass = a.token(2, stencilOpTokens)
		}
		if a.has(3) {
			s.face = a.token(3, faceTokens)
		}
		return s
	}},
	{"depth_func", 1, 1, func(a *args) setting {
		return depthFuncSetting{a.token(0, compareTokens)}
	}},
	{"depth_mask", 1, 1, func(a *args) setting {
		return depthMaskSetting{a.bool(0)}
	}},
	{"color_mask", 4, 4, func(a *args) setting {
		return colorMaskSetting{[4]bool{a.bool(0), a.bool(1), a.bool(2), a.bool(3)}}
	}},
	{"sample_coverage", 1, 2, func(a *args) setting {
		if on, ok := asBool(a.vals[0]); ok && len(a.vals) == 1 {
			return capabilitySetting{"sample_coverage", gl.SAMPLE_COVERAGE, on}
		}
		s := sampleCoverageSetting{value: a.float(0)}
		if a.has(1) {
			s.invert = a.bool(1)
		}
		return s
	}},
	{"clear_color", 4, 4, func(a *args) setting {
		return clearColorSetting{[4]float32{a.float(0), a.float(1), a.float(2), a.float(3)}}
	}},
	{"clear_depth", 1, 1, func(a *args) setting {
		return clearDepthSetting{a.float(0)}
	}},
	{"clear_stencil", 1, 1, func(a *args) setting {
		return clearStencilSetting{a.int32(0)}
	}},
}

// capabilityNames are the plain on/off states. cull_face and
// sample_coverage also accept a bool but carry a mode as well.
var capabilityNames = []string{
	"blend",
	"depth_test",
	"dither",
	"polygon_offset_fill",
	"sample_alpha_to_coverage",
	"scissor_test",
	"stencil_test",
	"line_smooth",
	"polygon_smooth",
	"multisample",
}

var stateIndex = make(map[string]int)

func init() {
	for _, name := range capabilityNames {
		stateSpecs = append(stateSpecs, stateSpec{name, 1, 1, func(a *args) setting {
			on := a.bool(0)
			if a.err != nil {
				return nil
			}
			capability, err := gl.Lookup(name, a.profile)
			if err != nil {
				a.err = unsupported(name, "capability is not defined in the %s profile", a.profile)
				return nil
			}
			return capabilitySetting{name, capability, on}
		}})
	}
	for i, spec := range stateSpecs {
		stateIndex[spec.name] = i
	}
}

// StateNames returns every state name SetState accepts, in the order
// states are applied.
func StateNames() []string {
	names := make([]string, len(stateSpecs))
	for i, spec := range stateSpecs {
		names[i] = spec.name
	}
	return names
}

// parseState validates every entry of s against profile p without
// touching the driver. Unknown names are reported first (sorted), then
// the first invalid entry in application order.
func parseState(s State, p gl.Profile) ([]setting, error) {
	type entry struct {
		index int
		key   string
		value any
	}
	entries := make([]entry, 0, len(s))
	var unknown []string
	for key, v := range s {
		idx, ok := stateIndex[gl.Normalize(key)]
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		entries = append(entries, entry{idx, key, v})
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, invalid(unknown[0], "unknown state")
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].index != entries[j].index {
			return entries[i].index < entries[j].index
		}
		return entries[i].key < entries[j].key
	})

	settings := make([]setting, 0, len(entries))
	for i, e := range entries {
		spec := &stateSpecs[e.index]
		if i > 0 && entries[i-1].index == e.index {
			return nil, invalid(spec.name, "given twice, as %q and %q", entries[i-1].key, e.key)
		}
		vals := argList(e.value)
		if len(vals) < spec.min || len(vals) > spec.max {
			return nil, arityError(spec, len(vals))
		}
		a := &args{state: spec.name, profile: p, vals: vals}
		st := spec.parse(a)
		if a.err != nil {
			return nil, a.err
		}
		settings = append(settings, st)
	}
	return settings, nil
}

func arityError(spec *stateSpec, got int) error {
	if spec.min == spec.max {
		return invalid(spec.name, "want %d values, got %d", spec.min, got)
	}
	return invalid(spec.name, "want %d to %d values, got %d", spec.min, spec.max, got)
}

// SetState applies a preset and explicit overrides in one validated
// step. Preset values fill only the names overrides leave out; an empty
// preset applies overrides alone.
//
// Every entry is validated before the first native call, so a request
// rejected with ErrInvalidArgument or ErrUnsupportedParameter leaves the
// context untouched. A *DriverError stops application at the rejected
// call; earlier calls have taken effect.
func (c *Context) SetState(preset string, overrides State) error {
	merged, err := withPreset(preset, overrides)
	if err != nil {
		return err
	}
	settings, err := parseState(merged, c.profile)
	if err != nil {
		return err
	}
	for _, st := range settings {
		if err := st.apply(c); err != nil {
			return err
		}
	}
	Logger().Debug("gloo: state applied", "preset", preset, "states", len(settings))
	return nil
}

// withPreset merges the named preset under overrides.
func withPreset(preset string, overrides State) (State, error) {
	if preset == "" {
		return overrides, nil
	}
	values, ok := presets[gl.Normalize(preset)]
	if !ok {
		return nil, invalid(preset, "unknown preset, want one of %v", Presets())
	}
	given := make(map[string]bool, len(overrides))
	merged := make(State, len(values)+len(overrides))
	for k, v := range overrides {
		given[gl.Normalize(k)] = true
		merged[k] = v
	}
	for k, v := range values {
		if !given[k] {
			merged[k] = v
		}
	}
	return merged, nil
}

type viewportSetting struct{ x, y, w, h int32 }

func (s viewportSetting) apply(c *Context) error {
	return c.call("Viewport", func() { c.fns.Viewport(s.x, s.y, s.w, s.h) })
}

type scissorSetting struct{ x, y, w, h int32 }

func (s scissorSetting) apply(c *Context) error {
	return c.call("Scissor", func() { c.fns.Scissor(s.x, s.y, s.w, s.h) })
}

type hintSetting struct{ target, mode gl.Enum }

func (s hintSetting) apply(c *Context) error {
	return c.call("Hint", func() { c.fns.Hint(s.target, s.mode) })
}

type depthRangeSetting struct{ near, far float32 }

func (s depthRangeSetting) apply(c *Context) error {
	return c.call("DepthRangef", func() { c.fns.DepthRangef(s.near, s.far) })
}

type frontFaceSetting struct{ mode gl.Enum }

func (s frontFaceSetting) apply(c *Context) error {
	return c.call("FrontFace", func() { c.fns.FrontFace(s.mode) })
}

type cullFaceSetting struct{ mode gl.Enum }

func (s cullFaceSetting) apply(c *Context) error {
	return c.call("CullFace", func() { c.fns.CullFace(s.mode) })
}

type lineWidthSetting struct{ width float32 }

func (s lineWidthSetting) apply(c *Context) error {
	return c.call("LineWidth", func() { c.fns.LineWidth(s.width) })
}

type polygonOffsetSetting struct{ factor, units float32 }

func (s polygonOffsetSetting) apply(c *Context) error {
	return c.call("PolygonOffset", func() { c.fns.PolygonOffset(s.factor, s.units) })
}

type blendFuncSetting struct{ srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum }

func (s blendFuncSetting) apply(c *Context) error {
	return c.call("BlendFuncSeparate", func() {
		c.fns.BlendFuncSeparate(s.srcRGB, s.dstRGB, s.srcAlpha, s.dstAlpha)
	})
}

type blendColorSetting struct{ rgba [4]float32 }

func (s blendColorSetting) apply(c *Context) error {
	return c.call("BlendColor", func() { c.fns.BlendColor(s.rgba[0], s.rgba[1], s.rgba[2], s.rgba[3]) })
}

type blendEquationSetting struct{ rgb, alpha gl.Enum }

func (s blendEquationSetting) apply(c *Context) error {
	return c.call("BlendEquationSeparate", func() { c.fns.BlendEquationSeparate(s.rgb, s.alpha) })
}

type stencilFuncSetting struct {
	fn   gl.Enum
	ref  int32
	mask uint32
	face gl.Enum
}

func (s stencilFuncSetting) apply(c *Context) error {
	return c.call("StencilFuncSeparate", func() { c.fns.StencilFuncSeparate(s.face, s.fn, s.ref, s.mask) })
}

type stencilMaskSetting struct {
	mask uint32
	face gl.Enum
}

func (s stencilMaskSetting) apply(c *Context) error {
	return c.call("StencilMaskSeparate", func() { c.fns.StencilMaskSeparate(s.face, s.mask) })
}

type stencilOpSetting struct{ sfail, dpfail, dppass, face gl.Enum }

func (s stencilOpSetting) apply(c *Context) error {
	return c.call("StencilOpSeparate", func() { c.fns.StencilOpSeparate(s.face, s.sfail, s.dpfail, s.dppass) })
}

type depthFuncSetting struct{ fn gl.Enum }

func (s depthFuncSetting) apply(c *Context) error {
	return c.call("DepthFunc", func() { c.fns.DepthFunc(s.fn) })
}

type depthMaskSetting struct{ flag bool }

func (s depthMaskSetting) apply(c *Context) error {
	return c.call("DepthMask", func() { c.fns.DepthMask(s.flag) })
}

type colorMaskSetting struct{ rgba [4]bool }

func (s colorMaskSetting) apply(c *Context) error {
	return c.call("ColorMask", func() { c.fns.ColorMask(s.rgba[0], s.rgba[1], s.rgba[2], s.rgba[3]) })
}

type sampleCoverageSetting struct {
	value  float32
	invert bool
}

func (s sampleCoverageSetting) apply(c *Context) error {
	return c.call("SampleCoverage", func() { c.fns.SampleCoverage(s.value, s.invert) })
}

type clearColorSetting struct{ rgba [4]float32 }

func (s clearColorSetting) apply(c *Context) error {
	return c.call("ClearColor", func() { c.fns.ClearColor(s.rgba[0], s.rgba[1], s.rgba[2], s.rgba[3]) })
}

type clearDepthSetting struct{ depth float32 }

func (s clearDepthSetting) apply(c *Context) error {
	return c.call("ClearDepthf", func() { c.fns.ClearDepthf(s.depth) })
}

type clearStencilSetting struct{ index int32 }

func (s clearStencilSetting) apply(c *Context) error {
	return c.call("ClearStencil", func() { c.fns.ClearStencil(s.index) })
}

type capabilitySetting struct {
	name       string
	capability gl.Enum
	on         bool
}

func (s capabilitySetting) apply(c *Context) error {
	if s.on {
		return c.call("Enable", func() { c.fns.Enable(s.capability) })
	}
	return c.call("Disable", func() { c.fns.Disable(s.capability) })
}
