// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"github.com/gogpu/gloo/gl"
)

type paramKind uint8

const (
	kindInt paramKind = iota
	kindMask
	kindEnum
	kindFloat
	kindBool
	kindString
)

var getterNames = [...]string{
	kindInt:    "GetIntegerv",
	kindMask:   "GetIntegerv",
	kindEnum:   "GetIntegerv",
	kindFloat:  "GetFloatv",
	kindBool:   "GetBooleanv",
	kindString: "GetString",
}

type param struct {
	pname       gl.Enum
	kind        paramKind
	n           int
	desktopOnly bool
}

// params maps queryable names to their native code and result shape.
var params = map[string]param{
	"viewport":                     {gl.VIEWPORT, kindInt, 4, false},
	"scissor_box":                  {gl.SCISSOR_BOX, kindInt, 4, false},
	"depth_range":                  {gl.DEPTH_RANGE, kindFloat, 2, false},
	"front_face":                   {gl.FRONT_FACE, kindEnum, 1, false},
	"cull_face_mode":               {gl.CULL_FACE_MODE, kindEnum, 1, false},
	"line_width":                   {gl.LINE_WIDTH, kindFloat, 1, false},
	"polygon_offset_factor":        {gl.POLYGON_OFFSET_FACTOR, kindFloat, 1, false},
	"polygon_offset_units":         {gl.POLYGON_OFFSET_UNITS, kindFloat, 1, false},
	"blend_color":                  {gl.BLEND_COLOR, kindFloat, 4, false},
	"blend_src_rgb":                {gl.BLEND_SRC_RGB, kindEnum, 1, false},
	"blend_dst_rgb":                {gl.BLEND_DST_RGB, kindEnum, 1, false},
	"blend_src_alpha":              {gl.BLEND_SRC_ALPHA, kindEnum, 1, false},
	"blend_dst_alpha":              {gl.BLEND_DST_ALPHA, kindEnum, 1, false},
	"blend_equation":               {gl.BLEND_EQUATION_RGB, kindEnum, 1, false},
	"blend_equation_rgb":           {gl.BLEND_EQUATION_RGB, kindEnum, 1, false},
	"blend_equation_alpha":         {gl.BLEND_EQUATION_ALPHA, kindEnum, 1, false},
	"stencil_func":                 {gl.STENCIL_FUNC, kindEnum, 1, false},
	"stencil_ref":                  {gl.STENCIL_REF, kindInt, 1, false},
	"stencil_value_mask":           {gl.STENCIL_VALUE_MASK, kindMask, 1, false},
	"stencil_writemask":            {gl.STENCIL_WRITEMASK, kindMask, 1, false},
	"stencil_fail":                 {gl.STENCIL_FAIL, kindEnum, 1, false},
	"stencil_pass_depth_fail":      {gl.STENCIL_PASS_DEPTH_FAIL, kindEnum, 1, false},
	"stencil_pass_depth_pass":      {gl.STENCIL_PASS_DEPTH_PASS, kindEnum, 1, false},
	"stencil_back_func":            {gl.STENCIL_BACK_FUNC, kindEnum, 1, false},
	"stencil_back_ref":             {gl.STENCIL_BACK_REF, kindInt, 1, false},
	"stencil_back_value_mask":      {gl.STENCIL_BACK_VALUE_MASK, kindMask, 1, false},
	"stencil_back_writemask":       {gl.STENCIL_BACK_WRITEMASK, kindMask, 1, false},
	"stencil_back_fail":            {gl.STENCIL_BACK_FAIL, kindEnum, 1, false},
	"stencil_back_pass_depth_fail": {gl.STENCIL_BACK_PASS_DEPTH_FAIL, kindEnum, 1, false},
	"stencil_back_pass_depth_pass": {gl.STENCIL_BACK_PASS_DEPTH_PASS, kindEnum, 1, false},
	"depth_func":                   {gl.DEPTH_FUNC, kindEnum, 1, false},
	"depth_writemask":              {gl.DEPTH_WRITEMASK, kindBool, 1, false},
	"color_writemask":              {gl.COLOR_WRITEMASK, kindBool, 4, false},
	"sample_coverage_value":        {gl.SAMPLE_COVERAGE_VALUE, kindFloat, 1, false},
	"sample_coverage_invert":       {gl.SAMPLE_COVERAGE_INVERT, kindBool, 1, false},
	"color_clear_value":            {gl.COLOR_CLEAR_VALUE, kindFloat, 4, false},
	"depth_clear_value":            {gl.DEPTH_CLEAR_VALUE, kindFloat, 1, false},
	"stencil_clear_value":          {gl.STENCIL_CLEAR_VALUE, kindInt, 1, false},
	"max_texture_size":             {gl.MAX_TEXTURE_SIZE, kindInt, 1, false},
	"max_viewport_dims":            {gl.MAX_VIEWPORT_DIMS, kindInt, 2, false},
	"aliased_line_width_range":     {gl.ALIASED_LINE_WIDTH_RANGE, kindFloat, 2, false},
	"red_bits":                     {gl.RED_BITS, kindInt, 1, false},
	"green_bits":                   {gl.GREEN_BITS, kindInt, 1, false},
	"blue_bits":                    {gl.BLUE_BITS, kindInt, 1, false},
	"alpha_bits":                   {gl.ALPHA_BITS, kindInt, 1, false},
	"depth_bits":                   {gl.DEPTH_BITS, kindInt, 1, false},
	"stencil_bits":                 {gl.STENCIL_BITS, kindInt, 1, false},
	"sample_buffers":               {gl.SAMPLE_BUFFERS, kindInt, 1, false},
	"samples":                      {gl.SAMPLES, kindInt, 1, false},
	"doublebuffer":                 {gl.DOUBLEBUFFER, kindBool, 1, true},
	"stereo":                       {gl.STEREO, kindBool, 1, true},
	"vendor":                       {gl.VENDOR, kindString, 1, false},
	"renderer":                     {gl.RENDERER, kindString, 1, false},
	"version":                      {gl.VERSION, kindString, 1, false},
	"shading_language_version":     {gl.SHADING_LANGUAGE_VERSION, kindString, 1, false},
}

func init() {
	// Hint targets and capabilities are queryable under their own names.
	for _, name := range hintTargetTokens.names {
		e, _ := gl.Lookup(name, gl.ProfileDesktop)
		params[name] = param{e, kindEnum, 1, !gl.Available(e, gl.ProfileES2)}
	}
	for _, name := range append([]string{"cull_face", "sample_coverage"}, capabilityNames...) {
		e, _ := gl.Lookup(name, gl.ProfileDesktop)
		params[name] = param{e, kindBool, 1, !gl.Available(e, gl.ProfileES2)}
	}
}

// GetParameter queries a piece of context state by name, e.g.
// "viewport", "front_face" or "version".
//
// The result is int, gl.Enum, float64, bool or string for single values
// and []int, []float64 or []bool for multi-valued ones.
func (c *Context) GetParameter(name string) (any, error) {
	if name == "" {
		return nil, invalid("parameter", "empty name")
	}
	key := gl.Normalize(name)
	p, ok := params[key]
	if !ok {
		return nil, unsupported(name, "unknown parameter")
	}
	if p.desktopOnly && c.profile != gl.ProfileDesktop {
		return nil, unsupported(key, "parameter is not defined in the %s profile", c.profile)
	}

	var (
		ints   []int32
		floats []float32
		bools  []bool
		str    string
	)
	err := c.call(getterNames[p.kind], func() {
		switch p.kind {
		case kindInt, kindMask, kindEnum:
			ints = make([]int32, p.n)
			c.fns.GetIntegerv(p.pname, ints)
		case kindFloat:
			floats = make([]float32, p.n)
			c.fns.GetFloatv(p.pname, floats)
		case kindBool:
			bools = make([]bool, p.n)
			c.fns.GetBooleanv(p.pname, bools)
		case kindString:
			str = c.fns.GetString(p.pname)
		}
	})
	if err != nil {
		return nil, err
	}

	switch p.kind {
	case kindEnum:
		return gl.Enum(uint32(ints[0])), nil
	case kindMask:
		return int(uint32(ints[0])), nil
	case kindInt:
		if p.n == 1 {
			return int(ints[0]), nil
		}
		out := make([]int, p.n)
		for i, v := range ints {
			out[i] = int(v)
		}
		return out, nil
	case kindFloat:
		if p.n == 1 {
			return float64(floats[0]), nil
		}
		out := make([]float64, p.n)
		for i, v := range floats {
			out[i] = float64(v)
		}
		return out, nil
	case kindBool:
		if p.n == 1 {
			return bools[0], nil
		}
		return bools, nil
	default:
		return str, nil
	}
}

// Configuration describes the framebuffer the context renders into.
type Configuration struct {
	RedBits     int
	GreenBits   int
	BlueBits    int
	AlphaBits   int
	DepthBits   int
	StencilBits int
	Samples     int

	// Desktop only; false under ES 2.0.
	DoubleBuffer bool
	Stereo       bool
}

// Configuration queries the framebuffer configuration.
func (c *Context) Configuration() (Configuration, error) {
	var cfg Configuration
	ints := []struct {
		name string
		dst  *int
	}{
		{"red_bits", &cfg.RedBits},
		{"green_bits", &cfg.GreenBits},
		{"blue_bits", &cfg.BlueBits},
		{"alpha_bits", &cfg.AlphaBits},
		{"depth_bits", &cfg.DepthBits},
		{"stencil_bits", &cfg.StencilBits},
		{"samples", &cfg.Samples},
	}
	for _, q := range ints {
		v, err := c.GetParameter(q.name)
		if err != nil {
			return Configuration{}, err
		}
		*q.dst = v.(int)
	}
	if c.profile != gl.ProfileDesktop {
		return cfg, nil
	}
	for _, q := range []struct {
		name string
		dst  *bool
	}{
		{"doublebuffer", &cfg.DoubleBuffer},
		{"stereo", &cfg.Stereo},
	} {
		v, err := c.GetParameter(q.name)
		if err != nil {
			return Configuration{}, err
		}
		*q.dst = v.(bool)
	}
	return cfg, nil
}
