// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/gogpu/gloo/gl"
)

// argList turns a state value into its argument list. Sequences (any
// slice or array kind other than string) are spread; anything else is a
// single argument.
func argList(v any) []any {
	if seq, ok := asSeq(v); ok {
		return seq
	}
	return []any{v}
}

func asSeq(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}

func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// asInt accepts integer kinds and integral floats.
func asInt(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Bool {
		return rv.Bool(), true
	}
	return false, false
}

func asString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// tokenSet is an immutable set of normalized token names.
type tokenSet struct {
	names []string
	index map[string]bool
}

func newTokenSet(names ...string) tokenSet {
	s := tokenSet{names: names, index: make(map[string]bool, len(names))}
	for _, n := range names {
		s.index[n] = true
	}
	return s
}

func (s tokenSet) has(name string) bool { return s.index[name] }

func (s tokenSet) String() string {
	sorted := append([]string(nil), s.names...)
	sort.Strings(sorted)
	return "{" + strings.Join(sorted, ", ") + "}"
}

var (
	faceTokens      = newTokenSet("front", "back", "front_and_back")
	frontFaceTokens = newTokenSet("cw", "ccw")
	compareTokens   = newTokenSet("never", "less", "equal", "lequal", "greater", "notequal", "gequal", "always")
	stencilOpTokens = newTokenSet("zero", "keep", "replace", "incr", "decr", "invert", "incr_wrap", "decr_wrap")
	blendTokens     = newTokenSet(
		"zero", "one",
		"src_color", "one_minus_src_color", "dst_color", "one_minus_dst_color",
		"src_alpha", "one_minus_src_alpha", "dst_alpha", "one_minus_dst_alpha",
		"constant_color", "one_minus_constant_color", "constant_alpha", "one_minus_constant_alpha",
		"src_alpha_saturate",
	)
	equationTokens   = newTokenSet("func_add", "func_subtract", "func_reverse_subtract", "min", "max")
	hintTargetTokens = newTokenSet(
		"generate_mipmap_hint", "perspective_correction_hint", "point_smooth_hint",
		"line_smooth_hint", "polygon_smooth_hint", "fog_hint",
		"texture_compression_hint", "fragment_shader_derivative_hint",
	)
	hintModeTokens = newTokenSet("dont_care", "fastest", "nicest")
)

// args reads one state's argument list slot by slot. The first failure
// sticks; later reads return zero values.
type args struct {
	state   string
	profile gl.Profile
	vals    []any
	err     error
}

func (a *args) has(i int) bool { return i < len(a.vals) }

func (a *args) token(i int, allowed tokenSet) gl.Enum {
	if a.err != nil {
		return 0
	}
	var name string
	switch v := a.vals[i].(type) {
	case gl.Enum:
		name = gl.Name(v)
	default:
		s, ok := asString(v)
		if !ok {
			a.err = invalidType(a.state, "argument %d: want a token string, got %T", i, v)
			return 0
		}
		name = gl.Normalize(s)
	}
	if !allowed.has(name) {
		a.err = invalid(a.state, "argument %d: %q is not one of %s", i, name, allowed)
		return 0
	}
	e, err := gl.Lookup(name, a.profile)
	if err != nil {
		a.err = unsupported(a.state, "%q is not defined in the %s profile", name, a.profile)
		return 0
	}
	return e
}

func (a *args) float(i int) float32 {
	if a.err != nil {
		return 0
	}
	f, ok := asFloat(a.vals[i])
	if !ok {
		a.err = invalidType(a.state, "argument %d: want a number, got %T", i, a.vals[i])
		return 0
	}
	if math.IsNaN(f) {
		a.err = invalid(a.state, "argument %d: NaN", i)
		return 0
	}
	if math.IsInf(f, 0) || math.Abs(f) > math.MaxFloat32 {
		a.err = invalid(a.state, "argument %d: %g out of float32 range", i, f)
		return 0
	}
	return float32(f)
}

func (a *args) int32(i int) int32 {
	n := a.intRange(i, math.MinInt32, math.MaxInt32)
	return int32(n)
}

func (a *args) uint32(i int) uint32 {
	n := a.intRange(i, 0, math.MaxUint32)
	return uint32(n)
}

func (a *args) intRange(i int, lo, hi int64) int64 {
	if a.err != nil {
		return 0
	}
	n, ok := asInt(a.vals[i])
	if !ok {
		a.err = invalidType(a.state, "argument %d: want an integer, got %T", i, a.vals[i])
		return 0
	}
	if n < lo || n > hi {
		a.err = invalid(a.state, "argument %d: %d out of range [%d, %d]", i, n, lo, hi)
		return 0
	}
	return n
}

func (a *args) bool(i int) bool {
	if a.err != nil {
		return false
	}
	b, ok := asBool(a.vals[i])
	if !ok {
		a.err = invalidType(a.state, "argument %d: want a bool, got %T", i, a.vals[i])
	}
	return b
}
