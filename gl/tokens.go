// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Token lookup errors.
var (
	// ErrUnknownToken is returned when a symbolic name has no native code.
	ErrUnknownToken = errors.New("gl: unknown token")

	// ErrUnavailable is returned when a token exists but is not defined
	// in the requested profile.
	ErrUnavailable = errors.New("gl: token not available in profile")
)

// Profile is a capability set that decides which names are defined.
type Profile uint8

const (
	// ProfileDesktop is full desktop OpenGL, including legacy hints and
	// fixed-function capabilities.
	ProfileDesktop Profile = iota

	// ProfileES2 is the restricted OpenGL ES 2.0 namespace.
	ProfileES2
)

// String returns the profile name.
func (p Profile) String() string {
	switch p {
	case ProfileDesktop:
		return "desktop"
	case ProfileES2:
		return "es2"
	default:
		return fmt.Sprintf("Profile(%d)", uint8(p))
	}
}

type token struct {
	name        string
	value       Enum
	desktopOnly bool
}

// tokenList is the single source of symbolic names. Anything not listed
// here cannot be reached through Lookup.
var tokenList = []token{
	{"blend", BLEND, false},
	{"cull_face", CULL_FACE, false},
	{"depth_test", DEPTH_TEST, false},
	{"dither", DITHER, false},
	{"polygon_offset_fill", POLYGON_OFFSET_FILL, false},
	{"sample_alpha_to_coverage", SAMPLE_ALPHA_TO_COVERAGE, false},
	{"sample_coverage", SAMPLE_COVERAGE, false},
	{"scissor_test", SCISSOR_TEST, false},
	{"stencil_test", STENCIL_TEST, false},
	{"line_smooth", LINE_SMOOTH, true},
	{"polygon_smooth", POLYGON_SMOOTH, true},
	{"multisample", MULTISAMPLE, true},

	{"front", FRONT, false},
	{"back", BACK, false},
	{"front_and_back", FRONT_AND_BACK, false},
	{"cw", CW, false},
	{"ccw", CCW, false},

	{"never", NEVER, false},
	{"less", LESS, false},
	{"equal", EQUAL, false},
	{"lequal", LEQUAL, false},
	{"greater", GREATER, false},
	{"notequal", NOTEQUAL, false},
	{"gequal", GEQUAL, false},
	{"always", ALWAYS, false},

	{"zero", ZERO, false},
	{"keep", KEEP, false},
	{"replace", REPLACE, false},
	{"incr", INCR, false},
	{"decr", DECR, false},
	{"invert", INVERT, false},
	{"incr_wrap", INCR_WRAP, false},
	{"decr_wrap", DECR_WRAP, false},

	{"one", ONE, false},
	{"src_color", SRC_COLOR, false},
	{"one_minus_src_color", ONE_MINUS_SRC_COLOR, false},
	{"src_alpha", SRC_ALPHA, false},
	{"one_minus_src_alpha", ONE_MINUS_SRC_ALPHA, false},
	{"dst_alpha", DST_ALPHA, false},
	{"one_minus_dst_alpha", ONE_MINUS_DST_ALPHA, false},
	{"dst_color", DST_COLOR, false},
	{"one_minus_dst_color", ONE_MINUS_DST_COLOR, false},
	{"src_alpha_saturate", SRC_ALPHA_SATURATE, false},
	{"constant_color", CONSTANT_COLOR, false},
	{"one_minus_constant_color", ONE_MINUS_CONSTANT_COLOR, false},
	{"constant_alpha", CONSTANT_ALPHA, false},
	{"one_minus_constant_alpha", ONE_MINUS_CONSTANT_ALPHA, false},

	{"func_add", FUNC_ADD, false},
	{"func_subtract", FUNC_SUBTRACT, false},
	{"func_reverse_subtract", FUNC_REVERSE_SUBTRACT, false},
	{"min", MIN, true},
	{"max", MAX, true},

	{"dont_care", DONT_CARE, false},
	{"fastest", FASTEST, false},
	{"nicest", NICEST, false},
	{"generate_mipmap_hint", GENERATE_MIPMAP_HINT, false},
	{"perspective_correction_hint", PERSPECTIVE_CORRECTION_HINT, true},
	{"point_smooth_hint", POINT_SMOOTH_HINT, true},
	{"line_smooth_hint", LINE_SMOOTH_HINT, true},
	{"polygon_smooth_hint", POLYGON_SMOOTH_HINT, true},
	{"fog_hint", FOG_HINT, true},
	{"texture_compression_hint", TEXTURE_COMPRESSION_HINT, true},
	{"fragment_shader_derivative_hint", FRAGMENT_SHADER_DERIVATIVE_HINT, true},

	{"array_buffer", ARRAY_BUFFER, false},
	{"element_array_buffer", ELEMENT_ARRAY_BUFFER, false},
	{"texture_1d", TEXTURE_1D, true},
	{"texture_2d", TEXTURE_2D, false},
	{"texture_3d", TEXTURE_3D, true},

	{"rgb", RGB, false},
	{"rgba", RGBA, false},
	{"unsigned_byte", UNSIGNED_BYTE, false},
}

var (
	tokensByName  = make(map[string]token, len(tokenList))
	tokensByValue = make(map[Enum]token, len(tokenList))
)

func init() {
	for _, t := range tokenList {
		tokensByName[t.name] = t
		// ZERO shares its code with FALSE and NO_ERROR; keep the first name.
		if _, ok := tokensByValue[t.value]; !ok {
			tokensByValue[t.value] = t
		}
	}
}

// Normalize folds case and strips an optional "gl_" prefix, so "GL_CW",
// "Cw" and "cw" all name the same token.
func Normalize(name string) string {
	n := cases.Fold().String(strings.TrimSpace(name))
	return strings.TrimPrefix(n, "gl_")
}

// Lookup resolves a symbolic token to its native code in profile p.
func Lookup(name string, p Profile) (Enum, error) {
	t, ok := tokensByName[Normalize(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownToken, name)
	}
	if t.desktopOnly && p != ProfileDesktop {
		return 0, fmt.Errorf("%w: %q in %s", ErrUnavailable, t.name, p)
	}
	return t.value, nil
}

// Name returns the symbolic name of e, or a hex literal if e has none.
func Name(e Enum) string {
	if t, ok := tokensByValue[e]; ok {
		return t.name
	}
	return fmt.Sprintf("0x%04x", uint32(e))
}

// Available reports whether e is defined in profile p. Codes the token
// table does not know are reported as available; the driver is the judge
// for those.
func Available(e Enum, p Profile) bool {
	t, ok := tokensByValue[e]
	if !ok {
		return true
	}
	return !t.desktopOnly || p == ProfileDesktop
}
