// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"maps"
	"slices"

	"github.com/gogpu/gloo/gl"
)

// presets is the read-only preset table. Keys are normalized names.
var presets = map[string]State{
	"opaque": {
		"depth_test": true,
		"cull_face":  false,
		"blend":      false,
	},
	"translucent": {
		"depth_test": true,
		"cull_face":  false,
		"blend":      true,
		"blend_func": []string{"src_alpha", "one_minus_src_alpha"},
	},
	"additive": {
		"depth_test": false,
		"cull_face":  false,
		"blend":      true,
		"blend_func": []string{"src_alpha", "one"},
	},
}

// Presets returns the preset names in sorted order.
func Presets() []string {
	return slices.Sorted(maps.Keys(presets))
}

// LookupPreset returns a copy of the named preset's values.
func LookupPreset(name string) (State, bool) {
	values, ok := presets[gl.Normalize(name)]
	if !ok {
		return nil, false
	}
	return copyState(values), true
}

// GetStatePresets returns a copy of the whole preset table, keyed by
// preset name.
func GetStatePresets() map[string]State {
	out := make(map[string]State, len(presets))
	for name, values := range presets {
		out[name] = copyState(values)
	}
	return out
}

func copyState(s State) State {
	out := make(State, len(s))
	for k, v := range s {
		if seq, ok := v.([]string); ok {
			v = slices.Clone(seq)
		}
		out[k] = v
	}
	return out
}
