// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gloo provides a validated façade over GPU pipeline state.
//
// # Overview
//
// gloo accepts symbolic state names and values ("blend_func",
// []string{"src_alpha", "one"}), checks them against the active profile,
// and forwards them to the native graphics API in a single step. Invalid
// requests fail before the driver sees them; values the driver rejects
// come back as *DriverError.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gloo"
//	    "github.com/gogpu/gloo/gl/softgl"
//	)
//
//	c := gloo.NewContext(softgl.New(640, 480))
//
//	// Apply a preset with one override.
//	err := c.SetState("translucent", gloo.State{"depth_test": false})
//
//	// Or use a typed setter.
//	err = c.SetBlendColor(0, 0, 0, 1)
//
//	// Query state back.
//	v, err := c.GetParameter("front_face") // gl.CCW
//
// # Errors
//
// Every error matches one class under errors.Is:
//   - [ErrInvalidArgument]: wrong shape, arity, type or token
//   - [ErrUnsupportedParameter]: valid GL, but not in the active profile
//   - [ErrDriverRejected]: the driver raised a GL error
//
// Validation errors are *StateError values naming the offending state.
//
// # Profiles
//
// Desktop GL defines names that OpenGL ES 2.0 does not: fixed-function
// hints, line and polygon smoothing, min/max blend equations, 1D and 3D
// textures. A context validates against the profile its driver reports
// unless [WithProfile] overrides it.
//
// # Related packages
//
//   - gl: enum codes, the token table and the Functions interface
//   - gl/softgl: a software driver for headless use and tests
//   - opencl: the shared compute context and GL interop views
//   - opencl/halcl: a compute runtime over gogpu/wgpu HAL adapters
package gloo
