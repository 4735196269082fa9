// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package halcl

import (
	"github.com/gogpu/gloo/opencl"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

func init() {
	// New opens nothing until the first context request.
	_ = opencl.Register(New())
}
