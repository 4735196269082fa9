// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package halcl implements an opencl.Runtime on gogpu/wgpu HAL adapters.
//
// Each HAL backend instance is a platform and each adapter it enumerates
// is a device. A context opens its adapter with default limits and holds
// the resulting hal.Device and hal.Queue. GL objects are mirrored by HAL
// buffers and textures of matching size on that device. The storage is
// not aliased: data moves between GL and compute only by explicit copies.
//
// Importing the package for side effects registers a Vulkan runtime:
//
//	import _ "github.com/gogpu/gloo/opencl/halcl"
//
// An application that already owns a device (for example a gogpu window)
// can share it instead:
//
//	rt, err := halcl.FromProvider(provider)
//	opencl.Register(rt)
package halcl
