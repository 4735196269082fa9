// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package opencl manages one compute context shared with the current GL
// context, and exposes GL buffers and textures as compute memory objects.
//
// The compute API itself is abstracted by Runtime. A runtime is
// registered once, usually through a blank import:
//
//	import _ "github.com/gogpu/gloo/opencl/halcl" // Vulkan adapters via wgpu HAL
//
// after which GetContext lazily creates and caches the shared context:
//
//	ctx, err := opencl.GetContext()
//	if errors.Is(err, opencl.ErrContextCreationFailed) {
//	    // no GPU-class device can share with GL
//	}
//
// # Device selection
//
// An explicit (platform, device) pair is opened directly. On macOS the
// context comes from the current GL share group. Elsewhere platforms are
// searched in enumeration order: a whole-platform context is tried first
// and kept only if its first device is a GPU; otherwise each GPU-class
// device of the platform is tried on its own.
//
// # Interop
//
// BufferInterop and TextureInterop wrap GL resources and return a View:
// a compute memory object aliasing the GL storage. Callers acquire the
// object on their compute queue before use and release it afterwards.
package opencl
