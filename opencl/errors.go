// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opencl

import "errors"

var (
	// ErrContextCreationFailed is returned when no shared context could be
	// created. It wraps one of the causes below or the runtime's error.
	ErrContextCreationFailed = errors.New("opencl: unable to find a suitable platform to share data with GL")

	// ErrNoRuntime means no Runtime is registered.
	ErrNoRuntime = errors.New("opencl: no compute runtime registered")

	// ErrNoGLSharing means the runtime was built without GL sharing.
	ErrNoGLSharing = errors.New("opencl: runtime does not support GL sharing")

	// ErrNoDevice means no platform offered a usable GPU-class device, or
	// an explicit index was out of range.
	ErrNoDevice = errors.New("opencl: no GPU device available")

	// ErrUnsupportedDimension is returned for texture views of 3-D
	// textures. Shared texture views are 2-D.
	ErrUnsupportedDimension = errors.New("opencl: texture dimension not supported for sharing")
)
