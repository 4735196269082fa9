// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halcl

import "errors"

var (
	// ErrBackendUnavailable means the HAL backend is not compiled in or
	// not registered.
	ErrBackendUnavailable = errors.New("halcl: HAL backend not available")

	// ErrNoShareGroup is returned for share-group requests; HAL has no GL
	// share group to create a context from.
	ErrNoShareGroup = errors.New("halcl: GL share group contexts are not supported")

	// ErrForeignDevice means a device from another runtime or platform
	// was passed to NewContext.
	ErrForeignDevice = errors.New("halcl: device does not belong to this platform")

	// ErrProviderNotHAL means a device provider does not expose HAL types.
	ErrProviderNotHAL = errors.New("halcl: provider does not expose HAL device and queue")

	// ErrClosed is returned by a runtime or context after Close.
	ErrClosed = errors.New("halcl: closed")
)
