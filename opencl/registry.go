// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opencl

import (
	"errors"
	"io"
	"sync"
)

var (
	registryMu sync.RWMutex
	registered Runtime
	defaultMgr *Manager
)

// Register installs rt as the process-wide compute runtime.
//
// Only one runtime can be registered. Subsequent calls replace the
// previous one and reset the default manager, so the next GetContext
// creates a fresh context on rt. A replaced runtime that implements
// io.Closer is closed.
//
// Typical usage via blank import in runtime packages:
//
//	func init() {
//	    opencl.Register(halcl.New())
//	}
func Register(rt Runtime) error {
	if rt == nil {
		return errors.New("opencl: runtime must not be nil")
	}
	registryMu.Lock()
	old := registered
	registered = rt
	defaultMgr = NewManager(rt)
	registryMu.Unlock()
	if c, ok := old.(io.Closer); ok && old != rt {
		_ = c.Close()
	}
	return nil
}

// Registered returns the registered runtime, or nil if none.
func Registered() Runtime {
	registryMu.RLock()
	rt := registered
	registryMu.RUnlock()
	return rt
}

// Default returns the process-wide manager over the registered runtime.
// Without a registered runtime its requests fail with ErrNoRuntime.
func Default() *Manager {
	registryMu.RLock()
	m := defaultMgr
	registryMu.RUnlock()
	if m != nil {
		return m
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if defaultMgr == nil {
		defaultMgr = NewManager(registered)
	}
	return defaultMgr
}

// GetContext returns the shared context, creating it on first use with
// the default device search.
func GetContext() (*SharedContext, error) {
	return Default().Context()
}

// GetContextFor returns a shared context on the given platform and
// device indices.
func GetContextFor(platform, device int) (*SharedContext, error) {
	return Default().ContextFor(platform, device)
}
