// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opencl

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gloo"
)

// SharedContext is a compute context sharing with GL, together with the
// platform and device indices it was created on. Indices are -1 when the
// runtime chose a device that could not be matched to the enumeration.
type SharedContext struct {
	Context
	Platform int
	Device   int
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerOptions)

type managerOptions struct {
	shareGroup bool
}

// WithShareGroup forces (or disables) creation from the current GL share
// group. It defaults to true on macOS, where that is the only way to
// share with CGL.
func WithShareGroup(on bool) ManagerOption {
	return func(o *managerOptions) { o.shareGroup = on }
}

// Manager creates and caches the shared context. It is safe for
// concurrent use; concurrent first requests create exactly one context.
type Manager struct {
	rt   Runtime
	opts managerOptions

	mu      sync.Mutex // serialises creation
	current atomic.Pointer[SharedContext]
	created atomic.Int64
}

// NewManager returns a manager over rt. A nil rt is allowed; every
// request then fails with ErrNoRuntime.
func NewManager(rt Runtime, opts ...ManagerOption) *Manager {
	o := managerOptions{shareGroup: runtime.GOOS == "darwin"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager{rt: rt, opts: o}
}

// Runtime returns the runtime the manager creates contexts on.
func (m *Manager) Runtime() Runtime { return m.rt }

// Context returns the cached context, or creates one with the default
// device search if none exists yet.
func (m *Manager) Context() (*SharedContext, error) {
	return m.get(selection{})
}

// ContextFor returns a context on the given platform and device. The
// cached context is returned when it was created on the same pair;
// otherwise a new context is created and replaces the cache.
func (m *Manager) ContextFor(platform, device int) (*SharedContext, error) {
	return m.get(selection{platform: platform, device: device, explicit: true})
}

// Current returns the cached context without creating one.
func (m *Manager) Current() *SharedContext {
	return m.current.Load()
}

// Created reports how many contexts the manager has created.
func (m *Manager) Created() int {
	return int(m.created.Load())
}

type selection struct {
	platform, device int
	explicit         bool
}

func (s selection) matches(ctx *SharedContext) bool {
	if ctx == nil {
		return false
	}
	if !s.explicit {
		return true
	}
	return ctx.Platform == s.platform && ctx.Device == s.device
}

func (m *Manager) get(sel selection) (*SharedContext, error) {
	if ctx := m.current.Load(); sel.matches(ctx) {
		return ctx, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ctx := m.current.Load(); sel.matches(ctx) {
		return ctx, nil
	}

	ctx, err := m.create(sel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContextCreationFailed, err)
	}
	m.current.Store(ctx)
	m.created.Add(1)
	gloo.Logger().Info("opencl: shared context created",
		"runtime", m.rt.Name(),
		"platform", ctx.Platform,
		"device", ctx.Device,
		"devices", deviceNames(ctx.Devices()))
	return ctx, nil
}

// create picks one strategy up front: an explicit pair is opened
// directly, a share group is used when configured, otherwise platforms
// are searched.
func (m *Manager) create(sel selection) (*SharedContext, error) {
	if m.rt == nil {
		return nil, ErrNoRuntime
	}
	if !m.rt.GLSharing() {
		return nil, ErrNoGLSharing
	}
	switch {
	case sel.explicit:
		return openPair(m.rt, sel.platform, sel.device)
	case m.opts.shareGroup:
		return openShareGroup(m.rt)
	default:
		return search(m.rt)
	}
}

func deviceNames(devs []Device) []string {
	names := make([]string, len(devs))
	for i, d := range devs {
		names[i] = d.Name()
	}
	return names
}
