// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halcl

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gloo"
	"github.com/gogpu/gloo/opencl"
)

// Backend opens one HAL instance. Each backend becomes one platform.
type Backend struct {
	Name string
	Open func() (hal.Instance, error)
}

// VulkanBackend opens the registered Vulkan HAL backend.
func VulkanBackend() Backend {
	return BackendFor(gputypes.BackendVulkan)
}

// BackendFor opens whichever HAL backend is registered for variant.
func BackendFor(variant gputypes.Backend) Backend {
	return Backend{
		Name: variant.String(),
		Open: func() (hal.Instance, error) {
			b, ok := hal.GetBackend(variant)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrBackendUnavailable, variant)
			}
			return b.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
		},
	}
}

// FromHAL wraps a hal.Backend value, for backends not in the registry.
func FromHAL(b hal.Backend) Backend {
	return Backend{
		Name: b.Variant().String(),
		Open: func() (hal.Instance, error) {
			return b.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
		},
	}
}

// WithBackends replaces the default Vulkan backend. Platforms are
// enumerated in the order given.
func WithBackends(backends ...Backend) Option {
	return func(o *options) { o.backends = backends }
}

// Runtime is an opencl.Runtime over HAL adapters. Instances are opened on
// the first call to Platforms and destroyed by Close.
type Runtime struct {
	opts options

	mu        sync.Mutex
	loaded    bool
	loadErr   error
	platforms []*platform
	contexts  []*Context
	closed    bool
}

// New returns a runtime over opts' backends, Vulkan by default. No HAL
// call is made until Platforms.
func New(opts ...Option) *Runtime {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.backends == nil {
		o.backends = []Backend{VulkanBackend()}
	}
	return &Runtime{opts: o}
}

// Name implements opencl.Runtime.
func (r *Runtime) Name() string { return "hal" }

// GLSharing implements opencl.Runtime. Memory objects mirror their GL
// object with separate HAL storage of matching size; GL writes are not
// visible to compute until copied.
func (r *Runtime) GLSharing() bool { return !r.opts.noSharing }

// Platforms implements opencl.Runtime. Backends that fail to open or
// expose no adapters are skipped; an error is returned only when every
// backend failed.
func (r *Runtime) Platforms() ([]opencl.Platform, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrClosed
	}
	if !r.loaded {
		r.load()
	}
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]opencl.Platform, len(r.platforms))
	for i, p := range r.platforms {
		out[i] = p
	}
	return out, nil
}

func (r *Runtime) load() {
	r.loaded = true
	log := gloo.Logger()
	var errs []error
	for _, b := range r.opts.backends {
		inst, err := b.Open()
		if err != nil {
			log.Debug("halcl: backend unavailable", "backend", b.Name, "err", err)
			errs = append(errs, err)
			continue
		}
		adapters := inst.EnumerateAdapters(nil)
		if len(adapters) == 0 {
			log.Debug("halcl: backend has no adapters", "backend", b.Name)
			inst.Destroy()
			continue
		}
		p := &platform{rt: r, name: b.Name, inst: inst}
		for _, a := range adapters {
			p.devices = append(p.devices, &device{p: p, info: a.Info, adapter: a.Adapter})
		}
		r.platforms = append(r.platforms, p)
	}
	if len(r.platforms) == 0 && len(errs) > 0 {
		r.loadErr = errors.Join(errs...)
	}
}

// NewContext implements opencl.Runtime. It opens one adapter: the
// platform's first when devices is empty, devices[0] otherwise.
func (r *Runtime) NewContext(p opencl.Platform, devices []opencl.Device) (opencl.Context, error) {
	if p == nil {
		return nil, ErrNoShareGroup
	}
	pl, ok := p.(*platform)
	if !ok || pl.rt != r {
		return nil, ErrForeignDevice
	}

	var d *device
	switch len(devices) {
	case 0:
		if len(pl.devices) == 0 {
			return nil, opencl.ErrNoDevice
		}
		d = pl.devices[0]
	case 1:
		d, ok = devices[0].(*device)
		if !ok || d.p != pl {
			return nil, ErrForeignDevice
		}
	default:
		return nil, fmt.Errorf("halcl: %d devices requested, contexts span one adapter", len(devices))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrClosed
	}
	ctx, err := d.open(r.opts)
	if err != nil {
		return nil, fmt.Errorf("halcl: open %s: %w", d.info.Name, err)
	}
	r.contexts = append(r.contexts, ctx)
	gloo.Logger().Debug("halcl: adapter opened",
		"adapter", d.info.Name,
		"type", d.info.DeviceType.String(),
		"backend", pl.name)
	return ctx, nil
}

// Close destroys every context, the devices this runtime opened and the
// HAL instances. Devices shared through FromProvider are left alone.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	for _, c := range r.contexts {
		c.destroy()
	}
	r.contexts = nil
	for _, p := range r.platforms {
		if p.inst != nil {
			p.inst.Destroy()
		}
	}
	r.platforms = nil
	return nil
}

func (r *Runtime) forget(c *Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contexts = slices.DeleteFunc(r.contexts, func(x *Context) bool { return x == c })
}

type platform struct {
	rt      *Runtime
	name    string
	inst    hal.Instance // nil for provider platforms
	devices []*device
}

func (p *platform) Name() string { return p.name }

func (p *platform) Devices() ([]opencl.Device, error) {
	out := make([]opencl.Device, len(p.devices))
	for i, d := range p.devices {
		out[i] = d
	}
	return out, nil
}

type device struct {
	p       *platform
	info    gputypes.AdapterInfo
	adapter hal.Adapter

	// Set for devices owned by a provider.
	shared *hal.OpenDevice
}

func (d *device) Name() string              { return d.info.Name }
func (d *device) Type() gputypes.DeviceType { return d.info.DeviceType }

// Info returns the adapter description.
func (d *device) Info() gputypes.AdapterInfo { return d.info }

func (d *device) open(o options) (*Context, error) {
	if d.shared != nil {
		return newContext(d, d.shared.Device, d.shared.Queue, true), nil
	}
	od, err := d.adapter.Open(o.features, o.limits)
	if err != nil {
		return nil, err
	}
	return newContext(d, od.Device, od.Queue, false), nil
}

var (
	_ opencl.Runtime  = (*Runtime)(nil)
	_ opencl.Platform = (*platform)(nil)
	_ opencl.Device   = (*device)(nil)
)
