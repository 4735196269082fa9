// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opencl

import (
	"errors"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gloo/gl"
)

var errRefused = errors.New("fake: context refused")

type fakeDevice struct {
	name string
	typ  gputypes.DeviceType
}

func (d *fakeDevice) Name() string              { return d.name }
func (d *fakeDevice) Type() gputypes.DeviceType { return d.typ }

type fakePlatform struct {
	name    string
	devices []Device
	// wholeFirst is the device a whole-platform context lands on; nil
	// makes whole-platform creation fail.
	wholeFirst Device
}

func (p *fakePlatform) Name() string               { return p.name }
func (p *fakePlatform) Devices() ([]Device, error) { return p.devices, nil }

type fakeMem struct {
	kind     string
	name     uint32
	dims     []int
	released bool
}

func (m *fakeMem) Release() error {
	m.released = true
	return nil
}

type fakeContext struct {
	devices []Device
	mems    []*fakeMem
	closed  int
}

func (c *fakeContext) Devices() []Device { return c.devices }

func (c *fakeContext) Close() error {
	c.closed++
	return nil
}

func (c *fakeContext) NewGLBuffer(_ MemFlags, name uint32, size int) (Mem, error) {
	m := &fakeMem{kind: "buffer", name: name, dims: []int{size}}
	c.mems = append(c.mems, m)
	return m, nil
}

func (c *fakeContext) NewGLTexture(_ MemFlags, _ gl.Enum, level int, name uint32, width, height int) (Mem, error) {
	if level != 0 {
		return nil, errors.New("fake: only the base level is shared")
	}
	m := &fakeMem{kind: "texture", name: name, dims: []int{width, height}}
	c.mems = append(c.mems, m)
	return m, nil
}

type fakeRuntime struct {
	platforms  []Platform
	noSharing  bool
	shareGroup Device // device returned for a nil platform
	refuse     map[Device]bool

	mu    sync.Mutex
	calls int
	made  []*fakeContext
}

func (r *fakeRuntime) Name() string                   { return "fake" }
func (r *fakeRuntime) GLSharing() bool                { return !r.noSharing }
func (r *fakeRuntime) Platforms() ([]Platform, error) { return r.platforms, nil }

func (r *fakeRuntime) NewContext(p Platform, devices []Device) (Context, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	ctx, err := r.newContext(p, devices)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.made = append(r.made, ctx)
	r.mu.Unlock()
	return ctx, nil
}

func (r *fakeRuntime) newContext(p Platform, devices []Device) (*fakeContext, error) {
	switch {
	case p == nil:
		if r.shareGroup == nil {
			return nil, errRefused
		}
		return &fakeContext{devices: []Device{r.shareGroup}}, nil
	case len(devices) == 0:
		first := p.(*fakePlatform).wholeFirst
		if first == nil {
			return nil, errRefused
		}
		return &fakeContext{devices: []Device{first}}, nil
	case r.refuse[devices[0]]:
		return nil, errRefused
	default:
		return &fakeContext{devices: devices}, nil
	}
}

func (r *fakeRuntime) newContextCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

var (
	cpu0  = &fakeDevice{"cpu0", gputypes.DeviceTypeCPU}
	igpu0 = &fakeDevice{"igpu0", gputypes.DeviceTypeIntegratedGPU}
	dgpu0 = &fakeDevice{"dgpu0", gputypes.DeviceTypeDiscreteGPU}
	dgpu1 = &fakeDevice{"dgpu1", gputypes.DeviceTypeDiscreteGPU}
)

// twoPlatforms has a CPU-only platform followed by a GPU platform whose
// whole-platform context lands on the CPU-class first device.
func twoPlatforms() *fakeRuntime {
	return &fakeRuntime{platforms: []Platform{
		&fakePlatform{name: "cpu", devices: []Device{cpu0}, wholeFirst: cpu0},
		&fakePlatform{name: "gpu", devices: []Device{cpu0, dgpu0, dgpu1}, wholeFirst: cpu0},
	}}
}
