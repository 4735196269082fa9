// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halcl

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// halProvider is implemented by device providers that expose their HAL
// objects directly.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// FromProvider returns a runtime with one platform and one device: the
// provider's. Contexts reuse the provider's hal.Device and hal.Queue and
// never destroy them.
//
// The provider must expose HAL types, either through HalDevice() and
// HalQueue() methods or by returning hal.Device and hal.Queue (or values
// with those methods) from Device and Queue.
func FromProvider(p gpucontext.DeviceProvider, opts ...Option) (*Runtime, error) {
	hdev, queue, ok := halTypes(p)
	if !ok {
		return nil, ErrProviderNotHAL
	}
	info := p.AdapterInfo()
	name := info.Name
	if name == "" {
		name = "provider"
	}

	r := New(opts...)
	r.loaded = true
	pl := &platform{rt: r, name: "provider"}
	pl.devices = []*device{{
		p: pl,
		info: gputypes.AdapterInfo{
			Name:       name,
			DeviceType: deviceType(info.Type),
		},
		shared: &hal.OpenDevice{Device: hdev, Queue: queue},
	}}
	r.platforms = []*platform{pl}
	return r, nil
}

func halTypes(p gpucontext.DeviceProvider) (hal.Device, hal.Queue, bool) {
	var dv, qv any
	if hp, ok := p.(halProvider); ok {
		dv, qv = hp.HalDevice(), hp.HalQueue()
	} else {
		dv, qv = p.Device(), p.Queue()
		if w, ok := dv.(interface{ HalDevice() any }); ok {
			dv = w.HalDevice()
		}
		if w, ok := qv.(interface{ HalQueue() any }); ok {
			qv = w.HalQueue()
		}
	}
	hdev, ok := dv.(hal.Device)
	if !ok || hdev == nil {
		return nil, nil, false
	}
	queue, ok := qv.(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, false
	}
	return hdev, queue, true
}

func deviceType(t gpucontext.AdapterType) gputypes.DeviceType {
	switch t {
	case gpucontext.AdapterTypeDiscrete:
		return gputypes.DeviceTypeDiscreteGPU
	case gpucontext.AdapterTypeIntegrated:
		return gputypes.DeviceTypeIntegratedGPU
	case gpucontext.AdapterTypeSoftware:
		return gputypes.DeviceTypeCPU
	default:
		return gputypes.DeviceTypeOther
	}
}
