// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opencl

import (
	"fmt"
	"io"
	"slices"

	"github.com/gogpu/gloo"
)

func openPair(rt Runtime, pi, di int) (*SharedContext, error) {
	platforms, err := rt.Platforms()
	if err != nil {
		return nil, err
	}
	if pi < 0 || pi >= len(platforms) {
		return nil, fmt.Errorf("%w: platform %d of %d", ErrNoDevice, pi, len(platforms))
	}
	devices, err := platforms[pi].Devices()
	if err != nil {
		return nil, err
	}
	if di < 0 || di >= len(devices) {
		return nil, fmt.Errorf("%w: device %d of %d on %s", ErrNoDevice, di, len(devices), platforms[pi].Name())
	}
	ctx, err := rt.NewContext(platforms[pi], devices[di:di+1])
	if err != nil {
		return nil, err
	}
	return &SharedContext{Context: ctx, Platform: pi, Device: di}, nil
}

// openShareGroup creates the context from the current GL share group and
// then locates its first device in the enumeration.
func openShareGroup(rt Runtime) (*SharedContext, error) {
	ctx, err := rt.NewContext(nil, nil)
	if err != nil {
		return nil, err
	}
	sc := &SharedContext{Context: ctx, Platform: -1, Device: -1}
	devs := ctx.Devices()
	if len(devs) == 0 {
		return sc, nil
	}
	platforms, err := rt.Platforms()
	if err != nil {
		return sc, nil
	}
	for pi, p := range platforms {
		if di := indexOf(p, devs[0]); di >= 0 {
			sc.Platform, sc.Device = pi, di
			break
		}
	}
	return sc, nil
}

// search walks platforms in order. Each platform is first tried as a
// whole, keeping the context only if its first device is a GPU; then its
// GPU-class devices are tried one at a time. The first success wins.
func search(rt Runtime) (*SharedContext, error) {
	platforms, err := rt.Platforms()
	if err != nil {
		return nil, err
	}
	log := gloo.Logger()
	for pi, p := range platforms {
		ctx, err := rt.NewContext(p, nil)
		switch {
		case err != nil:
			log.Debug("opencl: platform context failed", "platform", p.Name(), "err", err)
		case len(ctx.Devices()) == 0 || !isGPU(ctx.Devices()[0]):
			log.Debug("opencl: platform context has no GPU first", "platform", p.Name())
			discard(ctx)
		default:
			return &SharedContext{Context: ctx, Platform: pi, Device: indexOf(p, ctx.Devices()[0])}, nil
		}

		devices, err := p.Devices()
		if err != nil {
			log.Debug("opencl: listing devices failed", "platform", p.Name(), "err", err)
			continue
		}
		for di, d := range devices {
			if !isGPU(d) {
				continue
			}
			ctx, err := rt.NewContext(p, []Device{d})
			if err != nil {
				log.Debug("opencl: device context failed", "platform", p.Name(), "device", d.Name(), "err", err)
				continue
			}
			return &SharedContext{Context: ctx, Platform: pi, Device: di}, nil
		}
	}
	return nil, ErrNoDevice
}

func indexOf(p Platform, d Device) int {
	devices, err := p.Devices()
	if err != nil {
		return -1
	}
	return slices.Index(devices, d)
}

// discard closes a context the search does not keep, when the runtime
// allows it.
func discard(ctx Context) {
	if c, ok := ctx.(io.Closer); ok {
		if err := c.Close(); err != nil {
			gloo.Logger().Debug("opencl: close rejected context", "err", err)
		}
	}
}
