// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opencl

import (
	"errors"
	"sync"
	"testing"
)

func TestSearchSkipsNonGPUPlatforms(t *testing.T) {
	rt := twoPlatforms()
	m := NewManager(rt, WithShareGroup(false))
	ctx, err := m.Context()
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Platform != 1 || ctx.Device != 1 {
		t.Errorf("got platform %d device %d, want 1 1", ctx.Platform, ctx.Device)
	}
	if got := ctx.Devices()[0]; got != dgpu0 {
		t.Errorf("device = %s, want dgpu0", got.Name())
	}
}

func TestSearchClosesRejectedContexts(t *testing.T) {
	rt := twoPlatforms()
	ctx, err := NewManager(rt, WithShareGroup(false)).Context()
	if err != nil {
		t.Fatal(err)
	}
	// Both whole-platform contexts land on cpu0 and are dropped.
	if len(rt.made) != 3 {
		t.Fatalf("created %d contexts, want 3", len(rt.made))
	}
	for _, c := range rt.made[:2] {
		if c.closed != 1 {
			t.Errorf("rejected context on %s closed %d times, want 1", c.devices[0].Name(), c.closed)
		}
	}
	if kept := rt.made[2]; kept != ctx.Context || kept.closed != 0 {
		t.Errorf("kept context closed %d times", kept.closed)
	}
}

func TestSearchKeepsWholePlatformOnGPU(t *testing.T) {
	rt := &fakeRuntime{platforms: []Platform{
		&fakePlatform{name: "gpu", devices: []Device{dgpu0, igpu0}, wholeFirst: igpu0},
	}}
	ctx, err := NewManager(rt, WithShareGroup(false)).Context()
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Device != 1 || rt.newContextCalls() != 1 {
		t.Errorf("device %d after %d calls, want whole-platform context on device 1", ctx.Device, rt.newContextCalls())
	}
}

func TestSearchSkipsRefusedDevices(t *testing.T) {
	rt := twoPlatforms()
	rt.refuse = map[Device]bool{dgpu0: true}
	ctx, err := NewManager(rt, WithShareGroup(false)).Context()
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Devices()[0] != dgpu1 || ctx.Device != 2 {
		t.Errorf("got %s at %d, want dgpu1 at 2", ctx.Devices()[0].Name(), ctx.Device)
	}
}

func TestCreationFailures(t *testing.T) {
	tests := []struct {
		name  string
		m     *Manager
		cause error
	}{
		{"no runtime", NewManager(nil), ErrNoRuntime},
		{"no sharing", NewManager(&fakeRuntime{noSharing: true}, WithShareGroup(false)), ErrNoGLSharing},
		{"cpu only", NewManager(&fakeRuntime{platforms: []Platform{
			&fakePlatform{name: "cpu", devices: []Device{cpu0}, wholeFirst: cpu0},
		}}, WithShareGroup(false)), ErrNoDevice},
		{"no platforms", NewManager(&fakeRuntime{}, WithShareGroup(false)), ErrNoDevice},
		{"share group refused", NewManager(&fakeRuntime{}, WithShareGroup(true)), errRefused},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.m.Context()
			if !errors.Is(err, ErrContextCreationFailed) {
				t.Fatalf("Context() = %v, want ErrContextCreationFailed", err)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("Context() = %v, want cause %v", err, tt.cause)
			}
			if tt.m.Current() != nil {
				t.Error("failed creation must not populate the cache")
			}
		})
	}
}

func TestContextIsCached(t *testing.T) {
	rt := twoPlatforms()
	m := NewManager(rt, WithShareGroup(false))
	a, err := m.Context()
	if err != nil {
		t.Fatal(err)
	}
	calls := rt.newContextCalls()
	b, err := m.Context()
	if err != nil {
		t.Fatal(err)
	}
	if a != b || rt.newContextCalls() != calls {
		t.Error("second request created a new context")
	}

	// The same pair, asked for explicitly, is a cache hit too.
	c, err := m.ContextFor(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if c != a || m.Created() != 1 {
		t.Errorf("ContextFor(1, 1) created a context; created = %d", m.Created())
	}
}

func TestExplicitPairReplacesCache(t *testing.T) {
	rt := twoPlatforms()
	m := NewManager(rt, WithShareGroup(false))
	first, err := m.Context()
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.ContextFor(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if second == first || second.Devices()[0] != dgpu1 {
		t.Fatal("explicit pair should create a context on dgpu1")
	}
	if m.Current() != second {
		t.Error("cache not replaced")
	}

	// An explicit pair is opened even on a CPU device.
	cpu, err := m.ContextFor(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cpu.Devices()[0] != cpu0 {
		t.Error("explicit CPU pair not honoured")
	}
}

func TestFailedRequestKeepsCache(t *testing.T) {
	rt := twoPlatforms()
	m := NewManager(rt, WithShareGroup(false))
	ctx, err := m.Context()
	if err != nil {
		t.Fatal(err)
	}
	for _, pair := range [][2]int{{5, 0}, {1, 9}, {-1, 0}} {
		_, err := m.ContextFor(pair[0], pair[1])
		if !errors.Is(err, ErrNoDevice) {
			t.Errorf("ContextFor(%d, %d) = %v, want ErrNoDevice", pair[0], pair[1], err)
		}
	}
	if m.Current() != ctx {
		t.Error("failed request replaced the cached context")
	}
}

func TestShareGroupMatchesEnumeration(t *testing.T) {
	rt := twoPlatforms()
	rt.shareGroup = dgpu1
	ctx, err := NewManager(rt, WithShareGroup(true)).Context()
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Platform != 1 || ctx.Device != 2 {
		t.Errorf("got %d %d, want 1 2", ctx.Platform, ctx.Device)
	}

	rt.shareGroup = &fakeDevice{"hidden", 0}
	ctx, err = NewManager(rt, WithShareGroup(true)).Context()
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Platform != -1 || ctx.Device != -1 {
		t.Errorf("unmatched device should give -1 -1, got %d %d", ctx.Platform, ctx.Device)
	}
}

func TestConcurrentFirstUseCreatesOnce(t *testing.T) {
	rt := twoPlatforms()
	m := NewManager(rt, WithShareGroup(false))

	const n = 32
	got := make([]*SharedContext, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, err := m.Context()
			if err != nil {
				t.Error(err)
				return
			}
			got[i] = ctx
		}()
	}
	wg.Wait()

	if m.Created() != 1 {
		t.Fatalf("created %d contexts, want 1", m.Created())
	}
	for i, ctx := range got {
		if ctx != got[0] {
			t.Fatalf("goroutine %d got a different context", i)
		}
	}
}
