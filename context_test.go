// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"errors"
	"testing"

	"github.com/gogpu/gloo/gl"
	"github.com/gogpu/gloo/gl/softgl"
)

func TestNewContextDefaults(t *testing.T) {
	drv := softgl.New(4, 4)
	c := NewContext(drv)
	if c.Profile() != gl.ProfileDesktop {
		t.Errorf("Profile() = %v, want desktop", c.Profile())
	}
	if c.Functions() != drv {
		t.Error("Functions() should return the wrapped driver")
	}
	if !c.errorCheck {
		t.Error("error checking should be on by default")
	}
}

func TestWithProfile(t *testing.T) {
	c := NewContext(softgl.New(4, 4), WithProfile(gl.ProfileES2))
	if c.Profile() != gl.ProfileES2 {
		t.Fatalf("Profile() = %v, want es2", c.Profile())
	}
	// The driver itself is desktop; validation still follows the override.
	if err := c.SetHint("fog_hint", "nicest"); !errors.Is(err, ErrUnsupportedParameter) {
		t.Errorf("SetHint(fog_hint) = %v, want ErrUnsupportedParameter", err)
	}
}

func TestWithErrorCheckOff(t *testing.T) {
	drv := softgl.New(4, 4)
	c := NewContext(drv, WithErrorCheck(false))
	if err := c.SetLineWidth(-1); err != nil {
		t.Errorf("SetLineWidth(-1) without checking = %v, want nil", err)
	}
	if e := drv.GetError(); e != gl.INVALID_VALUE {
		t.Errorf("driver error flag = %#x, want INVALID_VALUE left for the caller", e)
	}
}

func TestStaleErrorsAreDrained(t *testing.T) {
	drv := softgl.New(4, 4)
	c := NewContext(drv)
	drv.LineWidth(-1) // raised outside gloo
	if err := c.SetLineWidth(2); err != nil {
		t.Errorf("SetLineWidth(2) = %v; a stale error was blamed on it", err)
	}
}

func TestClear(t *testing.T) {
	c, drv := newTestContext(t)
	depth, stencil := 0.75, 5
	if err := c.Clear(nil, &depth, &stencil); err != nil {
		t.Fatal(err)
	}
	if d := drv.DepthAt(2, 2); d != 0.75 {
		t.Errorf("depth = %v, want 0.75", d)
	}
	if s := drv.StencilAt(2, 2); s != 5 {
		t.Errorf("stencil = %v, want 5", s)
	}
	if err := c.Clear([]float64{1, 1}, nil, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Clear with two components = %v, want ErrInvalidArgument", err)
	}
	if err := c.Clear(nil, nil, nil); err != nil {
		t.Errorf("Clear(nil, nil, nil) = %v", err)
	}
}

func TestClearAll(t *testing.T) {
	c, drv := newTestContext(t)
	if err := c.SetState("", State{"clear_color": []float64{0, 0, 1, 1}, "clear_stencil": 2}); err != nil {
		t.Fatal(err)
	}
	if err := c.ClearAll(); err != nil {
		t.Fatal(err)
	}
	px, err := c.ReadPixels([]int{0, 0, 1, 1}, true)
	if err != nil {
		t.Fatal(err)
	}
	if p := px.Pixel(0, 0); p[2] != 255 || p[3] != 255 {
		t.Errorf("pixel = %v, want opaque blue", p)
	}
	if s := drv.StencilAt(0, 0); s != 2 {
		t.Errorf("stencil = %v, want 2", s)
	}
}
