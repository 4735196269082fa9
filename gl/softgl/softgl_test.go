// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softgl

import (
	"testing"

	"github.com/gogpu/gloo/gl"
)

func TestDefaults(t *testing.T) {
	c := New(8, 4)
	if w, h := c.Size(); w != 8 || h != 4 {
		t.Fatalf("Size() = %dx%d, want 8x4", w, h)
	}
	vp := make([]int32, 4)
	c.GetIntegerv(gl.VIEWPORT, vp)
	if vp[2] != 8 || vp[3] != 4 {
		t.Errorf("default viewport = %v", vp)
	}
	ff := make([]int32, 1)
	c.GetIntegerv(gl.FRONT_FACE, ff)
	if gl.Enum(ff[0]) != gl.CCW {
		t.Errorf("default front face = %#x, want CCW", ff[0])
	}
	if !c.IsEnabled(gl.DITHER) {
		t.Error("DITHER should be enabled by default")
	}
	if c.IsEnabled(gl.BLEND) {
		t.Error("BLEND should be disabled by default")
	}
	if e := c.GetError(); e != gl.NO_ERROR {
		t.Errorf("GetError() = %#x after valid calls", e)
	}
}

func TestNonPositiveSizeUsesDefaults(t *testing.T) {
	c := New(0, -1)
	if w, h := c.Size(); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("Size() = %dx%d, want defaults", w, h)
	}
}

func TestErrorFlagIsSticky(t *testing.T) {
	c := New(4, 4)
	c.LineWidth(-1)
	c.FrontFace(gl.NEVER)
	if e := c.GetError(); e != gl.INVALID_VALUE {
		t.Errorf("first error = %#x, want INVALID_VALUE", e)
	}
	if e := c.GetError(); e != gl.NO_ERROR {
		t.Errorf("error flag not reset: %#x", e)
	}
}

func TestInvalidCalls(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Context)
		want gl.Enum
	}{
		{"negative line width", func(c *Context) { c.LineWidth(-1) }, gl.INVALID_VALUE},
		{"zero line width", func(c *Context) { c.LineWidth(0) }, gl.INVALID_VALUE},
		{"negative viewport", func(c *Context) { c.Viewport(0, 0, -1, 1) }, gl.INVALID_VALUE},
		{"negative scissor", func(c *Context) { c.Scissor(0, 0, 1, -1) }, gl.INVALID_VALUE},
		{"bad front face", func(c *Context) { c.FrontFace(gl.FRONT) }, gl.INVALID_ENUM},
		{"bad cull face", func(c *Context) { c.CullFace(gl.CW) }, gl.INVALID_ENUM},
		{"bad capability", func(c *Context) { c.Enable(gl.CW) }, gl.INVALID_ENUM},
		{"bad blend factor", func(c *Context) { c.BlendFuncSeparate(gl.ONE, gl.KEEP, gl.ONE, gl.ONE) }, gl.INVALID_ENUM},
		{"bad stencil face", func(c *Context) { c.StencilMaskSeparate(gl.CW, 1) }, gl.INVALID_ENUM},
		{"bad stencil op", func(c *Context) { c.StencilOpSeparate(gl.FRONT, gl.KEEP, gl.NEVER, gl.KEEP) }, gl.INVALID_ENUM},
		{"bad clear mask", func(c *Context) { c.Clear(0x1) }, gl.INVALID_VALUE},
		{"bad pixel format", func(c *Context) { c.ReadPixels(make([]byte, 16), 0, 0, 1, 1, gl.CW, gl.UNSIGNED_BYTE) }, gl.INVALID_ENUM},
		{"short pixel buffer", func(c *Context) { c.ReadPixels(make([]byte, 3), 0, 0, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE) }, gl.INVALID_OPERATION},
		{"unknown query", func(c *Context) { c.GetIntegerv(0x1234, make([]int32, 1)) }, gl.INVALID_ENUM},
		{"unknown string", func(c *Context) { c.GetString(gl.VIEWPORT) }, gl.INVALID_ENUM},
		{"bind unknown buffer", func(c *Context) { c.BindBuffer(gl.ARRAY_BUFFER, 99) }, gl.INVALID_OPERATION},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(4, 4)
			tt.call(c)
			if e := c.GetError(); e != tt.want {
				t.Errorf("GetError() = %#x, want %#x", e, tt.want)
			}
		})
	}
}

func TestES2RejectsDesktopNames(t *testing.T) {
	c := New(4, 4, WithProfile(gl.ProfileES2))
	c.Hint(gl.FOG_HINT, gl.NICEST)
	if e := c.GetError(); e != gl.INVALID_ENUM {
		t.Errorf("FOG_HINT on es2: GetError() = %#x, want INVALID_ENUM", e)
	}
	c.BlendEquationSeparate(gl.MAX, gl.MAX)
	if e := c.GetError(); e != gl.INVALID_ENUM {
		t.Errorf("MAX on es2: GetError() = %#x, want INVALID_ENUM", e)
	}
	c.GetBooleanv(gl.DOUBLEBUFFER, make([]bool, 1))
	if e := c.GetError(); e != gl.INVALID_ENUM {
		t.Errorf("DOUBLEBUFFER on es2: GetError() = %#x, want INVALID_ENUM", e)
	}
	c.Hint(gl.GENERATE_MIPMAP_HINT, gl.NICEST)
	if e := c.GetError(); e != gl.NO_ERROR {
		t.Errorf("GENERATE_MIPMAP_HINT on es2: GetError() = %#x", e)
	}
}

func TestStencilSeparateFaces(t *testing.T) {
	c := New(4, 4)
	c.StencilFuncSeparate(gl.BACK, gl.NEVER, 1, 2)
	c.StencilOpSeparate(gl.FRONT, gl.ZERO, gl.INCR, gl.INVERT)

	got := make([]int32, 1)
	c.GetIntegerv(gl.STENCIL_BACK_FUNC, got)
	if gl.Enum(got[0]) != gl.NEVER {
		t.Errorf("back func = %#x, want NEVER", got[0])
	}
	c.GetIntegerv(gl.STENCIL_FUNC, got)
	if gl.Enum(got[0]) != gl.ALWAYS {
		t.Errorf("front func = %#x, want ALWAYS", got[0])
	}
	c.GetIntegerv(gl.STENCIL_BACK_REF, got)
	if got[0] != 1 {
		t.Errorf("back ref = %d, want 1", got[0])
	}
	c.GetIntegerv(gl.STENCIL_PASS_DEPTH_PASS, got)
	if gl.Enum(got[0]) != gl.INVERT {
		t.Errorf("front dppass = %#x, want INVERT", got[0])
	}
	c.GetIntegerv(gl.STENCIL_BACK_PASS_DEPTH_PASS, got)
	if gl.Enum(got[0]) != gl.KEEP {
		t.Errorf("back dppass = %#x, want KEEP", got[0])
	}
}

func TestClearAndReadPixels(t *testing.T) {
	c := New(4, 2)
	c.ClearColor(1, 0.5, 0, 1)
	c.ClearDepthf(0.25)
	c.ClearStencil(3)
	c.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)

	buf := make([]byte, 4*2*4)
	c.ReadPixels(buf, 0, 0, 4, 2, gl.RGBA, gl.UNSIGNED_BYTE)
	if e := c.GetError(); e != gl.NO_ERROR {
		t.Fatalf("GetError() = %#x", e)
	}
	want := []byte{255, 128, 0, 255}
	for i := 0; i < len(buf); i += 4 {
		for ch := range 4 {
			if buf[i+ch] != want[ch] {
				t.Fatalf("pixel %d = %v, want %v", i/4, buf[i:i+4], want)
			}
		}
	}
	if d := c.DepthAt(1, 1); d != 0.25 {
		t.Errorf("DepthAt = %v, want 0.25", d)
	}
	if s := c.StencilAt(1, 1); s != 3 {
		t.Errorf("StencilAt = %v, want 3", s)
	}
}

func TestClearHonoursScissorAndMask(t *testing.T) {
	c := New(4, 4)
	c.ClearColor(1, 1, 1, 1)
	c.Enable(gl.SCISSOR_TEST)
	c.Scissor(1, 1, 2, 2)
	c.ColorMask(true, false, true, true)
	c.Clear(gl.COLOR_BUFFER_BIT)

	px := make([]byte, 4)
	c.ReadPixels(px, 0, 0, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE)
	if px[0] != 0 {
		t.Errorf("pixel outside scissor was cleared: %v", px)
	}
	c.ReadPixels(px, 1, 1, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE)
	if px[0] != 255 || px[1] != 0 || px[2] != 255 {
		t.Errorf("pixel inside scissor = %v, want green masked", px)
	}
}

func TestReadPixelsOutsideFramebuffer(t *testing.T) {
	c := New(2, 2)
	c.ClearColor(1, 1, 1, 1)
	c.Clear(gl.COLOR_BUFFER_BIT)
	buf := make([]byte, 3*2*2)
	for i := range buf {
		buf[i] = 7
	}
	c.ReadPixels(buf, 1, 0, 2, 2, gl.RGB, gl.UNSIGNED_BYTE)
	if buf[0] != 255 {
		t.Errorf("inside pixel = %d, want 255", buf[0])
	}
	if buf[3] != 0 {
		t.Errorf("outside pixel = %d, want 0", buf[3])
	}
}

func TestObjects(t *testing.T) {
	c := New(1, 1)
	b := c.CreateBuffer()
	tex := c.CreateTexture()
	if b == 0 || tex == 0 || b == tex {
		t.Fatalf("names not unique: buffer=%d texture=%d", b, tex)
	}
	c.BindBuffer(gl.ARRAY_BUFFER, b)
	if c.Binding(gl.ARRAY_BUFFER) != b {
		t.Error("buffer not bound")
	}
	c.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b)
	if e := c.GetError(); e != gl.INVALID_OPERATION {
		t.Errorf("rebinding to another target: GetError() = %#x", e)
	}
	c.DeleteBuffer(b)
	if c.IsBuffer(b) || c.Binding(gl.ARRAY_BUFFER) != 0 {
		t.Error("deleted buffer still live")
	}
	c.BindTexture(gl.TEXTURE_2D, tex)
	if !c.IsTexture(tex) || c.Binding(gl.TEXTURE_2D) != tex {
		t.Error("texture not bound")
	}
}

func TestTexture3DUnavailableInES2(t *testing.T) {
	c := New(1, 1, WithProfile(gl.ProfileES2))
	tex := c.CreateTexture()
	c.BindTexture(gl.TEXTURE_3D, tex)
	if e := c.GetError(); e != gl.INVALID_ENUM {
		t.Errorf("GetError() = %#x, want INVALID_ENUM", e)
	}
}
