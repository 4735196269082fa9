// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"errors"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestReadPixelsDefaultViewport(t *testing.T) {
	c, _ := newTestContext(t)
	px, err := c.ReadPixels(nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if px.Width() != 16 || px.Height() != 16 || px.Channels() != 4 {
		t.Errorf("snapshot = %dx%dx%d, want 16x16x4", px.Width(), px.Height(), px.Channels())
	}
	if len(px.Data()) != 16*16*4 {
		t.Errorf("len(Data) = %d", len(px.Data()))
	}
}

func TestReadPixelsViewportShape(t *testing.T) {
	c, _ := newTestContext(t)
	px, err := c.ReadPixels([]int{0, 0, 1, 1}, true)
	if err != nil {
		t.Fatal(err)
	}
	if px.Width() != 1 || px.Height() != 1 {
		t.Errorf("snapshot = %dx%d, want 1x1", px.Width(), px.Height())
	}
	if _, err := c.ReadPixels([]int{0, 0, 1}, true); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("three-value viewport: %v, want ErrInvalidArgument", err)
	}
	if _, err := c.ReadPixels([]int{0, 0, -1, 1}, true); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative size: %v, want ErrInvalidArgument", err)
	}
}

func TestReadPixelsViewportInt32Range(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int is 32 bits")
	}
	c, _ := newTestContext(t)
	var over int64 = math.MaxInt32 + 1
	wide := int(over)
	for _, vp := range [][]int{{0, 0, wide, 1}, {0, 0, 1, wide}, {wide, 0, 1, 1}, {0, -wide - 1, 1, 1}} {
		if _, err := c.ReadPixels(vp, true); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ReadPixels(%v): %v, want ErrInvalidArgument", vp, err)
		}
	}
}

func TestReadPixelsRGB(t *testing.T) {
	c, _ := newTestContext(t)
	if err := c.Clear([]float64{0, 1, 0, 0}, nil, nil); err != nil {
		t.Fatal(err)
	}
	px, err := c.ReadPixels([]int{0, 0, 2, 2}, false)
	if err != nil {
		t.Fatal(err)
	}
	if px.Channels() != 3 || len(px.Data()) != 12 {
		t.Fatalf("channels=%d len=%d, want 3 and 12", px.Channels(), len(px.Data()))
	}
	// RGB snapshots are opaque as images.
	if got := px.At(0, 0); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("At(0, 0) = %v", got)
	}
}

func TestReadPixelsTopRowFirst(t *testing.T) {
	c, _ := newTestContext(t)
	if err := c.Clear([]float64{0, 0, 0, 1}, nil, nil); err != nil {
		t.Fatal(err)
	}
	// Paint the bottom GL row (y = 0) red.
	if err := c.SetState("", State{"scissor": []int{0, 0, 4, 1}, "scissor_test": true}); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear([]float64{1, 0, 0, 1}, nil, nil); err != nil {
		t.Fatal(err)
	}

	px, err := c.ReadPixels([]int{0, 0, 4, 4}, true)
	if err != nil {
		t.Fatal(err)
	}
	if p := px.Pixel(0, 3); p[0] != 255 {
		t.Errorf("bottom snapshot row = %v, want red", p)
	}
	if p := px.Pixel(0, 0); p[0] != 0 {
		t.Errorf("top snapshot row = %v, want black", p)
	}
	if px.Pixel(4, 0) != nil {
		t.Error("Pixel outside the snapshot should be nil")
	}

	img := px.Image()
	if img.NRGBAAt(0, 3).R != 255 {
		t.Error("Image() lost the row order")
	}
}

func TestPixelsSavePNG(t *testing.T) {
	c, _ := newTestContext(t)
	px, err := c.ReadPixels([]int{0, 0, 2, 2}, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := px.SavePNG(filepath.Join(t.TempDir(), "snap.png")); err != nil {
		t.Errorf("SavePNG: %v", err)
	}
}

func TestPixelsEncodeFormats(t *testing.T) {
	c, _ := newTestContext(t)
	if err := c.SetClearColor(0, 1, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.ClearAll(); err != nil {
		t.Fatal(err)
	}
	px, err := c.ReadPixels([]int{0, 0, 4, 4}, true)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	for _, name := range []string{"snap.png", "snap.bmp", "snap.tiff", "snap.TIF"} {
		path := filepath.Join(dir, name)
		if err := px.Save(path); err != nil {
			t.Errorf("Save(%s): %v", name, err)
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		img, _, err := image.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Errorf("decode %s: %v", name, err)
			continue
		}
		if r, g, b, _ := img.At(1, 1).RGBA(); r != 0 || g != 0xffff || b != 0 {
			t.Errorf("%s: pixel = %v", name, img.At(1, 1))
		}
	}

	for _, name := range []string{"snap.gif", "snap"} {
		if err := px.Save(filepath.Join(dir, name)); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Save(%s) = %v, want ErrUnsupportedFormat", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "snap.gif")); !os.IsNotExist(err) {
		t.Error("failed Save left a file behind")
	}
}

func TestPixelsScaled(t *testing.T) {
	c, _ := newTestContext(t)
	if err := c.SetClearColor(1, 0, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.ClearAll(); err != nil {
		t.Fatal(err)
	}
	px, err := c.ReadPixels(nil, false)
	if err != nil {
		t.Fatal(err)
	}
	scaled := px.Scaled(32, 8)
	if scaled.Width() != 32 || scaled.Height() != 8 || scaled.Channels() != 4 {
		t.Fatalf("scaled = %dx%dx%d", scaled.Width(), scaled.Height(), scaled.Channels())
	}
	if got := scaled.Pixel(16, 4); got[0] < 250 || got[1] > 5 || got[3] < 250 {
		t.Errorf("center = %v, want opaque red", got)
	}
}
