// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command gloodemo applies state presets on the software GL driver and
// saves a snapshot of the result.
//
// Usage:
//
//	gloodemo -preset translucent -output demo.tiff -scale 4
//	gloodemo -profile es2 -compute -v
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gloo"
	"github.com/gogpu/gloo/gl"
	"github.com/gogpu/gloo/gl/softgl"
	"github.com/gogpu/gloo/opencl"

	// Registers the HAL compute runtime used by -compute.
	_ "github.com/gogpu/gloo/opencl/halcl"
)

func main() {
	var (
		width   = flag.Int("width", 64, "framebuffer width")
		height  = flag.Int("height", 48, "framebuffer height")
		preset  = flag.String("preset", "translucent", "state preset ("+strings.Join(gloo.Presets(), ", ")+")")
		profile = flag.String("profile", "desktop", "GL profile (desktop or es2)")
		output  = flag.String("output", "gloodemo.png", "output file (.png, .bmp or .tiff)")
		scale   = flag.Int("scale", 1, "output scale factor")
		compute = flag.Bool("compute", false, "create the shared compute context and view a buffer")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		gloo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	p := gl.ProfileDesktop
	switch *profile {
	case "desktop":
	case "es2":
		p = gl.ProfileES2
	default:
		log.Fatalf("unknown profile %q", *profile)
	}

	c := gloo.NewContext(softgl.New(*width, *height, softgl.WithProfile(p)))
	if err := c.SetState(*preset, nil); err != nil {
		log.Fatalf("Failed to apply preset: %v", err)
	}
	if err := paint(c, *width, *height); err != nil {
		log.Fatalf("Failed to paint: %v", err)
	}
	if err := report(c, p, *preset); err != nil {
		log.Fatalf("Failed to query state: %v", err)
	}
	if *compute {
		shareBuffer(c)
	}

	px, err := c.ReadPixels([]int{0, 0, *width, *height}, true)
	if err != nil {
		log.Fatalf("Failed to read pixels: %v", err)
	}
	if *scale > 1 {
		px = px.Scaled(*width**scale, *height**scale)
	}
	if err := px.Save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Snapshot saved to %s (%dx%d)\n", *output, px.Width(), px.Height())
}

// paint fills the background and four scissored bands, each cleared with
// its own color.
func paint(c *gloo.Context, w, h int) error {
	depth := 1.0
	if err := c.Clear([]float64{0.1, 0.2, 0.4, 1}, &depth, nil); err != nil {
		return err
	}
	bands := [][]float64{
		{0.9, 0.3, 0.3, 1},
		{0.3, 0.9, 0.3, 1},
		{0.3, 0.3, 0.9, 1},
		{1, 0.8, 0, 1},
	}
	bw := w / (len(bands) + 1)
	if err := c.Enable("scissor_test"); err != nil {
		return err
	}
	for i, col := range bands {
		x := bw/2 + i*bw
		if err := c.SetScissor(x, h/4, bw-2, h/2); err != nil {
			return err
		}
		if err := c.Clear(col, nil, nil); err != nil {
			return err
		}
	}
	return c.Disable("scissor_test")
}

func report(c *gloo.Context, p gl.Profile, preset string) error {
	cfg, err := c.Configuration()
	if err != nil {
		return err
	}
	version, err := c.GetParameter("version")
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s profile)\n", version, p)
	fmt.Printf("  bits: r%d g%d b%d a%d depth%d stencil%d, samples %d\n",
		cfg.RedBits, cfg.GreenBits, cfg.BlueBits, cfg.AlphaBits, cfg.DepthBits, cfg.StencilBits, cfg.Samples)

	for _, name := range []string{"blend", "depth_test", "blend_src_rgb", "blend_dst_rgb"} {
		v, err := c.GetParameter(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %-14s %v\n", name, v)
	}

	pl, err := gloo.DescribePipeline(p, preset)
	if err != nil {
		return err
	}
	fmt.Printf("  pipeline: cull %v, depth/stencil %t, blend %t\n",
		pl.Primitive.CullMode, pl.DepthStencil != nil, pl.Blend != nil)
	return nil
}

// shareBuffer creates a vertex buffer and views it from the shared
// compute context. Failure is reported, not fatal: most headless hosts
// have no GPU to share with.
func shareBuffer(c *gloo.Context) {
	buf, err := c.NewBuffer(gloo.VertexBuffer, 1024)
	if err != nil {
		log.Printf("compute: %v", err)
		return
	}
	defer func() { _ = buf.Delete() }()

	v, err := opencl.NewBufferInterop(buf).ComputeView(nil)
	if err != nil {
		log.Printf("compute: %v", err)
		return
	}
	defer func() { _ = v.Release() }()
	dev := v.Context.Devices()[0]
	log.Printf("compute: buffer %d shared on %s (%s), %d bytes", v.Handle, dev.Name(), dev.Type(), v.Dims[0])
}
