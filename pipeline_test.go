// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gloo/gl"
)

func TestDescribePipelinePresets(t *testing.T) {
	opaque, err := DescribePipeline(gl.ProfileDesktop, "opaque", nil)
	if err != nil {
		t.Fatal(err)
	}
	if opaque.Blend != nil {
		t.Error("opaque should not blend")
	}
	if opaque.DepthStencil == nil || opaque.DepthStencil.DepthCompare != gputypes.CompareFunctionLess {
		t.Errorf("opaque depth state = %+v", opaque.DepthStencil)
	}
	if !opaque.DepthStencil.DepthWriteEnabled {
		t.Error("opaque should write depth")
	}
	if opaque.Primitive.CullMode != gputypes.CullModeNone {
		t.Errorf("CullMode = %v, want none", opaque.Primitive.CullMode)
	}
	if opaque.WriteMask != gputypes.ColorWriteMaskAll {
		t.Errorf("WriteMask = %v, want all", opaque.WriteMask)
	}

	translucent, err := DescribePipeline(gl.ProfileDesktop, "translucent", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := gputypes.BlendComponent{
		SrcFactor: gputypes.BlendFactorSrcAlpha,
		DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
		Operation: gputypes.BlendOperationAdd,
	}
	if translucent.Blend == nil || translucent.Blend.Color != want || translucent.Blend.Alpha != want {
		t.Errorf("translucent blend = %+v", translucent.Blend)
	}

	additive, err := DescribePipeline(gl.ProfileDesktop, "additive", nil)
	if err != nil {
		t.Fatal(err)
	}
	if additive.DepthStencil != nil {
		t.Error("additive has no depth test")
	}
	if additive.Blend.Color.DstFactor != gputypes.BlendFactorOne {
		t.Errorf("additive dst = %v, want one", additive.Blend.Color.DstFactor)
	}
}

func TestDescribePipelineState(t *testing.T) {
	p, err := DescribePipeline(gl.ProfileDesktop, "", State{
		"cull_face":           true,
		"front_face":          "cw",
		"stencil_test":        true,
		"stencil_func":        []any{"equal", 1, 0xff},
		"stencil_mask":        0x0f,
		"stencil_op":          []string{"keep", "incr", "replace"},
		"polygon_offset_fill": true,
		"polygon_offset":      []float64{2, 3},
		"color_mask":          []bool{true, true, true, false},
		"blend_color":         []float64{0.5, 0.5, 0.5, 1},
		"scissor":             []int{1, 2, 3, 4},
		"scissor_test":        true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.Primitive.CullMode != gputypes.CullModeBack || p.Primitive.FrontFace != gputypes.FrontFaceCW {
		t.Errorf("primitive = %+v", p.Primitive)
	}
	ds := p.DepthStencil
	if ds == nil {
		t.Fatal("stencil test should produce depth-stencil state")
	}
	if ds.DepthCompare != gputypes.CompareFunctionAlways || ds.DepthWriteEnabled {
		t.Errorf("depth without depth_test = %v/%v", ds.DepthCompare, ds.DepthWriteEnabled)
	}
	wantFace := hal.StencilFaceState{
		Compare:     gputypes.CompareFunctionEqual,
		FailOp:      hal.StencilOperationKeep,
		DepthFailOp: hal.StencilOperationIncrementClamp,
		PassOp:      hal.StencilOperationReplace,
	}
	if ds.StencilFront != wantFace || ds.StencilBack != wantFace {
		t.Errorf("stencil faces = %+v / %+v", ds.StencilFront, ds.StencilBack)
	}
	if ds.StencilReadMask != 0xff || ds.StencilWriteMask != 0x0f {
		t.Errorf("masks = %#x/%#x", ds.StencilReadMask, ds.StencilWriteMask)
	}
	if ds.DepthBias != 3 || ds.DepthBiasSlopeScale != 2 {
		t.Errorf("bias = %d/%v", ds.DepthBias, ds.DepthBiasSlopeScale)
	}
	if p.StencilReference != 1 {
		t.Errorf("StencilReference = %d", p.StencilReference)
	}
	if p.WriteMask&gputypes.ColorWriteMaskAlpha != 0 {
		t.Error("alpha write should be masked")
	}
	if p.BlendConstant.R != 0.5 || p.BlendConstant.A != 1 {
		t.Errorf("BlendConstant = %+v", p.BlendConstant)
	}
	if len(p.Scissor) != 4 || p.Scissor[3] != 4 {
		t.Errorf("Scissor = %v", p.Scissor)
	}
	if p.Viewport != nil {
		t.Errorf("Viewport = %v, want nil", p.Viewport)
	}
}

func TestDescribePipelineUnsupported(t *testing.T) {
	tests := []struct {
		name   string
		states []State
	}{
		{"cull both faces", []State{{"cull_face": true}, {"cull_face": "front_and_back"}}},
		{"constant alpha factor", []State{{"blend": true, "blend_func": "constant_alpha"}}},
		{"per-face stencil masks", []State{{"stencil_test": true, "stencil_mask": []any{1, "front"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DescribePipeline(gl.ProfileDesktop, "", tt.states...); !errors.Is(err, ErrUnsupportedParameter) {
				t.Errorf("DescribePipeline(%v) = %v, want ErrUnsupportedParameter", tt.states, err)
			}
		})
	}

	// The mode alone does not enable culling.
	if _, err := DescribePipeline(gl.ProfileDesktop, "", State{"cull_face": "front_and_back"}); err != nil {
		t.Errorf("mode without capability: %v", err)
	}
}

func TestDescribePipelineSequence(t *testing.T) {
	p, err := DescribePipeline(gl.ProfileDesktop, "opaque", State{"depth_func": "gequal"}, State{"depth_mask": false})
	if err != nil {
		t.Fatal(err)
	}
	if p.DepthStencil.DepthCompare != gputypes.CompareFunctionGreaterEqual || p.DepthStencil.DepthWriteEnabled {
		t.Errorf("depth state = %+v", p.DepthStencil)
	}
}

func TestDescribePipelineValidates(t *testing.T) {
	if _, err := DescribePipeline(gl.ProfileDesktop, "foo", nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown preset: %v", err)
	}
	if _, err := DescribePipeline(gl.ProfileES2, "", State{"blend_equation": "min"}); !errors.Is(err, ErrUnsupportedParameter) {
		t.Errorf("min equation on es2: %v", err)
	}
}
