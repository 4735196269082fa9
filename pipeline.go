// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gloo/gl"
)

// Pipeline is a GL state set expressed as WebGPU render pipeline
// descriptors, for renderers that draw through gogpu/wgpu instead of GL.
type Pipeline struct {
	Primitive gputypes.PrimitiveState

	// DepthStencil is nil when neither the depth nor the stencil test is
	// enabled.
	DepthStencil *hal.DepthStencilState

	// Blend is nil when blending is disabled.
	Blend     *gputypes.BlendState
	WriteMask gputypes.ColorWriteMask

	// Render pass state with no pipeline counterpart.
	BlendConstant    gputypes.Color
	StencilReference uint32
	Viewport         []int // nil if not set
	Scissor          []int // nil if not set or scissor_test is off
}

// pipelineState tracks the GL state that pipeline export reads,
// starting from GL defaults.
type pipelineState struct {
	caps map[gl.Enum]bool

	cullMode  gl.Enum
	frontFace gl.Enum

	depthFunc gl.Enum
	depthMask bool

	stencilFront, stencilBack stencilFaceGL

	blendFunc  blendFuncSetting
	blendEq    blendEquationSetting
	blendColor [4]float32
	colorMask  [4]bool

	polygonOffset polygonOffsetSetting
	viewport      *viewportSetting
	scissor       *scissorSetting
}

type stencilFaceGL struct {
	fn                    gl.Enum
	ref                   int32
	readMask, writeMask   uint32
	sfail, dpfail, dppass gl.Enum
}

func defaultPipelineState() *pipelineState {
	face := stencilFaceGL{
		fn:        gl.ALWAYS,
		readMask:  0xffffffff,
		writeMask: 0xffffffff,
		sfail:     gl.KEEP,
		dpfail:    gl.KEEP,
		dppass:    gl.KEEP,
	}
	return &pipelineState{
		caps:         map[gl.Enum]bool{gl.DITHER: true},
		cullMode:     gl.BACK,
		frontFace:    gl.CCW,
		depthFunc:    gl.LESS,
		depthMask:    true,
		stencilFront: face,
		stencilBack:  face,
		blendFunc:    blendFuncSetting{gl.ONE, gl.ZERO, gl.ONE, gl.ZERO},
		blendEq:      blendEquationSetting{gl.FUNC_ADD, gl.FUNC_ADD},
		colorMask:    [4]bool{true, true, true, true},
	}
}

func (s *pipelineState) faces(face gl.Enum) []*stencilFaceGL {
	switch face {
	case gl.FRONT:
		return []*stencilFaceGL{&s.stencilFront}
	case gl.BACK:
		return []*stencilFaceGL{&s.stencilBack}
	default:
		return []*stencilFaceGL{&s.stencilFront, &s.stencilBack}
	}
}

func (s *pipelineState) record(st setting) {
	switch v := st.(type) {
	case capabilitySetting:
		s.caps[v.capability] = v.on
	case cullFaceSetting:
		s.cullMode = v.mode
	case frontFaceSetting:
		s.frontFace = v.mode
	case depthFuncSetting:
		s.depthFunc = v.fn
	case depthMaskSetting:
		s.depthMask = v.flag
	case stencilFuncSetting:
		for _, f := range s.faces(v.face) {
			f.fn, f.ref, f.readMask = v.fn, v.ref, v.mask
		}
	case stencilMaskSetting:
		for _, f := range s.faces(v.face) {
			f.writeMask = v.mask
		}
	case stencilOpSetting:
		for _, f := range s.faces(v.face) {
			f.sfail, f.dpfail, f.dppass = v.sfail, v.dpfail, v.dppass
		}
	case blendFuncSetting:
		s.blendFunc = v
	case blendEquationSetting:
		s.blendEq = v
	case blendColorSetting:
		s.blendColor = v.rgba
	case colorMaskSetting:
		s.colorMask = v.rgba
	case polygonOffsetSetting:
		s.polygonOffset = v
	case viewportSetting:
		s.viewport = &v
	case scissorSetting:
		s.scissor = &v
	}
}

// DescribePipeline validates a preset plus overrides for profile p, the
// same way SetState does, and translates the result into WebGPU pipeline
// state. Further states are applied in order, as successive SetState
// calls would be. No driver is involved.
//
// GL state without a WebGPU equivalent (culling both faces, constant
// alpha blend factors, per-face stencil masks) fails with
// ErrUnsupportedParameter.
func DescribePipeline(p gl.Profile, preset string, overrides ...State) (*Pipeline, error) {
	var first State
	if len(overrides) > 0 {
		first = overrides[0]
	}
	merged, err := withPreset(preset, first)
	if err != nil {
		return nil, err
	}
	s := defaultPipelineState()
	states := append([]State{merged}, overrides[min(1, len(overrides)):]...)
	for _, st := range states {
		settings, err := parseState(st, p)
		if err != nil {
			return nil, err
		}
		for _, set := range settings {
			s.record(set)
		}
	}
	return s.export()
}

func (s *pipelineState) export() (*Pipeline, error) {
	out := &Pipeline{
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeNone,
		},
		BlendConstant: gputypes.Color{
			R: float64(s.blendColor[0]),
			G: float64(s.blendColor[1]),
			B: float64(s.blendColor[2]),
			A: float64(s.blendColor[3]),
		},
		StencilReference: uint32(s.stencilFront.ref),
	}
	if s.frontFace == gl.CW {
		out.Primitive.FrontFace = gputypes.FrontFaceCW
	}
	if s.caps[gl.CULL_FACE] {
		switch s.cullMode {
		case gl.FRONT:
			out.Primitive.CullMode = gputypes.CullModeFront
		case gl.BACK:
			out.Primitive.CullMode = gputypes.CullModeBack
		default:
			return nil, unsupported("cull_face", "culling %s has no pipeline equivalent", gl.Name(s.cullMode))
		}
	}

	ds, err := s.depthStencil()
	if err != nil {
		return nil, err
	}
	out.DepthStencil = ds

	if s.caps[gl.BLEND] {
		b, err := s.blend()
		if err != nil {
			return nil, err
		}
		out.Blend = b
	}

	for i, bit := range []gputypes.ColorWriteMask{
		gputypes.ColorWriteMaskRed,
		gputypes.ColorWriteMaskGreen,
		gputypes.ColorWriteMaskBlue,
		gputypes.ColorWriteMaskAlpha,
	} {
		if s.colorMask[i] {
			out.WriteMask |= bit
		}
	}

	if v := s.viewport; v != nil {
		out.Viewport = []int{int(v.x), int(v.y), int(v.w), int(v.h)}
	}
	if v := s.scissor; v != nil && s.caps[gl.SCISSOR_TEST] {
		out.Scissor = []int{int(v.x), int(v.y), int(v.w), int(v.h)}
	}
	return out, nil
}

func (s *pipelineState) depthStencil() (*hal.DepthStencilState, error) {
	depth, stencil := s.caps[gl.DEPTH_TEST], s.caps[gl.STENCIL_TEST]
	if !depth && !stencil {
		return nil, nil
	}
	ds := &hal.DepthStencilState{
		Format:       gputypes.TextureFormatDepth24PlusStencil8,
		DepthCompare: gputypes.CompareFunctionAlways,
		StencilFront: hal.StencilFaceState{Compare: gputypes.CompareFunctionAlways},
		StencilBack:  hal.StencilFaceState{Compare: gputypes.CompareFunctionAlways},
	}
	if depth {
		ds.DepthCompare = compareFunctions[s.depthFunc]
		ds.DepthWriteEnabled = s.depthMask
	}
	if stencil {
		f, b := s.stencilFront, s.stencilBack
		if f.readMask != b.readMask || f.writeMask != b.writeMask {
			return nil, unsupported("stencil_mask", "per-face stencil masks have no pipeline equivalent")
		}
		ds.StencilReadMask, ds.StencilWriteMask = f.readMask, f.writeMask
		ds.StencilFront = stencilFaceState(f)
		ds.StencilBack = stencilFaceState(b)
	}
	if s.caps[gl.POLYGON_OFFSET_FILL] {
		ds.DepthBias = int32(s.polygonOffset.units)
		ds.DepthBiasSlopeScale = s.polygonOffset.factor
	}
	return ds, nil
}

func stencilFaceState(f stencilFaceGL) hal.StencilFaceState {
	return hal.StencilFaceState{
		Compare:     compareFunctions[f.fn],
		FailOp:      stencilOperations[f.sfail],
		DepthFailOp: stencilOperations[f.dpfail],
		PassOp:      stencilOperations[f.dppass],
	}
}

func (s *pipelineState) blend() (*gputypes.BlendState, error) {
	factors := [4]gputypes.BlendFactor{}
	for i, e := range []gl.Enum{s.blendFunc.srcRGB, s.blendFunc.dstRGB, s.blendFunc.srcAlpha, s.blendFunc.dstAlpha} {
		f, ok := blendFactors[e]
		if !ok {
			return nil, unsupported("blend_func", "%s has no pipeline equivalent", gl.Name(e))
		}
		factors[i] = f
	}
	return &gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: factors[0],
			DstFactor: factors[1],
			Operation: blendOperations[s.blendEq.rgb],
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: factors[2],
			DstFactor: factors[3],
			Operation: blendOperations[s.blendEq.alpha],
		},
	}, nil
}

var compareFunctions = map[gl.Enum]gputypes.CompareFunction{
	gl.NEVER:    gputypes.CompareFunctionNever,
	gl.LESS:     gputypes.CompareFunctionLess,
	gl.EQUAL:    gputypes.CompareFunctionEqual,
	gl.LEQUAL:   gputypes.CompareFunctionLessEqual,
	gl.GREATER:  gputypes.CompareFunctionGreater,
	gl.NOTEQUAL: gputypes.CompareFunctionNotEqual,
	gl.GEQUAL:   gputypes.CompareFunctionGreaterEqual,
	gl.ALWAYS:   gputypes.CompareFunctionAlways,
}

var stencilOperations = map[gl.Enum]hal.StencilOperation{
	gl.KEEP:      hal.StencilOperationKeep,
	gl.ZERO:      hal.StencilOperationZero,
	gl.REPLACE:   hal.StencilOperationReplace,
	gl.INVERT:    hal.StencilOperationInvert,
	gl.INCR:      hal.StencilOperationIncrementClamp,
	gl.DECR:      hal.StencilOperationDecrementClamp,
	gl.INCR_WRAP: hal.StencilOperationIncrementWrap,
	gl.DECR_WRAP: hal.StencilOperationDecrementWrap,
}

// blendFactors omits the constant alpha factors; WebGPU has a single
// constant applied to every channel.
var blendFactors = map[gl.Enum]gputypes.BlendFactor{
	gl.ZERO:                     gputypes.BlendFactorZero,
	gl.ONE:                      gputypes.BlendFactorOne,
	gl.SRC_COLOR:                gputypes.BlendFactorSrc,
	gl.ONE_MINUS_SRC_COLOR:      gputypes.BlendFactorOneMinusSrc,
	gl.SRC_ALPHA:                gputypes.BlendFactorSrcAlpha,
	gl.ONE_MINUS_SRC_ALPHA:      gputypes.BlendFactorOneMinusSrcAlpha,
	gl.DST_COLOR:                gputypes.BlendFactorDst,
	gl.ONE_MINUS_DST_COLOR:      gputypes.BlendFactorOneMinusDst,
	gl.DST_ALPHA:                gputypes.BlendFactorDstAlpha,
	gl.ONE_MINUS_DST_ALPHA:      gputypes.BlendFactorOneMinusDstAlpha,
	gl.SRC_ALPHA_SATURATE:       gputypes.BlendFactorSrcAlphaSaturated,
	gl.CONSTANT_COLOR:           gputypes.BlendFactorConstant,
	gl.ONE_MINUS_CONSTANT_COLOR: gputypes.BlendFactorOneMinusConstant,
}

var blendOperations = map[gl.Enum]gputypes.BlendOperation{
	gl.FUNC_ADD:              gputypes.BlendOperationAdd,
	gl.FUNC_SUBTRACT:         gputypes.BlendOperationSubtract,
	gl.FUNC_REVERSE_SUBTRACT: gputypes.BlendOperationReverseSubtract,
	gl.MIN:                   gputypes.BlendOperationMin,
	gl.MAX:                   gputypes.BlendOperationMax,
}
