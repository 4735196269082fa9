// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

// Enum is a native OpenGL enumerant.
type Enum uint32

const (
	NO_ERROR                      Enum = 0x0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	FALSE Enum = 0
	TRUE  Enum = 1

	// Capabilities
	BLEND                    Enum = 0x0be2
	CULL_FACE                Enum = 0x0b44
	DEPTH_TEST               Enum = 0x0b71
	DITHER                   Enum = 0x0bd0
	POLYGON_OFFSET_FILL      Enum = 0x8037
	SAMPLE_ALPHA_TO_COVERAGE Enum = 0x809e
	SAMPLE_COVERAGE          Enum = 0x80a0
	SCISSOR_TEST             Enum = 0x0c11
	STENCIL_TEST             Enum = 0x0b90
	LINE_SMOOTH              Enum = 0x0b20
	POLYGON_SMOOTH           Enum = 0x0b41
	MULTISAMPLE              Enum = 0x809d

	// Faces and winding
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
	CW             Enum = 0x0900
	CCW            Enum = 0x0901

	// Compare functions
	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207

	// Stencil operations
	ZERO      Enum = 0x0
	KEEP      Enum = 0x1e00
	REPLACE   Enum = 0x1e01
	INCR      Enum = 0x1e02
	DECR      Enum = 0x1e03
	INVERT    Enum = 0x150a
	INCR_WRAP Enum = 0x8507
	DECR_WRAP Enum = 0x8508

	// Blend factors
	ONE                      Enum = 0x1
	SRC_COLOR                Enum = 0x0300
	ONE_MINUS_SRC_COLOR      Enum = 0x0301
	SRC_ALPHA                Enum = 0x0302
	ONE_MINUS_SRC_ALPHA      Enum = 0x0303
	DST_ALPHA                Enum = 0x0304
	ONE_MINUS_DST_ALPHA      Enum = 0x0305
	DST_COLOR                Enum = 0x0306
	ONE_MINUS_DST_COLOR      Enum = 0x0307
	SRC_ALPHA_SATURATE       Enum = 0x0308
	CONSTANT_COLOR           Enum = 0x8001
	ONE_MINUS_CONSTANT_COLOR Enum = 0x8002
	CONSTANT_ALPHA           Enum = 0x8003
	ONE_MINUS_CONSTANT_ALPHA Enum = 0x8004

	// Blend equations
	FUNC_ADD              Enum = 0x8006
	MIN                   Enum = 0x8007
	MAX                   Enum = 0x8008
	FUNC_SUBTRACT         Enum = 0x800a
	FUNC_REVERSE_SUBTRACT Enum = 0x800b

	// Hints
	DONT_CARE                       Enum = 0x1100
	FASTEST                         Enum = 0x1101
	NICEST                          Enum = 0x1102
	GENERATE_MIPMAP_HINT            Enum = 0x8192
	PERSPECTIVE_CORRECTION_HINT     Enum = 0x0c50
	POINT_SMOOTH_HINT               Enum = 0x0c51
	LINE_SMOOTH_HINT                Enum = 0x0c52
	POLYGON_SMOOTH_HINT             Enum = 0x0c53
	FOG_HINT                        Enum = 0x0c54
	TEXTURE_COMPRESSION_HINT        Enum = 0x84ef
	FRAGMENT_SHADER_DERIVATIVE_HINT Enum = 0x8b8b

	// Clear bits
	DEPTH_BUFFER_BIT   Enum = 0x0100
	STENCIL_BUFFER_BIT Enum = 0x0400
	COLOR_BUFFER_BIT   Enum = 0x4000

	// State queries
	VIEWPORT                     Enum = 0x0ba2
	SCISSOR_BOX                  Enum = 0x0c10
	DEPTH_RANGE                  Enum = 0x0b70
	FRONT_FACE                   Enum = 0x0b46
	CULL_FACE_MODE               Enum = 0x0b45
	LINE_WIDTH                   Enum = 0x0b21
	POLYGON_OFFSET_FACTOR        Enum = 0x8038
	POLYGON_OFFSET_UNITS         Enum = 0x2a00
	BLEND_COLOR                  Enum = 0x8005
	BLEND_DST_RGB                Enum = 0x80c8
	BLEND_SRC_RGB                Enum = 0x80c9
	BLEND_DST_ALPHA              Enum = 0x80ca
	BLEND_SRC_ALPHA              Enum = 0x80cb
	BLEND_EQUATION_RGB           Enum = 0x8009
	BLEND_EQUATION_ALPHA         Enum = 0x883d
	STENCIL_FUNC                 Enum = 0x0b92
	STENCIL_VALUE_MASK           Enum = 0x0b93
	STENCIL_FAIL                 Enum = 0x0b94
	STENCIL_PASS_DEPTH_FAIL      Enum = 0x0b95
	STENCIL_PASS_DEPTH_PASS      Enum = 0x0b96
	STENCIL_REF                  Enum = 0x0b97
	STENCIL_WRITEMASK            Enum = 0x0b98
	STENCIL_BACK_FUNC            Enum = 0x8800
	STENCIL_BACK_FAIL            Enum = 0x8801
	STENCIL_BACK_PASS_DEPTH_FAIL Enum = 0x8802
	STENCIL_BACK_PASS_DEPTH_PASS Enum = 0x8803
	STENCIL_BACK_REF             Enum = 0x8ca3
	STENCIL_BACK_VALUE_MASK      Enum = 0x8ca4
	STENCIL_BACK_WRITEMASK       Enum = 0x8ca5
	DEPTH_FUNC                   Enum = 0x0b74
	DEPTH_WRITEMASK              Enum = 0x0b72
	COLOR_WRITEMASK              Enum = 0x0c23
	SAMPLE_COVERAGE_VALUE        Enum = 0x80aa
	SAMPLE_COVERAGE_INVERT       Enum = 0x80ab
	COLOR_CLEAR_VALUE            Enum = 0x0c22
	DEPTH_CLEAR_VALUE            Enum = 0x0b73
	STENCIL_CLEAR_VALUE          Enum = 0x0b91
	MAX_TEXTURE_SIZE             Enum = 0x0d33
	MAX_VIEWPORT_DIMS            Enum = 0x0d3a
	ALIASED_LINE_WIDTH_RANGE     Enum = 0x846e
	RED_BITS                     Enum = 0x0d52
	GREEN_BITS                   Enum = 0x0d53
	BLUE_BITS                    Enum = 0x0d54
	ALPHA_BITS                   Enum = 0x0d55
	DEPTH_BITS                   Enum = 0x0d56
	STENCIL_BITS                 Enum = 0x0d57
	SAMPLE_BUFFERS               Enum = 0x80a8
	SAMPLES                      Enum = 0x80a9
	DOUBLEBUFFER                 Enum = 0x0c32
	STEREO                       Enum = 0x0c33

	// Strings
	VENDOR                   Enum = 0x1f00
	RENDERER                 Enum = 0x1f01
	VERSION                  Enum = 0x1f02
	SHADING_LANGUAGE_VERSION Enum = 0x8b8c

	// Pixel transfer
	UNSIGNED_BYTE Enum = 0x1401
	RGB           Enum = 0x1907
	RGBA          Enum = 0x1908

	// Object targets
	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	TEXTURE_1D           Enum = 0x0de0
	TEXTURE_2D           Enum = 0x0de1
	TEXTURE_3D           Enum = 0x806f
)
