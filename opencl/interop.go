// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opencl

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gloo/gl"
)

// Resource is a GL object that can be realised on demand. *gloo.Buffer
// and *gloo.Texture implement it.
type Resource interface {
	Handle() uint32
	Target() gl.Enum
	Activate() error
}

// BufferResource is a GL buffer.
type BufferResource interface {
	Resource
	Size() int
}

// TextureResource is a GL texture.
type TextureResource interface {
	Resource
	Dimension() gputypes.TextureDimension
	Size() (width, height, depth int)
}

// ComputeViewer returns a compute view of a GL resource. A nil ctx means
// the manager's shared context.
type ComputeViewer interface {
	ComputeView(ctx *SharedContext) (*View, error)
}

// ViewKind tells buffer views from texture views.
type ViewKind uint8

const (
	ViewBuffer ViewKind = iota
	ViewTexture2D
)

func (k ViewKind) String() string {
	if k == ViewBuffer {
		return "buffer"
	}
	return "texture2d"
}

// View is a compute memory object aliasing a GL resource. Acquire it on
// the compute queue before use and release it afterwards; GL must not
// touch the resource in between.
type View struct {
	Kind    ViewKind
	Target  gl.Enum
	Handle  uint32
	Dims    []int // bytes for buffers, width and height for textures
	Flags   MemFlags
	Context *SharedContext
	Mem     Mem
}

// Release releases the memory object. The GL resource is unaffected.
func (v *View) Release() error {
	if v.Mem == nil {
		return nil
	}
	m := v.Mem
	v.Mem = nil
	return m.Release()
}

// InteropOption configures BufferInterop and TextureInterop.
type InteropOption func(*interop)

type interop struct {
	mgr   *Manager
	flags MemFlags
}

// WithManager makes the view use m instead of Default when no context is
// given.
func WithManager(m *Manager) InteropOption {
	return func(o *interop) { o.mgr = m }
}

// WithFlags sets the access flags of created views. The default is
// MemReadWrite.
func WithFlags(f MemFlags) InteropOption {
	return func(o *interop) { o.flags = f }
}

func newInterop(opts []InteropOption) interop {
	var o interop
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *interop) context(ctx *SharedContext) (*SharedContext, error) {
	if ctx != nil {
		return ctx, nil
	}
	if o.mgr != nil {
		return o.mgr.Context()
	}
	return GetContext()
}

func realise(r Resource) (uint32, error) {
	if h := r.Handle(); h != 0 {
		return h, nil
	}
	if err := r.Activate(); err != nil {
		return 0, err
	}
	return r.Handle(), nil
}

// BufferInterop gives a GL buffer a compute view.
type BufferInterop struct {
	buf BufferResource
	o   interop
}

// NewBufferInterop wraps b.
func NewBufferInterop(b BufferResource, opts ...InteropOption) *BufferInterop {
	return &BufferInterop{buf: b, o: newInterop(opts)}
}

// ComputeView realises the buffer if needed and wraps it.
func (b *BufferInterop) ComputeView(ctx *SharedContext) (*View, error) {
	handle, err := realise(b.buf)
	if err != nil {
		return nil, err
	}
	ctx, err = b.o.context(ctx)
	if err != nil {
		return nil, err
	}
	mem, err := ctx.NewGLBuffer(b.o.flags, handle, b.buf.Size())
	if err != nil {
		return nil, err
	}
	return &View{
		Kind:    ViewBuffer,
		Target:  b.buf.Target(),
		Handle:  handle,
		Dims:    []int{b.buf.Size()},
		Flags:   b.o.flags,
		Context: ctx,
		Mem:     mem,
	}, nil
}

// TextureInterop gives a 1-D or 2-D GL texture a 2-D compute view of its
// base level.
type TextureInterop struct {
	tex TextureResource
	o   interop
}

// NewTextureInterop wraps t.
func NewTextureInterop(t TextureResource, opts ...InteropOption) *TextureInterop {
	return &TextureInterop{tex: t, o: newInterop(opts)}
}

// ComputeView realises the texture if needed and wraps level 0.
func (t *TextureInterop) ComputeView(ctx *SharedContext) (*View, error) {
	if t.tex.Dimension() == gputypes.TextureDimension3D {
		return nil, ErrUnsupportedDimension
	}
	handle, err := realise(t.tex)
	if err != nil {
		return nil, err
	}
	ctx, err = t.o.context(ctx)
	if err != nil {
		return nil, err
	}
	w, h, _ := t.tex.Size()
	mem, err := ctx.NewGLTexture(t.o.flags, t.tex.Target(), 0, handle, w, h)
	if err != nil {
		return nil, err
	}
	return &View{
		Kind:    ViewTexture2D,
		Target:  t.tex.Target(),
		Handle:  handle,
		Dims:    []int{w, h},
		Flags:   t.o.flags,
		Context: ctx,
		Mem:     mem,
	}, nil
}

var (
	_ ComputeViewer = (*BufferInterop)(nil)
	_ ComputeViewer = (*TextureInterop)(nil)
)
