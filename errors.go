// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"errors"
	"fmt"

	"github.com/gogpu/gloo/gl"
)

// Error classes. Every error returned by a Context matches exactly one of
// ErrInvalidArgument, ErrUnsupportedParameter or ErrDriverRejected under
// errors.Is.
var (
	// ErrInvalidArgument is returned for caller-side shape, arity or
	// enum-membership violations. Nothing reaches the driver.
	ErrInvalidArgument = errors.New("gloo: invalid argument")

	// ErrInvalidType is the type-level form of ErrInvalidArgument, such as
	// a number where a token string is required.
	ErrInvalidType = fmt.Errorf("%w: wrong type", ErrInvalidArgument)

	// ErrUnsupportedParameter is returned for names and tokens that are
	// valid GL but not defined in the active profile.
	ErrUnsupportedParameter = errors.New("gloo: unsupported parameter")

	// ErrDriverRejected is returned when the driver accepted the call but
	// flagged the value as invalid.
	ErrDriverRejected = errors.New("gloo: rejected by driver")
)

// StateError reports which state or parameter a validation failure
// belongs to.
type StateError struct {
	Name   string // state, parameter or preset name
	Detail string
	Err    error // one of the package sentinels
}

// Error formats the sentinel, the state name and the detail.
func (e *StateError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Name)
	}
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Name, e.Detail)
}

// Unwrap returns the sentinel so errors.Is matches it.
func (e *StateError) Unwrap() error { return e.Err }

func invalid(name, format string, args ...any) error {
	return &StateError{Name: name, Detail: fmt.Sprintf(format, args...), Err: ErrInvalidArgument}
}

func invalidType(name, format string, args ...any) error {
	return &StateError{Name: name, Detail: fmt.Sprintf(format, args...), Err: ErrInvalidType}
}

func unsupported(name, format string, args ...any) error {
	return &StateError{Name: name, Detail: fmt.Sprintf(format, args...), Err: ErrUnsupportedParameter}
}

// DriverError is a GL error code raised by a native call.
type DriverError struct {
	Call string
	Code gl.Enum
}

// Error names the failing call and the GL error code.
func (e *DriverError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrDriverRejected, e.Call, codeName(e.Code))
}

// Unwrap returns ErrDriverRejected.
func (e *DriverError) Unwrap() error { return ErrDriverRejected }

func codeName(code gl.Enum) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return fmt.Sprintf("GL error 0x%04x", uint32(code))
	}
}
