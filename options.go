// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import "github.com/gogpu/gloo/gl"

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Treat a desktop driver as if it only offered the ES 2.0 namespace.
//	c := gloo.NewContext(fns, gloo.WithProfile(gl.ProfileES2))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	errorCheck bool
	profile    gl.Profile
	profileSet bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		errorCheck: true,
	}
}

// WithErrorCheck controls whether GetError is polled around every native
// call. It is on by default; turning it off trades ErrDriverRejected
// reporting for fewer driver round trips.
func WithErrorCheck(on bool) ContextOption {
	return func(o *contextOptions) {
		o.errorCheck = on
	}
}

// WithProfile overrides the profile reported by the driver. Validation
// then uses p's namespace; the driver still has the final word.
func WithProfile(p gl.Profile) ContextOption {
	return func(o *contextOptions) {
		o.profile = p
		o.profileSet = true
	}
}
