// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halcl

import "github.com/gogpu/gputypes"

// Option configures a Runtime.
type Option func(*options)

type options struct {
	backends  []Backend
	features  gputypes.Features
	limits    gputypes.Limits
	noSharing bool
}

func defaultOptions() options {
	return options{limits: gputypes.DefaultLimits()}
}

// WithFeatures requests features when opening adapters.
func WithFeatures(f gputypes.Features) Option {
	return func(o *options) { o.features = f }
}

// WithLimits replaces the default limits used when opening adapters.
func WithLimits(l gputypes.Limits) Option {
	return func(o *options) { o.limits = l }
}

// WithoutGLSharing makes the runtime report no GL sharing, so managers
// refuse to create contexts on it.
func WithoutGLSharing() Option {
	return func(o *options) { o.noSharing = true }
}
