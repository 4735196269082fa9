// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    Enum
		wantErr error
	}{
		{"cw", ProfileDesktop, CW, nil},
		{"GL_CW", ProfileES2, CW, nil},
		{"Front_And_Back", ProfileES2, FRONT_AND_BACK, nil},
		{" nicest ", ProfileES2, NICEST, nil},
		{"fog_hint", ProfileDesktop, FOG_HINT, nil},
		{"fog_hint", ProfileES2, 0, ErrUnavailable},
		{"max", ProfileES2, 0, ErrUnavailable},
		{"texture_3d", ProfileDesktop, TEXTURE_3D, nil},
		{"sideways", ProfileDesktop, 0, ErrUnknownToken},
		{"", ProfileDesktop, 0, ErrUnknownToken},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.profile.String(), func(t *testing.T) {
			got, err := Lookup(tt.name, tt.profile)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Lookup(%q) error = %v, want %v", tt.name, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %#x, want %#x", tt.name, got, tt.want)
			}
		})
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, tok := range tokenList {
		if tok.value == ZERO {
			continue
		}
		if got := Name(tok.value); got != tok.name {
			t.Errorf("Name(%#x) = %q, want %q", tok.value, got, tok.name)
		}
	}
	if got := Name(0xdead); got != "0xdead" {
		t.Errorf("Name(0xdead) = %q", got)
	}
}

func TestAvailable(t *testing.T) {
	if !Available(TEXTURE_2D, ProfileES2) {
		t.Error("TEXTURE_2D should be available in es2")
	}
	if Available(TEXTURE_1D, ProfileES2) {
		t.Error("TEXTURE_1D should not be available in es2")
	}
	if !Available(TEXTURE_1D, ProfileDesktop) {
		t.Error("TEXTURE_1D should be available on desktop")
	}
	if !Available(VIEWPORT, ProfileES2) {
		t.Error("codes outside the token table should be left to the driver")
	}
}

func TestProfileString(t *testing.T) {
	if ProfileDesktop.String() != "desktop" || ProfileES2.String() != "es2" {
		t.Errorf("unexpected profile names %q %q", ProfileDesktop, ProfileES2)
	}
	if got := Profile(9).String(); got != "Profile(9)" {
		t.Errorf("Profile(9).String() = %q", got)
	}
}
