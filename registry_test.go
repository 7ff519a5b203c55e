// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"slices"
	"testing"
)

func TestRasterRegistered(t *testing.T) {
	if !slices.Contains(Backends(), RasterBackend) {
		t.Fatalf("Backends() = %v, want it to contain %q", Backends(), RasterBackend)
	}

	c, err := New(RasterBackend, Config{Width: 3, Height: 2, Format: FormatXRGB32})
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	defer c.Destroy()
	if c.Width() != 3 || c.Height() != 2 {
		t.Errorf("New() size = %dx%d, want 3x2", c.Width(), c.Height())
	}
}

func TestNewForData(t *testing.T) {
	data := make([]byte, 16)
	c, err := New(RasterBackend, Config{Width: 2, Height: 2, Format: FormatXRGB32, Data: data, Stride: 8})
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	defer c.Destroy()
	c.Clear()
	c.FillSolidSpans([]Span{{X: 1, Y: 1, Width: 1}}, 0xff)
	if data[12] != 0xff {
		t.Errorf("data[12] = %#x, want 0xff", data[12])
	}
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New("missing", Config{})
	var nf *BackendNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("New() error = %v, want *BackendNotFoundError", err)
	}
	if nf.Name != "missing" {
		t.Errorf("Name = %q, want %q", nf.Name, "missing")
	}
	if got, want := err.Error(), "canvas: backend not found: missing"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRegisterCustom(t *testing.T) {
	const name = "test-custom"
	var got Config
	Register(name, func(cfg Config) (Canvas, error) {
		got = cfg
		return Create(cfg.Width, cfg.Height, cfg.Format)
	})
	t.Cleanup(func() { Unregister(name) })

	c, err := New(name, Config{Width: 1, Height: 1, Format: FormatRGB565})
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	c.Destroy()
	if got.Format != FormatRGB565 {
		t.Errorf("factory saw format %v, want %v", got.Format, FormatRGB565)
	}

	Unregister(name)
	if slices.Contains(Backends(), name) {
		t.Error("Unregister did not remove the backend")
	}
}

func TestRegisterPanics(t *testing.T) {
	assertPanics(t, "Register(nil)", func() {
		Register("nil-factory", nil)
	})
	assertPanics(t, "Register twice", func() {
		Register(RasterBackend, newRasterFromConfig)
	})
}

func TestNewPropagatesErrors(t *testing.T) {
	_, err := New(RasterBackend, Config{Width: 0, Height: 1, Format: FormatXRGB32})
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("New() error = %v, want %v", err, ErrInvalidDimensions)
	}
}
