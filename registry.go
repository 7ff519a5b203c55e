// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"sort"
	"sync"
)

// Config describes a canvas to create through a registered backend.
// When Data is set the backend draws into it, with rows Stride bytes
// apart.
type Config struct {
	Width   int
	Height  int
	Format  Format
	Data    []byte
	Stride  int
	Options []Option
}

// Factory creates a canvas for a backend.
type Factory func(cfg Config) (Canvas, error)

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
)

// RasterBackend is the name of the built-in software backend.
const RasterBackend = "raster"

func init() {
	Register(RasterBackend, newRasterFromConfig)
}

func newRasterFromConfig(cfg Config) (Canvas, error) {
	var (
		c   *RasterCanvas
		err error
	)
	if cfg.Data != nil {
		c, err = CreateForData(cfg.Data, cfg.Width, cfg.Height, cfg.Format, cfg.Stride, cfg.Options...)
	} else {
		c, err = Create(cfg.Width, cfg.Height, cfg.Format, cfg.Options...)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Register makes a backend available by name.
//
// Register panics if:
//   - factory is nil
//   - a backend with the same name is already registered
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("canvas: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("canvas: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// If the backend is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// New creates a canvas with the named backend.
// It returns a *BackendNotFoundError for unknown names.
//
// Example:
//
//	c, err := canvas.New(canvas.RasterBackend, canvas.Config{
//	    Width: 640, Height: 480, Format: canvas.FormatXRGB32,
//	})
func New(name string, cfg Config) (Canvas, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	return factory(cfg)
}

// Backends returns a sorted list of registered backend names.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "canvas: backend not found: " + e.Name
}
