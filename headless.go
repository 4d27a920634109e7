// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import (
	"github.com/pkg/errors"
)

// HeadlessSurfaceExtensionName must be enabled on the instance, together
// with SurfaceExtensionName, to create headless surfaces.
const HeadlessSurfaceExtensionName = "VK_EXT_headless_surface"

// SurfaceExtensionName is the name of the VK_KHR_surface extension.
const SurfaceExtensionName = "VK_KHR_surface"

// HeadlessSurfaceFn is the VK_EXT_headless_surface command table.
type HeadlessSurfaceFn struct {
	CreateHeadlessSurfaceEXT func(instance Instance, createInfo *HeadlessSurfaceCreateInfoEXT, allocator *AllocationCallbacks, surface *SurfaceKHR) Result
}

// HeadlessSurface creates surfaces not tied to any window system. They
// are useful to query surface support without a display.
type HeadlessSurface struct {
	handle Instance
	fn     *HeadlessSurfaceFn
}

// LoadHeadlessSurfaceFn resolves vkCreateHeadlessSurfaceEXT with load.
func LoadHeadlessSurfaceFn(load func(name string) uintptr) (*HeadlessSurfaceFn, error) {
	fn := &HeadlessSurfaceFn{}
	err := loadProcs(load, []string{"vkCreateHeadlessSurfaceEXT"}, []any{&fn.CreateHeadlessSurfaceEXT})
	if err != nil {
		return nil, err
	}
	return fn, nil
}

// NewHeadlessSurface loads VK_EXT_headless_surface for instance.
func NewHeadlessSurface(entry *Entry, instance Instance) (*HeadlessSurface, error) {
	fn, err := LoadHeadlessSurfaceFn(func(name string) uintptr {
		return entry.GetInstanceProcAddr(instance, name)
	})
	if err != nil {
		return nil, errors.Wrap(err, "load "+HeadlessSurfaceExtensionName)
	}
	return &HeadlessSurface{handle: instance, fn: fn}, nil
}

// NewHeadlessSurfaceFromFn returns a HeadlessSurface using fn.
func NewHeadlessSurfaceFromFn(instance Instance, fn *HeadlessSurfaceFn) (*HeadlessSurface, error) {
	if fn == nil || fn.CreateHeadlessSurfaceEXT == nil {
		return nil, errors.Wrap(ErrProcNotFound, "vkCreateHeadlessSurfaceEXT")
	}
	return &HeadlessSurface{handle: instance, fn: fn}, nil
}

// CreateHeadlessSurface creates a new surface. It is destroyed with
// Surface.DestroySurface.
func (h *HeadlessSurface) CreateHeadlessSurface(allocator *AllocationCallbacks) (SurfaceKHR, error) {
	info := HeadlessSurfaceCreateInfoEXT{
		SType: StructureTypeHeadlessSurfaceCreateInfoEXT,
	}
	surface := NullSurface
	if err := NewError(h.fn.CreateHeadlessSurfaceEXT(h.handle, &info, allocator, &surface)); err != nil {
		return NullSurface, err
	}
	return surface, nil
}
