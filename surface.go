// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

// Debug makes NewError log every failed result with a stack trace.
var Debug = false

// Surface is the VK_KHR_surface extension loaded for one instance.
// Its methods are thin wrappers that forward to the driver and turn the
// returned VkResult into an error.
type Surface struct {
	handle Instance
	fn     *SurfaceFn
}

// NewSurface resolves the VK_KHR_surface commands of instance through
// entry. The instance must have been created with the extension enabled.
func NewSurface(entry *Entry, instance Instance) (*Surface, error) {
	fn, err := LoadSurfaceFn(func(name string) uintptr {
		return entry.GetInstanceProcAddr(instance, name)
	})
	if err != nil {
		return nil, errors.Wrap(err, "load VK_KHR_surface")
	}
	slog.Debug(fmt.Sprintf("loaded VK_KHR_surface for instance %#x", uintptr(instance)))
	return &Surface{handle: instance, fn: fn}, nil
}

// NewSurfaceFromFn returns a Surface using an already loaded command table.
func NewSurfaceFromFn(instance Instance, fn *SurfaceFn) (*Surface, error) {
	if missing := fn.missing(); len(missing) > 0 {
		return nil, errors.Wrap(ErrProcNotFound, strings.Join(missing, ", "))
	}
	return &Surface{handle: instance, fn: fn}, nil
}

// Instance returns the instance the commands were loaded for.
func (s *Surface) Instance() Instance {
	return s.handle
}

// Fn returns the raw command table.
func (s *Surface) Fn() *SurfaceFn {
	return s.fn
}

// GetPhysicalDeviceSurfaceSupport reports whether the queue family of
// physicalDevice can present to surface.
func (s *Surface) GetPhysicalDeviceSurfaceSupport(physicalDevice PhysicalDevice, queueFamilyIndex uint32, surface SurfaceKHR) (bool, error) {
	var supported Bool32
	ret := s.fn.GetPhysicalDeviceSurfaceSupportKHR(physicalDevice, queueFamilyIndex, surface, &supported)
	if err := NewError(ret); err != nil {
		return false, err
	}
	return supported != False, nil
}

func (s *Surface) GetPhysicalDeviceSurfaceCapabilities(physicalDevice PhysicalDevice, surface SurfaceKHR) (SurfaceCapabilitiesKHR, error) {
	var capabilities SurfaceCapabilitiesKHR
	ret := s.fn.GetPhysicalDeviceSurfaceCapabilitiesKHR(physicalDevice, surface, &capabilities)
	if err := NewError(ret); err != nil {
		return SurfaceCapabilitiesKHR{}, err
	}
	return capabilities, nil
}

func (s *Surface) GetPhysicalDeviceSurfaceFormats(physicalDevice PhysicalDevice, surface SurfaceKHR) ([]SurfaceFormatKHR, error) {
	return enumerate(func(count *uint32, formats *SurfaceFormatKHR) Result {
		return s.fn.GetPhysicalDeviceSurfaceFormatsKHR(physicalDevice, surface, count, formats)
	})
}

func (s *Surface) GetPhysicalDeviceSurfacePresentModes(physicalDevice PhysicalDevice, surface SurfaceKHR) ([]PresentModeKHR, error) {
	return enumerate(func(count *uint32, modes *PresentModeKHR) Result {
		return s.fn.GetPhysicalDeviceSurfacePresentModesKHR(physicalDevice, surface, count, modes)
	})
}

// DestroySurface destroys surface. A nil allocator selects the driver's
// default one. The surface must no longer be in use by any swapchain.
func (s *Surface) DestroySurface(surface SurfaceKHR, allocator *AllocationCallbacks) {
	s.fn.DestroySurfaceKHR(s.handle, surface, allocator)
}

// enumerateAttempts bounds how often a list query is repeated while the
// driver keeps reporting Incomplete.
const enumerateAttempts = 32

// enumerate runs the count-then-fill query pattern. The fill call is
// repeated while the driver reports Incomplete, at most enumerateAttempts
// times.
func enumerate[T any](call func(count *uint32, data *T) Result) ([]T, error) {
	for range enumerateAttempts {
		var count uint32
		if err := NewError(call(&count, nil)); err != nil {
			return nil, err
		}
		data := make([]T, count)
		if count == 0 {
			return data, nil
		}
		ret := call(&count, &data[0])
		if ret == Incomplete {
			continue
		}
		if err := NewError(ret); err != nil {
			return nil, err
		}
		return data[:min(int(count), len(data))], nil
	}
	return nil, errors.Wrapf(Incomplete, "list still incomplete after %d attempts", enumerateAttempts)
}
