// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import "unsafe"

// fakeDriver implements VK_KHR_surface in Go for a single physical
// device and records the handles it is called with.
type fakeDriver struct {
	instance Instance
	gpu      PhysicalDevice
	surface  SurfaceKHR

	present      []bool // per queue family
	caps         SurfaceCapabilitiesKHR
	formats      []SurfaceFormatKHR
	modes        []PresentModeKHR
	result       Result // returned by every query when not Success
	incomplete   int    // fill calls answering Incomplete before succeeding
	fillCalls    int
	destroyed    []SurfaceKHR
	allocators   []*AllocationCallbacks
	lastQueue    uint32
	lastSurface  SurfaceKHR
	lastPhysical PhysicalDevice
}

func (d *fakeDriver) fn() *SurfaceFn {
	return &SurfaceFn{
		DestroySurfaceKHR: func(instance Instance, surface SurfaceKHR, allocator *AllocationCallbacks) {
			if instance == d.instance {
				d.destroyed = append(d.destroyed, surface)
				d.allocators = append(d.allocators, allocator)
			}
		},
		GetPhysicalDeviceSurfaceSupportKHR: func(gpu PhysicalDevice, queue uint32, surface SurfaceKHR, supported *Bool32) Result {
			d.lastPhysical, d.lastQueue, d.lastSurface = gpu, queue, surface
			if d.result != Success {
				return d.result
			}
			if int(queue) >= len(d.present) {
				return ErrorUnknown
			}
			*supported = False
			if d.present[queue] {
				*supported = True
			}
			return Success
		},
		GetPhysicalDeviceSurfaceCapabilitiesKHR: func(gpu PhysicalDevice, surface SurfaceKHR, caps *SurfaceCapabilitiesKHR) Result {
			d.lastPhysical, d.lastSurface = gpu, surface
			if d.result != Success {
				return d.result
			}
			*caps = d.caps
			return Success
		},
		GetPhysicalDeviceSurfaceFormatsKHR: func(gpu PhysicalDevice, surface SurfaceKHR, count *uint32, formats *SurfaceFormatKHR) Result {
			d.lastPhysical, d.lastSurface = gpu, surface
			return fill(d, count, formats, d.formats)
		},
		GetPhysicalDeviceSurfacePresentModesKHR: func(gpu PhysicalDevice, surface SurfaceKHR, count *uint32, modes *PresentModeKHR) Result {
			d.lastPhysical, d.lastSurface = gpu, surface
			return fill(d, count, modes, d.modes)
		},
	}
}

// fill answers a count-then-fill query the way drivers do.
func fill[T any](d *fakeDriver, count *uint32, dst *T, src []T) Result {
	if d.result != Success {
		return d.result
	}
	if dst == nil {
		*count = uint32(len(src))
		return Success
	}
	d.fillCalls++
	if d.incomplete > 0 {
		d.incomplete--
		return Incomplete
	}
	n := min(int(*count), len(src))
	copy(unsafe.Slice(dst, n), src[:n])
	*count = uint32(n)
	if n < len(src) {
		return Incomplete
	}
	return Success
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		instance: 0x1000,
		gpu:      0x2000,
		surface:  0xdeadbeef00000001,
		present:  []bool{false, true, true},
		caps: SurfaceCapabilitiesKHR{
			MinImageCount:           2,
			MaxImageCount:           8,
			CurrentExtent:           Extent2D{Width: 800, Height: 600},
			MinImageExtent:          Extent2D{Width: 1, Height: 1},
			MaxImageExtent:          Extent2D{Width: 4096, Height: 4096},
			MaxImageArrayLayers:     1,
			SupportedTransforms:     SurfaceTransformIdentityBitKHR,
			CurrentTransform:        SurfaceTransformIdentityBitKHR,
			SupportedCompositeAlpha: CompositeAlphaOpaqueBitKHR | CompositeAlphaPreMultipliedBitKHR,
			SupportedUsageFlags:     ImageUsageColorAttachmentBit | ImageUsageTransferDstBit,
		},
		formats: []SurfaceFormatKHR{
			{FormatB8g8r8a8Unorm, ColorSpaceSrgbNonlinearKHR},
			{FormatB8g8r8a8Srgb, ColorSpaceSrgbNonlinearKHR},
		},
		modes: []PresentModeKHR{PresentModeFifoKHR, PresentModeMailboxKHR},
	}
}
