// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
)

// SurfaceInfo is everything a physical device reports about a surface,
// as needed to create a swapchain for it.
type SurfaceInfo struct {
	Capabilities SurfaceCapabilitiesKHR
	Formats      []SurfaceFormatKHR
	PresentModes []PresentModeKHR
}

// DefaultFormats is the format preference used when none is given.
var DefaultFormats = []Format{
	FormatR8g8b8a8Srgb,
	FormatB8g8r8a8Srgb,
	FormatR8g8b8a8Unorm,
	FormatB8g8r8a8Unorm,
}

// QuerySurfaceInfo queries capabilities, formats and present modes of
// surface on physicalDevice.
func (s *Surface) QuerySurfaceInfo(physicalDevice PhysicalDevice, surface SurfaceKHR) (SurfaceInfo, error) {
	var info SurfaceInfo
	var err error

	// Phase 1: vkGetPhysicalDeviceSurfaceCapabilitiesKHR

	info.Capabilities, err = s.GetPhysicalDeviceSurfaceCapabilities(physicalDevice, surface)
	if err != nil {
		return info, errors.Wrap(err, "vkGetPhysicalDeviceSurfaceCapabilitiesKHR")
	}

	// Phase 2: vkGetPhysicalDeviceSurfaceFormatsKHR
	//			vkGetPhysicalDeviceSurfacePresentModesKHR

	info.Formats, err = s.GetPhysicalDeviceSurfaceFormats(physicalDevice, surface)
	if err != nil {
		return info, errors.Wrap(err, "vkGetPhysicalDeviceSurfaceFormatsKHR")
	}
	info.PresentModes, err = s.GetPhysicalDeviceSurfacePresentModes(physicalDevice, surface)
	if err != nil {
		return info, errors.Wrap(err, "vkGetPhysicalDeviceSurfacePresentModesKHR")
	}
	slog.Debug(fmt.Sprintf("got %d surface formats and %d present modes", len(info.Formats), len(info.PresentModes)))
	return info, nil
}

// FindPresentQueueFamily returns the first of familyCount queue families
// that can present to surface. If none can, the last query error is
// returned, or ErrCannotPresent if every query succeeded.
func (s *Surface) FindPresentQueueFamily(physicalDevice PhysicalDevice, surface SurfaceKHR, familyCount uint32) (uint32, error) {
	e := ErrCannotPresent
	for i := uint32(0); i < familyCount; i++ {
		ok, err := s.GetPhysicalDeviceSurfaceSupport(physicalDevice, i, surface)
		if err != nil {
			e = err
			continue
		}
		if ok {
			return i, nil
		}
	}
	return MaxUint32, e
}

// ChooseSurfaceFormat picks the first format of preferred (DefaultFormats
// if empty) that formats contains. A lone FormatUndefined entry means the
// surface takes any format. Without a match the first advertised format
// is returned.
func ChooseSurfaceFormat(formats []SurfaceFormatKHR, preferred ...Format) (SurfaceFormatKHR, error) {
	if len(formats) == 0 {
		return SurfaceFormatKHR{}, errors.New("surface reports no formats")
	}
	if len(preferred) == 0 {
		preferred = DefaultFormats
	}
	if len(formats) == 1 && formats[0].Format == FormatUndefined {
		return SurfaceFormatKHR{Format: preferred[0], ColorSpace: ColorSpaceSrgbNonlinearKHR}, nil
	}
	for _, want := range preferred {
		for _, f := range formats {
			if f.Format == want {
				return f, nil
			}
		}
	}
	return formats[0], nil
}

// ChoosePresentMode picks the first of preferred that modes contains,
// falling back to FIFO which every implementation supports.
func ChoosePresentMode(modes []PresentModeKHR, preferred ...PresentModeKHR) PresentModeKHR {
	for _, want := range preferred {
		for _, m := range modes {
			if m == want {
				return m
			}
		}
	}
	return PresentModeFifoKHR
}

// ChooseExtent returns the surface's current extent, or window clamped to
// the supported range when the surface size is determined by the
// swapchain (Wayland reports 0xFFFFFFFF).
func ChooseExtent(caps SurfaceCapabilitiesKHR, window Extent2D) Extent2D {
	if caps.CurrentExtent.Width != MaxUint32 {
		return caps.CurrentExtent
	}
	slog.Debug("surface extent size is not set, using window size")
	return Extent2D{
		Width:  clamp(window.Width, caps.MinImageExtent.Width, caps.MaxImageExtent.Width),
		Height: clamp(window.Height, caps.MinImageExtent.Height, caps.MaxImageExtent.Height),
	}
}

// ChooseImageCount clamps desired to the image count range of caps.
// A MaxImageCount of zero means there is no upper limit.
func ChooseImageCount(caps SurfaceCapabilitiesKHR, desired uint32) uint32 {
	n := desired
	if n < caps.MinImageCount {
		n = caps.MinImageCount
	}
	if caps.MaxImageCount != 0 && n > caps.MaxImageCount {
		n = caps.MaxImageCount
	}
	return n
}

// ChooseCompositeAlpha returns the lowest composite alpha bit supported.
func ChooseCompositeAlpha(caps SurfaceCapabilitiesKHR) CompositeAlphaFlagsKHR {
	for bit := CompositeAlphaOpaqueBitKHR; bit <= CompositeAlphaInheritBitKHR; bit <<= 1 {
		if caps.SupportedCompositeAlpha&bit != 0 {
			return bit
		}
	}
	return CompositeAlphaOpaqueBitKHR
}

func clamp(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if hi != 0 && v > hi {
		return hi
	}
	return v
}
