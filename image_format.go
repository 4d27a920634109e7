// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import (
	"image"
)

// SurfaceConfig describes the swapchain images chosen for a surface.
type SurfaceConfig struct {

	// Size of the swapchain images
	Size image.Point

	// image format and color space
	Format SurfaceFormatKHR

	// presentation mode -- FIFO is always available
	PresentMode PresentModeKHR

	// number of swapchain images -- 2 = double-buffering, 3 = triple-buffering
	ImageCount uint32

	// transform applied on presentation, normally the surface's current one
	Transform SurfaceTransformFlagsKHR

	// alpha compositing mode
	CompositeAlpha CompositeAlphaFlagsKHR
}

// ConfigOptions lists the preferences used to build a SurfaceConfig.
type ConfigOptions struct {
	Formats      []Format         // DefaultFormats if empty
	PresentModes []PresentModeKHR // FIFO if none matches
	ImageCount   uint32           // MinImageCount+1 if zero
}

// Config chooses a SurfaceConfig for a window of the given size.
func (info *SurfaceInfo) Config(window image.Point, opts ConfigOptions) (SurfaceConfig, error) {
	var sc SurfaceConfig
	format, err := ChooseSurfaceFormat(info.Formats, opts.Formats...)
	if err != nil {
		return sc, err
	}
	sc.Format = format
	sc.PresentMode = ChoosePresentMode(info.PresentModes, opts.PresentModes...)

	ext := ChooseExtent(info.Capabilities, Extent2D{Width: uint32(max(window.X, 0)), Height: uint32(max(window.Y, 0))})
	sc.SetSize(int(ext.Width), int(ext.Height))

	n := opts.ImageCount
	if n == 0 {
		n = info.Capabilities.MinImageCount + 1
	}
	sc.ImageCount = ChooseImageCount(info.Capabilities, n)
	sc.Transform = info.Capabilities.CurrentTransform
	sc.CompositeAlpha = ChooseCompositeAlpha(info.Capabilities)
	return sc, nil
}

// SetSize sets the width, height
func (sc *SurfaceConfig) SetSize(w, h int) {
	sc.Size = image.Point{X: w, Y: h}
}

// Extent returns Size as a Vulkan extent.
func (sc *SurfaceConfig) Extent() Extent2D {
	return Extent2D{Width: uint32(sc.Size.X), Height: uint32(sc.Size.Y)}
}

// IsZero reports whether the images would have no area, as happens for
// minimized windows. No swapchain can be created then.
func (sc *SurfaceConfig) IsZero() bool {
	return sc.Size.X == 0 || sc.Size.Y == 0
}
