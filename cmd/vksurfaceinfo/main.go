// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

// Command vksurfaceinfo prints what every physical device reports about a
// headless surface: present support per queue family, capabilities,
// formats, present modes and the configuration a swapchain would use.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	asch "github.com/tomas-mraz/vksurface"
)

func main() {
	appName := flag.String("app", "vksurfaceinfo", "application name reported to the driver")
	debug := flag.Bool("debug", false, "enable validation layers and debug logging")
	lib := flag.String("lib", "", "Vulkan loader library to open instead of the default one")
	width := flag.Int("width", 1024, "window width used when the surface has no fixed size")
	height := flag.Int("height", 768, "window height used when the surface has no fixed size")
	flag.Parse()

	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		asch.SetDebug(true)
	}
	if err := run(os.Stdout, *lib, *appName, image.Pt(*width, *height)); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(w io.Writer, lib, appName string, window image.Point) error {
	entry, err := openEntry(lib)
	if err != nil {
		return err
	}
	defer entry.Close()

	vo, err := asch.NewVulkan(appName, []string{asch.SurfaceExtensionName, asch.HeadlessSurfaceExtensionName})
	if err != nil {
		return err
	}
	defer vo.Destroy()

	surfaceExt, err := asch.NewSurface(entry, vo.Handle())
	if err != nil {
		return err
	}
	headless, err := asch.NewHeadlessSurface(entry, vo.Handle())
	if err != nil {
		return err
	}
	surface, err := headless.CreateHeadlessSurface(nil)
	if err != nil {
		return err
	}
	defer surfaceExt.DestroySurface(surface, nil)

	gpus, err := asch.GetPhysicalDevices(vo.Instance)
	if err != nil {
		return err
	}
	for i, gpu := range gpus {
		fmt.Fprintf(w, "GPU %d: %s\n", i, asch.PhysicalDeviceName(gpu))
		if err := describe(w, surfaceExt, asch.PhysicalDeviceFromVk(gpu), asch.QueueFamilyCount(gpu), surface, window); err != nil {
			fmt.Fprintf(w, "  error: %s\n", err)
		}
	}
	return nil
}

func openEntry(lib string) (*asch.Entry, error) {
	if lib == "" {
		return asch.NewVkEntry()
	}
	entry, err := asch.NewEntryFromLibrary(lib)
	if err != nil {
		return nil, err
	}
	if err := asch.InitVk(entry); err != nil {
		entry.Close()
		return nil, err
	}
	return entry, nil
}

func describe(w io.Writer, s *asch.Surface, gpu asch.PhysicalDevice, families uint32, surface asch.SurfaceKHR, window image.Point) error {
	for q := uint32(0); q < families; q++ {
		ok, err := s.GetPhysicalDeviceSurfaceSupport(gpu, q, surface)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  queue family %d: present=%t\n", q, ok)
	}

	info, err := s.QuerySurfaceInfo(gpu, surface)
	if err != nil {
		return err
	}
	c := info.Capabilities
	fmt.Fprintf(w, "  images: min %d max %d, layers %d\n", c.MinImageCount, c.MaxImageCount, c.MaxImageArrayLayers)
	fmt.Fprintf(w, "  extent: current %dx%d min %dx%d max %dx%d\n",
		c.CurrentExtent.Width, c.CurrentExtent.Height,
		c.MinImageExtent.Width, c.MinImageExtent.Height,
		c.MaxImageExtent.Width, c.MaxImageExtent.Height)
	fmt.Fprintf(w, "  transforms %#x (current %#x), composite alpha %#x, usage %#x\n",
		c.SupportedTransforms, c.CurrentTransform, c.SupportedCompositeAlpha, c.SupportedUsageFlags)
	for _, f := range info.Formats {
		fmt.Fprintf(w, "  format %s color space %d\n", f.Format, f.ColorSpace)
	}
	for _, m := range info.PresentModes {
		fmt.Fprintf(w, "  present mode %s\n", m)
	}

	sc, err := info.Config(window, asch.ConfigOptions{
		PresentModes: []asch.PresentModeKHR{asch.PresentModeMailboxKHR},
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  config: %dx%d %s, %s, %d images\n",
		sc.Size.X, sc.Size.Y, sc.Format.Format, sc.PresentMode, sc.ImageCount)
	return nil
}
