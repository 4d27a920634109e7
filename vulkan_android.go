// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build android

package asch

import (
	vk "github.com/tomas-mraz/vulkan"
)

// NewAndroidSurface creates a surface for the ANativeWindow at windowPtr.
// The instance must be a vk package instance with VK_KHR_android_surface
// enabled. The result is queried and destroyed through Surface.
func NewAndroidSurface(instance Instance, windowPtr uintptr) (SurfaceKHR, error) {
	surface := vk.NullSurface
	ret := vk.CreateWindowSurface(instance.Vk(), windowPtr, nil, &surface)
	if err := NewError(ResultFromVk(ret)); err != nil {
		return NullSurface, err
	}
	return SurfaceFromVk(surface), nil
}
