// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import (
	"strings"

	"github.com/pkg/errors"
)

// SurfaceFn is the VK_KHR_surface command table of one instance.
type SurfaceFn struct {
	DestroySurfaceKHR                       func(instance Instance, surface SurfaceKHR, allocator *AllocationCallbacks)
	GetPhysicalDeviceSurfaceSupportKHR      func(physicalDevice PhysicalDevice, queueFamilyIndex uint32, surface SurfaceKHR, supported *Bool32) Result
	GetPhysicalDeviceSurfaceCapabilitiesKHR func(physicalDevice PhysicalDevice, surface SurfaceKHR, capabilities *SurfaceCapabilitiesKHR) Result
	GetPhysicalDeviceSurfaceFormatsKHR      func(physicalDevice PhysicalDevice, surface SurfaceKHR, count *uint32, formats *SurfaceFormatKHR) Result
	GetPhysicalDeviceSurfacePresentModesKHR func(physicalDevice PhysicalDevice, surface SurfaceKHR, count *uint32, modes *PresentModeKHR) Result
}

// SurfaceProcNames are the commands of VK_KHR_surface, in the order
// LoadSurfaceFn resolves them.
var SurfaceProcNames = []string{
	"vkDestroySurfaceKHR",
	"vkGetPhysicalDeviceSurfaceSupportKHR",
	"vkGetPhysicalDeviceSurfaceCapabilitiesKHR",
	"vkGetPhysicalDeviceSurfaceFormatsKHR",
	"vkGetPhysicalDeviceSurfacePresentModesKHR",
}

func (fn *SurfaceFn) procs() []any {
	return []any{
		&fn.DestroySurfaceKHR,
		&fn.GetPhysicalDeviceSurfaceSupportKHR,
		&fn.GetPhysicalDeviceSurfaceCapabilitiesKHR,
		&fn.GetPhysicalDeviceSurfaceFormatsKHR,
		&fn.GetPhysicalDeviceSurfacePresentModesKHR,
	}
}

// LoadSurfaceFn resolves every VK_KHR_surface command with load and binds
// the addresses. It fails, naming all missing commands, unless every
// command resolves.
func LoadSurfaceFn(load func(name string) uintptr) (*SurfaceFn, error) {
	fn := &SurfaceFn{}
	if err := loadProcs(load, SurfaceProcNames, fn.procs()); err != nil {
		return nil, err
	}
	return fn, nil
}

// missing returns the names of the commands fn lacks.
func (fn *SurfaceFn) missing() []string {
	if fn == nil {
		return SurfaceProcNames
	}
	var names []string
	have := []bool{
		fn.DestroySurfaceKHR != nil,
		fn.GetPhysicalDeviceSurfaceSupportKHR != nil,
		fn.GetPhysicalDeviceSurfaceCapabilitiesKHR != nil,
		fn.GetPhysicalDeviceSurfaceFormatsKHR != nil,
		fn.GetPhysicalDeviceSurfacePresentModesKHR != nil,
	}
	for i, ok := range have {
		if !ok {
			names = append(names, SurfaceProcNames[i])
		}
	}
	return names
}

// loadProcs resolves names[i] and binds it to the function pointed to by
// dst[i]. Nothing is bound unless all names resolve.
func loadProcs(load func(name string) uintptr, names []string, dst []any) error {
	addrs := make([]uintptr, len(names))
	var missing []string
	for i, name := range names {
		addrs[i] = load(name)
		if addrs[i] == 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errors.Wrap(ErrProcNotFound, strings.Join(missing, ", "))
	}
	if !canBind {
		return errUnsupported()
	}
	for i := range dst {
		registerFunc(dst[i], addrs[i])
	}
	return nil
}
