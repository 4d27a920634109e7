// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import "fmt"

// Handles and structures below keep the Khronos C layout, pointers to them
// are passed to the driver as they are.

// Instance is a VkInstance handle.
type Instance uintptr

// PhysicalDevice is a VkPhysicalDevice handle.
type PhysicalDevice uintptr

// SurfaceKHR is a VkSurfaceKHR handle. It is 64 bits wide on every platform.
type SurfaceKHR uint64

// NullSurface is VK_NULL_HANDLE for surfaces.
const NullSurface SurfaceKHR = 0

type Bool32 uint32

const (
	False Bool32 = 0
	True  Bool32 = 1
)

const MaxUint32 = ^uint32(0)

type Format int32

const (
	FormatUndefined              Format = 0
	FormatR5g6b5UnormPack16      Format = 4
	FormatR8g8b8a8Unorm          Format = 37
	FormatR8g8b8a8Srgb           Format = 43
	FormatB8g8r8a8Unorm          Format = 44
	FormatB8g8r8a8Srgb           Format = 50
	FormatA2b10g10r10UnormPack32 Format = 64
	FormatR16g16b16a16Sfloat     Format = 97
)

var formatNames = map[Format]string{
	FormatUndefined:              "UNDEFINED",
	FormatR5g6b5UnormPack16:      "R5G6B5_UNORM_PACK16",
	FormatR8g8b8a8Unorm:          "R8G8B8A8_UNORM",
	FormatR8g8b8a8Srgb:           "R8G8B8A8_SRGB",
	FormatB8g8r8a8Unorm:          "B8G8R8A8_UNORM",
	FormatB8g8r8a8Srgb:           "B8G8R8A8_SRGB",
	FormatA2b10g10r10UnormPack32: "A2B10G10R10_UNORM_PACK32",
	FormatR16g16b16a16Sfloat:     "R16G16B16A16_SFLOAT",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

type ColorSpaceKHR int32

const (
	ColorSpaceSrgbNonlinearKHR         ColorSpaceKHR = 0
	ColorSpaceDisplayP3NonlinearEXT    ColorSpaceKHR = 1000104001
	ColorSpaceExtendedSrgbLinearEXT    ColorSpaceKHR = 1000104002
	ColorSpaceHdr10St2084EXT           ColorSpaceKHR = 1000104008
	ColorSpacePassThroughEXT           ColorSpaceKHR = 1000104013
	ColorSpaceExtendedSrgbNonlinearEXT ColorSpaceKHR = 1000104014
)

type PresentModeKHR int32

const (
	PresentModeImmediateKHR   PresentModeKHR = 0
	PresentModeMailboxKHR     PresentModeKHR = 1
	PresentModeFifoKHR        PresentModeKHR = 2
	PresentModeFifoRelaxedKHR PresentModeKHR = 3
)

func (m PresentModeKHR) String() string {
	switch m {
	case PresentModeImmediateKHR:
		return "IMMEDIATE"
	case PresentModeMailboxKHR:
		return "MAILBOX"
	case PresentModeFifoKHR:
		return "FIFO"
	case PresentModeFifoRelaxedKHR:
		return "FIFO_RELAXED"
	}
	return fmt.Sprintf("PresentModeKHR(%d)", int32(m))
}

// SurfaceTransformFlagsKHR is a mask of VkSurfaceTransformFlagBitsKHR.
type SurfaceTransformFlagsKHR uint32

const (
	SurfaceTransformIdentityBitKHR  SurfaceTransformFlagsKHR = 0x001
	SurfaceTransformRotate90BitKHR  SurfaceTransformFlagsKHR = 0x002
	SurfaceTransformRotate180BitKHR SurfaceTransformFlagsKHR = 0x004
	SurfaceTransformRotate270BitKHR SurfaceTransformFlagsKHR = 0x008
	SurfaceTransformInheritBitKHR   SurfaceTransformFlagsKHR = 0x100
)

// CompositeAlphaFlagsKHR is a mask of VkCompositeAlphaFlagBitsKHR.
type CompositeAlphaFlagsKHR uint32

const (
	CompositeAlphaOpaqueBitKHR         CompositeAlphaFlagsKHR = 0x1
	CompositeAlphaPreMultipliedBitKHR  CompositeAlphaFlagsKHR = 0x2
	CompositeAlphaPostMultipliedBitKHR CompositeAlphaFlagsKHR = 0x4
	CompositeAlphaInheritBitKHR        CompositeAlphaFlagsKHR = 0x8
)

type ImageUsageFlags uint32

const (
	ImageUsageTransferSrcBit     ImageUsageFlags = 0x01
	ImageUsageTransferDstBit     ImageUsageFlags = 0x02
	ImageUsageSampledBit         ImageUsageFlags = 0x04
	ImageUsageStorageBit         ImageUsageFlags = 0x08
	ImageUsageColorAttachmentBit ImageUsageFlags = 0x10
)

type Extent2D struct {
	Width  uint32
	Height uint32
}

// SurfaceCapabilitiesKHR mirrors VkSurfaceCapabilitiesKHR.
type SurfaceCapabilitiesKHR struct {
	MinImageCount           uint32
	MaxImageCount           uint32 // 0 means no limit
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     SurfaceTransformFlagsKHR
	CurrentTransform        SurfaceTransformFlagsKHR
	SupportedCompositeAlpha CompositeAlphaFlagsKHR
	SupportedUsageFlags     ImageUsageFlags
}

// SurfaceFormatKHR mirrors VkSurfaceFormatKHR.
type SurfaceFormatKHR struct {
	Format     Format
	ColorSpace ColorSpaceKHR
}

// AllocationCallbacks mirrors VkAllocationCallbacks. Function members are
// C function pointers.
type AllocationCallbacks struct {
	PUserData             uintptr
	PfnAllocation         uintptr
	PfnReallocation       uintptr
	PfnFree               uintptr
	PfnInternalAllocation uintptr
	PfnInternalFree       uintptr
}

type StructureType int32

const StructureTypeHeadlessSurfaceCreateInfoEXT StructureType = 1000256000

// HeadlessSurfaceCreateInfoEXT mirrors VkHeadlessSurfaceCreateInfoEXT.
type HeadlessSurfaceCreateInfoEXT struct {
	SType StructureType
	PNext uintptr
	Flags uint32
}
