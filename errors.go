// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/pkg/errors"
)

var (
	// ErrNotInstalled is returned when no Vulkan loader library could be
	// opened or it does not export vkGetInstanceProcAddr.
	ErrNotInstalled = errors.New("vulkan: loader library not installed")

	// ErrProcNotFound is returned when a command of an extension could not
	// be resolved for an instance.
	ErrProcNotFound = errors.New("vulkan: procedure not found")

	// ErrCannotPresent is returned when no queue family of a physical device
	// can present to a surface.
	ErrCannotPresent = errors.New("vulkan: cannot present to surface")

	// ErrNoPhysicalDevice is returned when an instance enumerates no GPUs.
	ErrNoPhysicalDevice = errors.New("vulkan: no physical devices found")
)

// Result is a VkResult. Non-success values are used as errors directly.
type Result int32

const (
	Success                     Result = 0
	NotReady                    Result = 1
	Timeout                     Result = 2
	EventSet                    Result = 3
	EventReset                  Result = 4
	Incomplete                  Result = 5
	ErrorOutOfHostMemory        Result = -1
	ErrorOutOfDeviceMemory      Result = -2
	ErrorInitializationFailed   Result = -3
	ErrorDeviceLost             Result = -4
	ErrorMemoryMapFailed        Result = -5
	ErrorLayerNotPresent        Result = -6
	ErrorExtensionNotPresent    Result = -7
	ErrorFeatureNotPresent      Result = -8
	ErrorIncompatibleDriver     Result = -9
	ErrorTooManyObjects         Result = -10
	ErrorFormatNotSupported     Result = -11
	ErrorFragmentedPool         Result = -12
	ErrorUnknown                Result = -13
	ErrorSurfaceLostKHR         Result = -1000000000
	ErrorNativeWindowInUseKHR   Result = -1000000001
	SuboptimalKHR               Result = 1000001003
	ErrorOutOfDateKHR           Result = -1000001004
	ErrorIncompatibleDisplayKHR Result = -1000003001
	ErrorValidationFailedEXT    Result = -1000011001
)

var resultNames = map[Result]string{
	Success:                     "VK_SUCCESS",
	NotReady:                    "VK_NOT_READY",
	Timeout:                     "VK_TIMEOUT",
	EventSet:                    "VK_EVENT_SET",
	EventReset:                  "VK_EVENT_RESET",
	Incomplete:                  "VK_INCOMPLETE",
	ErrorOutOfHostMemory:        "VK_ERROR_OUT_OF_HOST_MEMORY",
	ErrorOutOfDeviceMemory:      "VK_ERROR_OUT_OF_DEVICE_MEMORY",
	ErrorInitializationFailed:   "VK_ERROR_INITIALIZATION_FAILED",
	ErrorDeviceLost:             "VK_ERROR_DEVICE_LOST",
	ErrorMemoryMapFailed:        "VK_ERROR_MEMORY_MAP_FAILED",
	ErrorLayerNotPresent:        "VK_ERROR_LAYER_NOT_PRESENT",
	ErrorExtensionNotPresent:    "VK_ERROR_EXTENSION_NOT_PRESENT",
	ErrorFeatureNotPresent:      "VK_ERROR_FEATURE_NOT_PRESENT",
	ErrorIncompatibleDriver:     "VK_ERROR_INCOMPATIBLE_DRIVER",
	ErrorTooManyObjects:         "VK_ERROR_TOO_MANY_OBJECTS",
	ErrorFormatNotSupported:     "VK_ERROR_FORMAT_NOT_SUPPORTED",
	ErrorFragmentedPool:         "VK_ERROR_FRAGMENTED_POOL",
	ErrorUnknown:                "VK_ERROR_UNKNOWN",
	ErrorSurfaceLostKHR:         "VK_ERROR_SURFACE_LOST_KHR",
	ErrorNativeWindowInUseKHR:   "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR",
	SuboptimalKHR:               "VK_SUBOPTIMAL_KHR",
	ErrorOutOfDateKHR:           "VK_ERROR_OUT_OF_DATE_KHR",
	ErrorIncompatibleDisplayKHR: "VK_ERROR_INCOMPATIBLE_DISPLAY_KHR",
	ErrorValidationFailedEXT:    "VK_ERROR_VALIDATION_FAILED_EXT",
}

func (r Result) String() string {
	if s, ok := resultNames[r]; ok {
		return s
	}
	return fmt.Sprintf("VkResult(%d)", int32(r))
}

func (r Result) Error() string {
	return fmt.Sprintf("vulkan error: %s (%d)", r.String(), int32(r))
}

// IsError reports whether r is one of the negative error codes.
func (r Result) IsError() bool {
	return r < 0
}

// NewError returns nil for Success and ret itself otherwise.
func NewError(ret Result) error {
	if ret != Success {
		if Debug {
			slog.Error(ret.Error())
			debug.PrintStack()
		}
		return ret
	}
	return nil
}

// IfPanic runs the finalizers and panics if err is not nil.
func IfPanic(err error, finalizers ...func()) {
	if err != nil {
		for _, fn := range finalizers {
			fn()
		}
		panic(err)
	}
}
