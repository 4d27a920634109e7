// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/pkg/errors"
	vk "github.com/tomas-mraz/vulkan"
)

func SetDebug(state bool) {
	Debug = state
}

// InstanceFromVk converts an instance created with the vk package.
func InstanceFromVk(instance vk.Instance) Instance {
	return *(*Instance)(unsafe.Pointer(&instance))
}

func (i Instance) Vk() vk.Instance {
	return *(*vk.Instance)(unsafe.Pointer(&i))
}

// PhysicalDeviceFromVk converts a physical device enumerated with the vk
// package.
func PhysicalDeviceFromVk(gpu vk.PhysicalDevice) PhysicalDevice {
	return *(*PhysicalDevice)(unsafe.Pointer(&gpu))
}

func (p PhysicalDevice) Vk() vk.PhysicalDevice {
	return *(*vk.PhysicalDevice)(unsafe.Pointer(&p))
}

// SurfaceFromVk converts a surface created with the vk package, for
// example by vk.CreateWindowSurface.
func SurfaceFromVk(surface vk.Surface) SurfaceKHR {
	return *(*SurfaceKHR)(unsafe.Pointer(&surface))
}

func (s SurfaceKHR) Vk() vk.Surface {
	return *(*vk.Surface)(unsafe.Pointer(&s))
}

func ResultFromVk(ret vk.Result) Result {
	return Result(ret)
}

func (r Result) Vk() vk.Result {
	return vk.Result(r)
}

// NewVkEntry opens the platform loader with NewEntry and initializes the
// vk package from it, so instances created with NewVulkan and commands
// resolved through the entry come from the same library.
func NewVkEntry() (*Entry, error) {
	e, err := NewEntry()
	if err != nil {
		return nil, err
	}
	if err := InitVk(e); err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

// InitVk makes the vk package use the loader of e.
func InitVk(e *Entry) error {
	if e == nil || e.procAddr == 0 {
		return errors.Wrap(ErrNotInstalled, "entry has no vkGetInstanceProcAddr")
	}
	vk.SetGetInstanceProcAddr(*(*unsafe.Pointer)(unsafe.Pointer(&e.procAddr)))
	return errors.Wrap(vk.Init(), "vk.Init")
}

// Vulkan holds an instance created with the vk package and, in debug mode,
// its debug report callback.
type Vulkan struct {
	Instance vk.Instance
	dbg      vk.DebugReportCallback
}

func GetInstanceExtensions() (extNames []string, err error) {
	var instanceExtLen uint32
	if err = vk.Error(vk.EnumerateInstanceExtensionProperties("", &instanceExtLen, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateInstanceExtensionProperties")
	}
	instanceExt := make([]vk.ExtensionProperties, instanceExtLen)
	if err = vk.Error(vk.EnumerateInstanceExtensionProperties("", &instanceExtLen, instanceExt)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateInstanceExtensionProperties")
	}
	for _, ext := range instanceExt[:instanceExtLen] {
		ext.Deref()
		extNames = append(extNames, GetCString(ext.ExtensionName[:]))
	}
	return extNames, nil
}

func GetPhysicalDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	var gpuCount uint32
	err := vk.Error(vk.EnumeratePhysicalDevices(instance, &gpuCount, nil))
	if err != nil {
		return nil, errors.Wrap(err, "vk.EnumeratePhysicalDevices")
	}
	if gpuCount == 0 {
		return nil, ErrNoPhysicalDevice
	}
	gpuList := make([]vk.PhysicalDevice, gpuCount)
	err = vk.Error(vk.EnumeratePhysicalDevices(instance, &gpuCount, gpuList))
	if err != nil {
		return nil, errors.Wrap(err, "vk.EnumeratePhysicalDevices")
	}
	return gpuList[:gpuCount], nil
}

// PhysicalDeviceName returns the driver reported name of gpu.
func PhysicalDeviceName(gpu vk.PhysicalDevice) string {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(gpu, &props)
	props.Deref()
	defer props.Free()
	return GetCString(props.DeviceName[:])
}

// QueueFamilyCount returns the number of queue families of gpu.
func QueueFamilyCount(gpu vk.PhysicalDevice) uint32 {
	var n uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(gpu, &n, nil)
	return n
}

func dbgCallbackFunc(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType, object uint64, location uint64, messageCode int32, pLayerPrefix string, pMessage string, pUserData unsafe.Pointer) vk.Bool32 {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		slog.Error(fmt.Sprintf("[%d] %s on layer %s", messageCode, pMessage, pLayerPrefix))
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		slog.Warn(fmt.Sprintf("[%d] %s on layer %s", messageCode, pMessage, pLayerPrefix))
	default:
		slog.Warn(fmt.Sprintf("unknown debug message %d (layer %s)", messageCode, pLayerPrefix))
	}
	return vk.Bool32(vk.False)
}

// NewVulkan creates an instance with the given extensions enabled.
// The vk package must have been initialized, see NewVkEntry.
func NewVulkan(appName string, instanceExtensions []string) (*Vulkan, error) {

	var appInfo = &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         vk.MakeVersion(1, 0, 0),
		ApplicationVersion: vk.MakeVersion(1, 0, 0),
		PApplicationName:   MakeCString(appName),
		PEngineName:        "no engine" + end,
	}

	existingExtensions, err := GetInstanceExtensions()
	if err != nil {
		return nil, err
	}
	slog.Debug(fmt.Sprintf("Instance extensions: %v", existingExtensions))

	extensions := make([]string, 0, len(instanceExtensions)+1)
	for _, name := range instanceExtensions {
		extensions = append(extensions, MakeCString(name))
	}
	var instanceLayers []string
	if Debug {
		extensions = append(extensions, "VK_EXT_debug_report"+end)
		instanceLayers = append(instanceLayers, "VK_LAYER_KHRONOS_validation"+end)
	}

	instanceCreateInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
		EnabledLayerCount:       uint32(len(instanceLayers)),
		PpEnabledLayerNames:     instanceLayers,
	}
	vo := &Vulkan{}
	err = vk.Error(vk.CreateInstance(&instanceCreateInfo, nil, &vo.Instance))
	if err != nil {
		return nil, errors.Wrap(err, "vk.CreateInstance")
	}
	if err = vk.InitInstance(vo.Instance); err != nil {
		vk.DestroyInstance(vo.Instance, nil)
		return nil, errors.Wrap(err, "vk.InitInstance")
	}

	if Debug {
		dbgCreateInfo := vk.DebugReportCallbackCreateInfo{
			SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
			Flags:       vk.DebugReportFlags(vk.DebugReportErrorBit | vk.DebugReportWarningBit),
			PfnCallback: dbgCallbackFunc,
		}
		var dbg vk.DebugReportCallback
		err = vk.Error(vk.CreateDebugReportCallback(vo.Instance, &dbgCreateInfo, nil, &dbg))
		if err != nil {
			slog.Warn(errors.Wrap(err, "vk.CreateDebugReportCallback").Error())
			return vo, nil
		}
		vo.dbg = dbg
	}
	return vo, nil
}

// Handle returns the instance as used by Surface.
func (v *Vulkan) Handle() Instance {
	return InstanceFromVk(v.Instance)
}

// Destroy destroys the debug callback and the instance. Surfaces created
// from the instance must be destroyed first.
func (v *Vulkan) Destroy() {
	if v.dbg != vk.NullDebugReportCallback {
		vk.DestroyDebugReportCallback(v.Instance, v.dbg, nil)
	}
	vk.DestroyInstance(v.Instance, nil)
}
