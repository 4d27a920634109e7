// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import (
	"errors"
	"reflect"
	"testing"
)

func newTestSurface(t *testing.T) (*Surface, *fakeDriver) {
	t.Helper()
	d := newFakeDriver()
	s, err := NewSurfaceFromFn(d.instance, d.fn())
	if err != nil {
		t.Fatalf("NewSurfaceFromFn failed, cannot test surface\n%v", err)
	}
	return s, d
}

func TestSurfaceSupport(t *testing.T) {
	s, d := newTestSurface(t)
	for q, want := range d.present {
		ok, err := s.GetPhysicalDeviceSurfaceSupport(d.gpu, uint32(q), d.surface)
		if err != nil {
			t.Fatalf("s.GetPhysicalDeviceSurfaceSupport(%d): unexpected error\n%v", q, err)
		}
		if ok != want {
			t.Errorf("s.GetPhysicalDeviceSurfaceSupport(%d)\nhave %t\nwant %t", q, ok, want)
		}
		if d.lastPhysical != d.gpu || d.lastQueue != uint32(q) || d.lastSurface != d.surface {
			t.Errorf("s.GetPhysicalDeviceSurfaceSupport(%d): forwarded %#x, %d, %#x", q, d.lastPhysical, d.lastQueue, d.lastSurface)
		}
	}

	d.result = ErrorSurfaceLostKHR
	ok, err := s.GetPhysicalDeviceSurfaceSupport(d.gpu, 1, d.surface)
	if ok || !errors.Is(err, ErrorSurfaceLostKHR) {
		t.Errorf("s.GetPhysicalDeviceSurfaceSupport (lost surface)\nhave %t, %v\nwant false, %v", ok, err, ErrorSurfaceLostKHR)
	}
}

func TestSurfaceCapabilities(t *testing.T) {
	s, d := newTestSurface(t)
	caps, err := s.GetPhysicalDeviceSurfaceCapabilities(d.gpu, d.surface)
	if err != nil {
		t.Fatalf("s.GetPhysicalDeviceSurfaceCapabilities: unexpected error\n%v", err)
	}
	if caps != d.caps {
		t.Errorf("s.GetPhysicalDeviceSurfaceCapabilities\nhave %+v\nwant %+v", caps, d.caps)
	}
	if d.lastPhysical != d.gpu || d.lastSurface != d.surface {
		t.Errorf("s.GetPhysicalDeviceSurfaceCapabilities: forwarded %#x, %#x", d.lastPhysical, d.lastSurface)
	}

	d.result = ErrorOutOfDeviceMemory
	caps, err = s.GetPhysicalDeviceSurfaceCapabilities(d.gpu, d.surface)
	if caps != (SurfaceCapabilitiesKHR{}) || !errors.Is(err, ErrorOutOfDeviceMemory) {
		t.Errorf("s.GetPhysicalDeviceSurfaceCapabilities (error)\nhave %+v, %v\nwant zero, %v", caps, err, ErrorOutOfDeviceMemory)
	}
}

func TestSurfaceFormats(t *testing.T) {
	s, d := newTestSurface(t)
	formats, err := s.GetPhysicalDeviceSurfaceFormats(d.gpu, d.surface)
	if err != nil {
		t.Fatalf("s.GetPhysicalDeviceSurfaceFormats: unexpected error\n%v", err)
	}
	if !reflect.DeepEqual(formats, d.formats) {
		t.Errorf("s.GetPhysicalDeviceSurfaceFormats\nhave %v\nwant %v", formats, d.formats)
	}

	d.incomplete = 2
	d.fillCalls = 0
	formats, err = s.GetPhysicalDeviceSurfaceFormats(d.gpu, d.surface)
	if err != nil || !reflect.DeepEqual(formats, d.formats) {
		t.Errorf("s.GetPhysicalDeviceSurfaceFormats (incomplete)\nhave %v, %v\nwant %v, nil", formats, err, d.formats)
	}
	if d.fillCalls != 3 {
		t.Errorf("s.GetPhysicalDeviceSurfaceFormats (incomplete): fill calls\nhave %d\nwant 3", d.fillCalls)
	}

	d.formats = nil
	formats, err = s.GetPhysicalDeviceSurfaceFormats(d.gpu, d.surface)
	if err != nil || formats == nil || len(formats) != 0 {
		t.Errorf("s.GetPhysicalDeviceSurfaceFormats (none)\nhave %v, %v\nwant [], nil", formats, err)
	}

	d.result = ErrorSurfaceLostKHR
	if _, err = s.GetPhysicalDeviceSurfaceFormats(d.gpu, d.surface); !errors.Is(err, ErrorSurfaceLostKHR) {
		t.Errorf("s.GetPhysicalDeviceSurfaceFormats (error)\nhave %v\nwant %v", err, ErrorSurfaceLostKHR)
	}
}

func TestSurfacePresentModes(t *testing.T) {
	s, d := newTestSurface(t)
	modes, err := s.GetPhysicalDeviceSurfacePresentModes(d.gpu, d.surface)
	if err != nil {
		t.Fatalf("s.GetPhysicalDeviceSurfacePresentModes: unexpected error\n%v", err)
	}
	if !reflect.DeepEqual(modes, d.modes) {
		t.Errorf("s.GetPhysicalDeviceSurfacePresentModes\nhave %v\nwant %v", modes, d.modes)
	}
	if d.lastPhysical != d.gpu || d.lastSurface != d.surface {
		t.Errorf("s.GetPhysicalDeviceSurfacePresentModes: forwarded %#x, %#x", d.lastPhysical, d.lastSurface)
	}

	d.incomplete = 1
	modes, err = s.GetPhysicalDeviceSurfacePresentModes(d.gpu, d.surface)
	if err != nil || !reflect.DeepEqual(modes, d.modes) {
		t.Errorf("s.GetPhysicalDeviceSurfacePresentModes (incomplete)\nhave %v, %v\nwant %v, nil", modes, err, d.modes)
	}

	d.result = ErrorUnknown
	modes, err = s.GetPhysicalDeviceSurfacePresentModes(d.gpu, d.surface)
	if modes != nil || !errors.Is(err, ErrorUnknown) {
		t.Errorf("s.GetPhysicalDeviceSurfacePresentModes (error)\nhave %v, %v\nwant nil, %v", modes, err, ErrorUnknown)
	}
}

func TestSurfaceEnumerateShrink(t *testing.T) {
	// The list may shrink between the count and the fill call.
	calls := 0
	modes, err := enumerate(func(count *uint32, data *PresentModeKHR) Result {
		calls++
		if data == nil {
			*count = 3
			return Success
		}
		*data = PresentModeMailboxKHR
		*count = 1
		return Success
	})
	if err != nil || len(modes) != 1 || modes[0] != PresentModeMailboxKHR {
		t.Errorf("enumerate (shrink)\nhave %v, %v\nwant [MAILBOX], nil", modes, err)
	}
	if calls != 2 {
		t.Errorf("enumerate (shrink): calls\nhave %d\nwant 2", calls)
	}
}

func TestDestroySurface(t *testing.T) {
	s, d := newTestSurface(t)
	alloc := &AllocationCallbacks{}
	s.DestroySurface(d.surface, nil)
	s.DestroySurface(NullSurface, alloc)
	if len(d.destroyed) != 2 || d.destroyed[0] != d.surface || d.destroyed[1] != NullSurface {
		t.Fatalf("s.DestroySurface: destroyed\nhave %v\nwant [%#x 0]", d.destroyed, d.surface)
	}
	if d.allocators[0] != nil || d.allocators[1] != alloc {
		t.Errorf("s.DestroySurface: allocators\nhave %v\nwant [nil %p]", d.allocators, alloc)
	}
}

func TestSurfaceEnumerateIncomplete(t *testing.T) {
	// A driver that never completes the list must not hang the query.
	s, d := newTestSurface(t)
	d.incomplete = 1 << 20
	formats, err := s.GetPhysicalDeviceSurfaceFormats(d.gpu, d.surface)
	if formats != nil || !errors.Is(err, Incomplete) {
		t.Errorf("s.GetPhysicalDeviceSurfaceFormats (always incomplete)\nhave %v, %v\nwant nil, %v", formats, err, Incomplete)
	}
	if d.fillCalls != enumerateAttempts {
		t.Errorf("s.GetPhysicalDeviceSurfaceFormats (always incomplete): fill calls\nhave %d\nwant %d", d.fillCalls, enumerateAttempts)
	}
}
