// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import (
	"errors"
	"strings"
	"testing"
)

const tMissingLib = "libasch-missing-vulkan.so"

func TestNewEntryFromProcAddr(t *testing.T) {
	e, err := NewEntryFromProcAddr(0)
	if e != nil || !errors.Is(err, ErrNotInstalled) {
		t.Errorf("NewEntryFromProcAddr(0)\nhave %v, %v\nwant nil, %v", e, err, ErrNotInstalled)
	}

	if !canBind {
		t.Skip("no native call support")
	}
	e, err = NewEntryFromProcAddr(0x1000)
	if err != nil {
		t.Fatalf("NewEntryFromProcAddr: unexpected error\n%v", err)
	}
	if e.ProcAddr() != 0x1000 || e.Path() != "" {
		t.Errorf("NewEntryFromProcAddr: have addr %#x path %q", e.ProcAddr(), e.Path())
	}
	if err := e.Close(); err != nil {
		t.Errorf("e.Close(): unexpected error\n%v", err)
	}
}

func TestNewEntryFromLibrary(t *testing.T) {
	e, err := NewEntryFromLibrary(tMissingLib)
	if e != nil || !errors.Is(err, ErrNotInstalled) {
		t.Errorf("NewEntryFromLibrary(%q)\nhave %v, %v\nwant nil, %v", tMissingLib, e, err, ErrNotInstalled)
	}
}

func TestNewEntryEnv(t *testing.T) {
	t.Setenv(LibraryEnv, tMissingLib)
	e, err := NewEntry()
	if e != nil || !errors.Is(err, ErrNotInstalled) {
		t.Fatalf("NewEntry\nhave %v, %v\nwant nil, %v", e, err, ErrNotInstalled)
	}
	if !strings.Contains(err.Error(), tMissingLib) {
		t.Errorf("NewEntry: error\nhave %q\nwant to name %q", err, tMissingLib)
	}
}

func TestNewEntry(t *testing.T) {
	e, err := NewEntry()
	if err != nil {
		if !errors.Is(err, ErrNotInstalled) {
			t.Fatalf("NewEntry: error\nhave %v\nwant %v", err, ErrNotInstalled)
		}
		t.Skip("no Vulkan loader installed")
	}
	defer e.Close()
	if e.ProcAddr() == 0 || e.Path() == "" {
		t.Errorf("NewEntry: have addr %#x path %q", e.ProcAddr(), e.Path())
	}
	// vkCreateInstance is a global command, resolved with a null instance.
	if addr := e.GetInstanceProcAddr(0, "vkCreateInstance"); addr == 0 {
		t.Error("e.GetInstanceProcAddr(0, vkCreateInstance)\nhave 0\nwant address")
	}
	if err := e.Close(); err != nil {
		t.Errorf("e.Close(): unexpected error\n%v", err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("e.Close() (twice): unexpected error\n%v", err)
	}
}
