// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// LibraryEnv names an environment variable that, when set, replaces the
// list of loader libraries NewEntry tries.
const LibraryEnv = "ASCH_VULKAN_LIBRARY"

// Entry is a loaded Vulkan loader and its vkGetInstanceProcAddr.
type Entry struct {
	path     string
	lib      uintptr
	procAddr uintptr

	getInstanceProcAddr func(instance Instance, name string) uintptr
}

// NewEntry opens the platform's Vulkan loader library.
func NewEntry() (*Entry, error) {
	names := libraryNames
	if lib := os.Getenv(LibraryEnv); lib != "" {
		names = []string{lib}
	}
	for _, name := range names {
		e, err := NewEntryFromLibrary(name)
		if err == nil {
			return e, nil
		}
		slog.Debug(fmt.Sprintf("cannot load %s: %s", name, err))
	}
	return nil, errors.Wrapf(ErrNotInstalled, "tried %s", strings.Join(names, ", "))
}

// NewEntryFromLibrary opens the loader library at path.
func NewEntryFromLibrary(path string) (*Entry, error) {
	lib, err := openLibrary(path)
	if err != nil {
		return nil, errors.Wrap(ErrNotInstalled, err.Error())
	}
	addr, err := lookupSymbol(lib, "vkGetInstanceProcAddr")
	if err != nil || addr == 0 {
		closeLibrary(lib)
		return nil, errors.Wrapf(ErrNotInstalled, "%s has no vkGetInstanceProcAddr", path)
	}
	e := newEntry(addr)
	e.path = path
	e.lib = lib
	slog.Debug(fmt.Sprintf("loaded Vulkan loader %s", path))
	return e, nil
}

// NewEntryFromProcAddr wraps an already resolved vkGetInstanceProcAddr,
// such as the one returned by glfwGetInstanceProcAddress.
func NewEntryFromProcAddr(addr uintptr) (*Entry, error) {
	if addr == 0 {
		return nil, errors.Wrap(ErrNotInstalled, "nil vkGetInstanceProcAddr")
	}
	if !canBind {
		return nil, errUnsupported()
	}
	return newEntry(addr), nil
}

// errUnsupported is returned on platforms without native call support.
func errUnsupported() error {
	return errors.Wrapf(ErrNotInstalled, "native calls are not supported on %s/%s", runtime.GOOS, runtime.GOARCH)
}

func newEntry(addr uintptr) *Entry {
	e := &Entry{procAddr: addr}
	registerFunc(&e.getInstanceProcAddr, addr)
	return e
}

// ProcAddr returns the address of vkGetInstanceProcAddr.
func (e *Entry) ProcAddr() uintptr {
	return e.procAddr
}

// GetInstanceProcAddr resolves name for instance. It returns zero when
// the command is not available.
func (e *Entry) GetInstanceProcAddr(instance Instance, name string) uintptr {
	return e.getInstanceProcAddr(instance, MakeCString(name))
}

// Path returns the library the entry was opened from, if any.
func (e *Entry) Path() string {
	return e.path
}

// Close unloads the library if the entry opened one. Commands resolved
// through e must not be called afterwards.
func (e *Entry) Close() error {
	if e.lib == 0 {
		return nil
	}
	err := closeLibrary(e.lib)
	e.lib = 0
	return err
}
