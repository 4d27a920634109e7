// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

//go:build !darwin && !freebsd && !linux && !netbsd && !windows

package asch

// No dynamic loading or foreign calls here: every constructor fails with
// ErrNotInstalled.
const canBind = false

var libraryNames []string

func openLibrary(path string) (uintptr, error) {
	return 0, errUnsupported()
}

func lookupSymbol(lib uintptr, name string) (uintptr, error) {
	return 0, errUnsupported()
}

func closeLibrary(lib uintptr) error {
	return nil
}

func registerFunc(fptr any, addr uintptr) {
	panic(errUnsupported())
}
