// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import (
	"bytes"
	"unsafe"
)

const (
	end     = "\x00"
	endChar = '\x00'
)

// GetCString converts a fixed size, NUL padded char array to a string.
func GetCString(slice []byte) string {
	if i := bytes.IndexByte(slice, endChar); i >= 0 {
		slice = slice[:i]
	}
	return string(slice)
}

// MakeCString returns s with a terminating NUL, adding one if missing.
func MakeCString(s string) string {
	if len(s) == 0 {
		return end
	}
	if s[len(s)-1] != endChar {
		return s + end
	}
	return s
}

// GoString copies the NUL terminated string at p.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != endChar {
		n++
	}
	return string(unsafe.Slice(p, n))
}
