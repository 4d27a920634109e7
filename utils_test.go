// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

package asch

import "testing"

func TestCString(t *testing.T) {
	for _, c := range [...]struct{ in, want string }{
		{"", "\x00"},
		{"VK_KHR_surface", "VK_KHR_surface\x00"},
		{"VK_KHR_surface\x00", "VK_KHR_surface\x00"},
	} {
		if s := MakeCString(c.in); s != c.want {
			t.Errorf("MakeCString(%q):\nhave %q\nwant %q", c.in, s, c.want)
		}
	}

	var name [16]byte
	copy(name[:], "llvmpipe")
	if s := GetCString(name[:]); s != "llvmpipe" {
		t.Errorf("GetCString:\nhave %q\nwant %q", s, "llvmpipe")
	}
	if s := GetCString([]byte("no terminator")); s != "no terminator" {
		t.Errorf("GetCString:\nhave %q\nwant %q", s, "no terminator")
	}

	b := []byte("vkDestroySurfaceKHR\x00garbage")
	if s := GoString(&b[0]); s != "vkDestroySurfaceKHR" {
		t.Errorf("GoString:\nhave %q\nwant %q", s, "vkDestroySurfaceKHR")
	}
	if s := GoString(nil); s != "" {
		t.Errorf("GoString(nil):\nhave %q\nwant \"\"", s)
	}
}
