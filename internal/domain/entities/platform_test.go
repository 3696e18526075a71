package entities

import "testing"

func TestPlatformFromGOOS(t *testing.T) {
	tests := map[string]Platform{
		"darwin":  PlatformMac,
		"linux":   PlatformLinux,
		"windows": PlatformWindows,
		"plan9":   PlatformUnsupported,
	}
	for goos, want := range tests {
		if got := PlatformFromGOOS(goos); got != want {
			t.Errorf("PlatformFromGOOS(%q) = %v, want %v", goos, got, want)
		}
	}
}
