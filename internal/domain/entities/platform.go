package entities

// Platform is the operating system family an engine probe runs on
type Platform int

const (
	// PlatformUnsupported is any OS the wrapper has no probe for
	PlatformUnsupported Platform = iota
	// PlatformMac covers darwin
	PlatformMac
	// PlatformLinux covers linux
	PlatformLinux
	// PlatformWindows covers windows
	PlatformWindows
)

// PlatformFromGOOS maps a runtime.GOOS value to a Platform
func PlatformFromGOOS(goos string) Platform {
	switch goos {
	case "darwin":
		return PlatformMac
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnsupported
	}
}

func (p Platform) String() string {
	switch p {
	case PlatformMac:
		return "mac"
	case PlatformLinux:
		return "linux"
	case PlatformWindows:
		return "windows"
	default:
		return "unsupported"
	}
}
