package launcher

import "runtime"

// Platform represents the operating system the launcher runs on.
type Platform string

const (
	PlatformMacOS   Platform = "darwin"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformUnknown Platform = "unknown"
)

// CurrentPlatform returns the platform the launcher is running on.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin", "ios":
		// gomobile builds for iOS carry the ios build tag
		return detectDarwinPlatform()
	case "android":
		return PlatformAndroid
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnknown
	}
}

// IsMobile returns true if running on iOS or Android.
func IsMobile() bool {
	p := CurrentPlatform()
	return p == PlatformIOS || p == PlatformAndroid
}

// IsIOS returns true if running on iOS.
func IsIOS() bool {
	return CurrentPlatform() == PlatformIOS
}

// IsAndroid returns true if running on Android.
func IsAndroid() bool {
	return CurrentPlatform() == PlatformAndroid
}
