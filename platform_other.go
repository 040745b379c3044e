//go:build !darwin

package launcher

func detectDarwinPlatform() Platform {
	return PlatformUnknown
}
