//go:build ios

package launcher

func detectDarwinPlatform() Platform {
	return PlatformIOS
}
