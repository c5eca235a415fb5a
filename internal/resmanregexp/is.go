package resmanregexp

func IsAPK(name string) bool {
	return APK.MatchString(name)
}

func IsPackageName(name string) bool {
	return PackageName.MatchString(name)
}
