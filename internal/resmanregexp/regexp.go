package resmanregexp

import "regexp"

var (
	APK = regexp.MustCompile(`(?i)^[\w/.-]+\.apk$`)

	// PackageName matches a Java package name as declared by
	// <manifest package>, e.g. com.example.app.
	PackageName = regexp.MustCompile(`^[a-zA-Z_][\w]*(\.[a-zA-Z_][\w]*)*$`)
)
