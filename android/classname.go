package android

import "strings"

// ResolveClassName qualifies a component class name declared in a
// manifest. Names starting with "." are relative to pkg.
func ResolveClassName(pkg, name string) string {
	if strings.HasPrefix(name, ".") {
		return pkg + name
	}

	return name
}

// ApplicationClassCandidates returns the class names, in lookup order,
// that an <application android:name> may refer to. A name containing a
// "." that does not start with one is taken as fully qualified.
func ApplicationClassCandidates(pkg, name string) []string {
	switch {
	case name == "":
		return nil
	case strings.Contains(name, ".") && !strings.HasPrefix(name, "."):
		return []string{name}
	case strings.HasPrefix(name, "."):
		return []string{pkg + name}
	}

	return []string{pkg + "." + name, pkg + name}
}
