package android

import (
	"strings"
)

// ApplicationFlags is the bitmask of boolean <application> attributes,
// using the bit values of android.content.pm.ApplicationInfo.
type ApplicationFlags int

const (
	FlagDebuggable              ApplicationFlags = 1 << 1
	FlagHasCode                 ApplicationFlags = 1 << 2
	FlagPersistent              ApplicationFlags = 1 << 3
	FlagAllowTaskReparenting    ApplicationFlags = 1 << 5
	FlagAllowClearUserData      ApplicationFlags = 1 << 6
	FlagTestOnly                ApplicationFlags = 1 << 8
	FlagSupportsSmallScreens    ApplicationFlags = 1 << 9
	FlagSupportsNormalScreens   ApplicationFlags = 1 << 10
	FlagSupportsLargeScreens    ApplicationFlags = 1 << 11
	FlagResizeableForScreens    ApplicationFlags = 1 << 12
	FlagSupportsScreenDensities ApplicationFlags = 1 << 13
	FlagVMSafeMode              ApplicationFlags = 1 << 14
	FlagAllowBackup             ApplicationFlags = 1 << 15
	FlagKillAfterRestore        ApplicationFlags = 1 << 16
	FlagRestoreAnyVersion       ApplicationFlags = 1 << 17
)

type applicationFlag struct {
	attr string
	name string
	flag ApplicationFlags
}

var applicationFlagAttrs = []applicationFlag{
	{"android:allowBackup", "ALLOW_BACKUP", FlagAllowBackup},
	{"android:allowClearUserData", "ALLOW_CLEAR_USER_DATA", FlagAllowClearUserData},
	{"android:allowTaskReparenting", "ALLOW_TASK_REPARENTING", FlagAllowTaskReparenting},
	{"android:debuggable", "DEBUGGABLE", FlagDebuggable},
	{"android:hasCode", "HAS_CODE", FlagHasCode},
	{"android:killAfterRestore", "KILL_AFTER_RESTORE", FlagKillAfterRestore},
	{"android:persistent", "PERSISTENT", FlagPersistent},
	{"android:resizeable", "RESIZEABLE_FOR_SCREENS", FlagResizeableForScreens},
	{"android:restoreAnyVersion", "RESTORE_ANY_VERSION", FlagRestoreAnyVersion},
	{"android:largeScreens", "SUPPORTS_LARGE_SCREENS", FlagSupportsLargeScreens},
	{"android:normalScreens", "SUPPORTS_NORMAL_SCREENS", FlagSupportsNormalScreens},
	{"android:anyDensity", "SUPPORTS_SCREEN_DENSITIES", FlagSupportsScreenDensities},
	{"android:smallScreens", "SUPPORTS_SMALL_SCREENS", FlagSupportsSmallScreens},
	{"android:testOnly", "TEST_ONLY", FlagTestOnly},
	{"android:vmSafeMode", "VM_SAFE_MODE", FlagVMSafeMode},
}

// Has reports whether every bit of flag is set in f.
func (f ApplicationFlags) Has(flag ApplicationFlags) bool {
	return f&flag == flag
}

// Names returns the names of the flags set in f, in attribute order.
func (f ApplicationFlags) Names() []string {
	names := []string{}
	for _, af := range applicationFlagAttrs {
		if f.Has(af.flag) {
			names = append(names, af.name)
		}
	}

	return names
}

func (f ApplicationFlags) String() string {
	return strings.Join(f.Names(), "|")
}

func parseApplicationFlags(doc *Element) ApplicationFlags {
	var flags ApplicationFlags
	for _, af := range applicationFlagAttrs {
		if value, ok := AttributeText(doc, "application", af.attr); ok && strings.EqualFold(value, "true") {
			flags |= af.flag
		}
	}

	return flags
}
