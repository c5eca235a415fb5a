package apktool

import (
	"strconv"

	xslice "github.com/frantjc/x/slice"
	xstrings "github.com/frantjc/x/strings"
	"golang.org/x/mod/semver"
)

type UsesFramework struct {
	IDs []int `yaml:"ids"`
	Tag any   `yaml:"tag"`
}

// SDKInfo holds SDK versions as apktool writes them, as quoted strings.
type SDKInfo struct {
	MinSDKVersion    string `yaml:"minSdkVersion"`
	TargetSDKVersion string `yaml:"targetSdkVersion"`
}

type PackageInfo struct {
	ForcedPackageID       string `yaml:"forcedPackageId"`
	RenameManifestPackage any    `yaml:"renameManifestPackage"`
}

type VersionInfo struct {
	VersionCode string `yaml:"versionCode"`
	VersionName string `yaml:"versionName"`
}

type Metadata struct {
	Version                string         `yaml:"version,omitempty"`
	APKFileName            string         `yaml:"apkFileName,omitempty"`
	IsFrameworkAPK         bool           `yaml:"isFrameworkApk,omitempty"`
	UsesFramework          *UsesFramework `yaml:"usesFramework,omitempty"`
	SDKInfo                *SDKInfo       `yaml:"sdkInfo,omitempty"`
	PackageInfo            *PackageInfo   `yaml:"packageInfo,omitempty"`
	VersionInfo            *VersionInfo   `yaml:"versionInfo,omitempty"`
	ResourcesAreCompressed bool           `yaml:"resourcesAreCompressed,omitempty"`
	SharedLibrary          bool           `yaml:"sharedLibrary,omitempty"`
	SparseResources        bool           `yaml:"sparseResources,omitempty"`
	UnknownFiles           map[string]int `yaml:"unknownFiles,omitempty"`
	DoNotCompress          []string       `yaml:"doNotCompress,omitempty"`
}

// SemVer returns the canonical semantic version of the decoded app,
// preferring its version name, or the empty string if none is valid.
func (m *Metadata) SemVer() string {
	if m.VersionInfo == nil {
		return ""
	}

	return semver.Canonical(
		xstrings.EnsurePrefix(
			xslice.Coalesce(m.VersionInfo.VersionName, m.VersionInfo.VersionCode),
			"v",
		),
	)
}

// SDKVersions returns the min and target SDK versions recorded by
// apktool, zero when absent or not numeric.
func (m *Metadata) SDKVersions() (int, int) {
	if m.SDKInfo == nil {
		return 0, 0
	}

	minSDKVersion, _ := strconv.Atoi(m.SDKInfo.MinSDKVersion)
	targetSDKVersion, _ := strconv.Atoi(m.SDKInfo.TargetSDKVersion)

	return minSDKVersion, targetSDKVersion
}
