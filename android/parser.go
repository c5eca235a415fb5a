package android

const (
	// DefaultSDKVersion is used for minSdkVersion and targetSdkVersion
	// when a manifest does not declare them.
	DefaultSDKVersion = 10

	rClassSuffix = ".R"
)

// Receiver is a <receiver> paired with the actions of one of its
// <intent-filter> blocks. A receiver with several intent filters
// yields one Receiver per filter.
type Receiver struct {
	ClassName string
	Actions   []string
}

// ManifestInfo is everything derived from an AndroidManifest.xml.
// Empty strings mean the value was not declared.
type ManifestInfo struct {
	PackageName               string
	RClassName                string
	ApplicationName           string
	ProcessName               string
	MinSDKVersion             int
	TargetSDKVersion          int
	MinSDKVersionSpecified    bool
	TargetSDKVersionSpecified bool
	ApplicationFlags          ApplicationFlags
	Receivers                 []Receiver
}

func newManifestInfo() *ManifestInfo {
	return &ManifestInfo{
		MinSDKVersion:    DefaultSDKVersion,
		TargetSDKVersion: DefaultSDKVersion,
	}
}

// EffectiveSDKVersion is the target SDK version if declared, else the
// minimum SDK version if declared, else DefaultSDKVersion.
func (m *ManifestInfo) EffectiveSDKVersion() int {
	switch {
	case m.TargetSDKVersionSpecified:
		return m.TargetSDKVersion
	case m.MinSDKVersionSpecified:
		return m.MinSDKVersion
	}

	return DefaultSDKVersion
}

// ParseManifest derives a ManifestInfo from doc. Fields are populated in
// order; on error the fields populated before the failure are kept and
// the rest are left at their defaults, so the returned ManifestInfo is
// never nil.
func ParseManifest(doc *Element) (*ManifestInfo, error) {
	info := newManifestInfo()

	if pkg, ok := AttributeText(doc, "manifest", "package"); ok {
		info.PackageName = pkg
		info.RClassName = pkg + rClassSuffix
	}

	info.ApplicationName, _ = AttributeText(doc, "application", "android:name")

	var err error
	if info.MinSDKVersion, info.MinSDKVersionSpecified, err = parseSDKVersion(doc, "android:minSdkVersion"); err != nil {
		return info, err
	}

	if info.TargetSDKVersion, info.TargetSDKVersionSpecified, err = parseSDKVersion(doc, "android:targetSdkVersion"); err != nil {
		return info, err
	}

	var ok bool
	if info.ProcessName, ok = AttributeText(doc, "application", "android:process"); !ok {
		info.ProcessName = info.PackageName
	}

	info.ApplicationFlags = parseApplicationFlags(doc)
	info.Receivers = parseReceivers(doc, info.PackageName)

	return info, nil
}

// ParseManifestFile decodes and parses the AndroidManifest.xml at name.
// See ParseManifest.
func ParseManifestFile(name string) (*ManifestInfo, error) {
	doc, err := DecodeElementFile(name)
	if err != nil {
		return newManifestInfo(), err
	}

	return ParseManifest(doc)
}

func parseSDKVersion(doc *Element, attributeName string) (int, bool, error) {
	if _, ok := AttributeText(doc, "uses-sdk", attributeName); !ok {
		return DefaultSDKVersion, false, nil
	}

	version, err := AttributeInt(doc, "uses-sdk", attributeName, DefaultSDKVersion)
	return version, err == nil, err
}

func parseReceivers(doc *Element, pkg string) []Receiver {
	application := FirstElementByTagName(doc, "application")
	if application == nil {
		return nil
	}

	receivers := []Receiver{}
	for _, receiver := range ChildElements(application, "receiver") {
		name, ok := receiver.Attr("android:name")
		if !ok {
			continue
		}

		className := ResolveClassName(pkg, name)
		for _, intentFilter := range ChildElements(receiver, "intent-filter") {
			actions := []string{}
			for _, action := range ChildElements(intentFilter, "action") {
				if actionName, ok := action.Attr("android:name"); ok {
					actions = append(actions, actionName)
				}
			}

			receivers = append(receivers, Receiver{ClassName: className, Actions: actions})
		}
	}

	return receivers
}
