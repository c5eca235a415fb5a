package android

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustParse(t *testing.T, s string) *ManifestInfo {
	t.Helper()

	info, err := ParseManifest(mustDecode(t, s))
	require.NoError(t, err)

	return info
}

func TestParseManifest(t *testing.T) {
	doc, err := DecodeElement(bytes.NewReader(data))
	require.NoError(t, err)

	info, err := ParseManifest(doc)
	require.NoError(t, err)

	assert.Equal(t, "com.example.resman", info.PackageName)
	assert.Equal(t, "com.example.resman.R", info.RClassName)
	assert.Equal(t, ".ExampleApplication", info.ApplicationName)
	assert.Equal(t, "com.example.resman.worker", info.ProcessName)
	assert.Equal(t, 8, info.MinSDKVersion)
	assert.Equal(t, 17, info.TargetSDKVersion)
	assert.True(t, info.MinSDKVersionSpecified)
	assert.True(t, info.TargetSDKVersionSpecified)
	assert.Equal(t, 17, info.EffectiveSDKVersion())
	assert.Equal(t, FlagDebuggable|FlagAllowBackup|FlagTestOnly, info.ApplicationFlags)
	assert.Equal(t, []Receiver{
		{
			ClassName: "com.example.resman.ConfigChangeReceiver",
			Actions:   []string{"android.intent.action.CONFIGURATION_CHANGED"},
		},
		{
			ClassName: "com.example.resman.ConfigChangeReceiver",
			Actions:   []string{"com.example.resman.ACTION_FIRST", "com.example.resman.ACTION_SECOND"},
		},
		{
			ClassName: "com.other.FullyQualifiedReceiver",
			Actions:   []string{"com.other.ACTION"},
		},
	}, info.Receivers)
}

func TestParseManifestWithoutUsesSDK(t *testing.T) {
	info := mustParse(t, `<manifest package="com.example"><application/></manifest>`)

	assert.Equal(t, DefaultSDKVersion, info.MinSDKVersion)
	assert.Equal(t, DefaultSDKVersion, info.TargetSDKVersion)
	assert.False(t, info.MinSDKVersionSpecified)
	assert.False(t, info.TargetSDKVersionSpecified)
	assert.Equal(t, DefaultSDKVersion, info.EffectiveSDKVersion())
}

func TestParseManifestEffectiveSDKVersion(t *testing.T) {
	tests := []struct {
		name    string
		usesSDK string
		want    int
	}{
		{"neither", `<uses-sdk/>`, DefaultSDKVersion},
		{"min only", `<uses-sdk android:minSdkVersion="8"/>`, 8},
		{"target only", `<uses-sdk android:targetSdkVersion="19"/>`, 19},
		{"both", `<uses-sdk android:minSdkVersion="8" android:targetSdkVersion="19"/>`, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := mustParse(t, `<manifest package="com.example">`+tt.usesSDK+`</manifest>`)
			assert.Equal(t, tt.want, info.EffectiveSDKVersion())
		})
	}
}

func TestParseManifestDefaults(t *testing.T) {
	info := mustParse(t, `<manifest package="com.example"><application/></manifest>`)

	assert.Empty(t, info.ApplicationName)
	assert.Equal(t, "com.example", info.ProcessName)
	assert.Zero(t, info.ApplicationFlags)
	assert.Empty(t, info.Receivers)
}

func TestParseManifestWithoutApplication(t *testing.T) {
	info := mustParse(t, `<manifest package="com.example"/>`)

	assert.Equal(t, "com.example", info.ProcessName)
	assert.Nil(t, info.Receivers)
}

func TestParseManifestKeepsFieldsParsedBeforeFailure(t *testing.T) {
	doc := mustDecode(t, `
<manifest package="com.example">
	<uses-sdk android:minSdkVersion="eight" android:targetSdkVersion="17"/>
	<application android:name=".App" android:debuggable="true">
		<receiver android:name=".Receiver"><intent-filter><action android:name="a"/></intent-filter></receiver>
	</application>
</manifest>`)

	info, err := ParseManifest(doc)
	require.Error(t, err)
	require.NotNil(t, info)

	assert.Equal(t, "com.example", info.PackageName)
	assert.Equal(t, "com.example.R", info.RClassName)
	assert.Equal(t, ".App", info.ApplicationName)
	assert.Equal(t, DefaultSDKVersion, info.MinSDKVersion)
	assert.False(t, info.MinSDKVersionSpecified)
	assert.Equal(t, DefaultSDKVersion, info.TargetSDKVersion)
	assert.False(t, info.TargetSDKVersionSpecified)
	assert.Empty(t, info.ProcessName)
	assert.Zero(t, info.ApplicationFlags)
	assert.Empty(t, info.Receivers)
}

func TestParseManifestFileMissing(t *testing.T) {
	info, err := ParseManifestFile("testdata/does-not-exist.xml")
	assert.Error(t, err)
	require.NotNil(t, info)
	assert.Empty(t, info.PackageName)
	assert.Equal(t, DefaultSDKVersion, info.EffectiveSDKVersion())
}

func TestParseManifestReceiverPerIntentFilter(t *testing.T) {
	info := mustParse(t, `
<manifest package="com.example">
	<application>
		<receiver android:name=".Foo">
			<intent-filter><action android:name="com.example.ONE"/></intent-filter>
			<intent-filter><action android:name="com.example.TWO"/></intent-filter>
		</receiver>
	</application>
</manifest>`)

	require.Len(t, info.Receivers, 2)
	assert.Equal(t, Receiver{ClassName: "com.example.Foo", Actions: []string{"com.example.ONE"}}, info.Receivers[0])
	assert.Equal(t, Receiver{ClassName: "com.example.Foo", Actions: []string{"com.example.TWO"}}, info.Receivers[1])
}

func TestParseManifestApplicationFlags(t *testing.T) {
	for _, af := range applicationFlagAttrs {
		t.Run(af.name, func(t *testing.T) {
			info := mustParse(t, fmt.Sprintf(`<manifest package="com.example"><application %s="TRUE"/></manifest>`, af.attr))
			assert.Equal(t, af.flag, info.ApplicationFlags)
		})
	}

	info := mustParse(t, `<manifest package="com.example"><application android:debuggable="yes" android:persistent="false"/></manifest>`)
	assert.Zero(t, info.ApplicationFlags)
}

func TestParseManifestApplicationFlagsIgnoreCase(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var (
			af    = rapid.SampledFrom(applicationFlagAttrs).Draw(t, "flag")
			value = rapid.StringMatching(`[tT][rR][uU][eE]`).Draw(t, "value")
			doc   = fmt.Sprintf(`<manifest package="com.example"><application %s="%s"/></manifest>`, af.attr, value)
		)

		el, err := DecodeElement(strings.NewReader(doc))
		if err != nil {
			t.Fatal(err)
		}

		info, err := ParseManifest(el)
		if err != nil {
			t.Fatal(err)
		}

		if !info.ApplicationFlags.Has(af.flag) {
			t.Fatalf("%s=%q did not set %s", af.attr, value, af.name)
		}
	})
}
