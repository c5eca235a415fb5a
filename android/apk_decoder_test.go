package android

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeAPKToolMetadata = `version: 2.9.3
apkFileName: app.apk
isFrameworkApk: false
usesFramework:
  ids:
  - 1
  tag: null
sdkInfo:
  minSdkVersion: '8'
  targetSdkVersion: '17'
packageInfo:
  forcedPackageId: '127'
  renameManifestPackage: null
versionInfo:
  versionCode: '3'
  versionName: 1.2.0
doNotCompress:
- resources.arsc
`

// newFakeAPKTool writes a script that behaves like `apktool decode` by
// copying the test manifest into the directory given to --output.
func newFakeAPKTool(t *testing.T) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake apktool is a shell script")
	}

	var (
		dir      = t.TempDir()
		manifest = filepath.Join(dir, AndroidManifestName)
		metadata = filepath.Join(dir, apktoolMetadataName)
		script   = filepath.Join(dir, "apktool")
	)

	writeFile(t, manifest, string(data))
	writeFile(t, metadata, fakeAPKToolMetadata)
	writeFile(t, script, `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
	case "$1" in
		--output) out="$2"; shift ;;
		*.broken) echo "brut.androlib.AndrolibException: could not decode arsc file" >&2; exit 1 ;;
	esac
	shift
done
mkdir -p "$out/res"
cp "`+manifest+`" "$out/AndroidManifest.xml"
cp "`+metadata+`" "$out/apktool.yml"
`)
	require.NoError(t, os.Chmod(script, 0o755))

	return script
}

func TestAPKDecoder(t *testing.T) {
	var (
		ctx     = context.Background()
		apktool = newFakeAPKTool(t)
		apk     = filepath.Join(t.TempDir(), "app.apk")
	)

	writeFile(t, apk, "")

	ad := NewAPKDecoder(apk, WithAPKTool(apktool))
	assert.Empty(t, ad.Dir())

	d, err := ad.Descriptor(ctx)
	require.NoError(t, err)

	dir := ad.Dir()
	assert.DirExists(t, dir)
	assert.NoError(t, d.Validate())
	assert.Equal(t, "com.example.resman", d.PackageName())
	assert.Equal(t, filepath.Join(dir, AssetsDirName), d.AssetsDir())

	again, err := ad.Descriptor(ctx)
	require.NoError(t, err)
	assert.Same(t, d, again)

	metadata, err := ad.Metadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, "app.apk", metadata.APKFileName)
	assert.Equal(t, "v1.2.0", metadata.SemVer())

	minSDKVersion, targetSDKVersion := metadata.SDKVersions()
	assert.Equal(t, 8, minSDKVersion)
	assert.Equal(t, 17, targetSDKVersion)

	require.NoError(t, ad.Close())
	assert.NoDirExists(t, dir)
	assert.FileExists(t, apk)
	assert.Empty(t, ad.Dir())
}

func TestAPKDecoderWithDir(t *testing.T) {
	var (
		ctx     = context.Background()
		apktool = newFakeAPKTool(t)
		dir     = filepath.Join(t.TempDir(), "decoded")
	)

	ad := NewAPKDecoder("app.apk", WithAPKTool(apktool), WithDir(dir))

	d, err := ad.Descriptor(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, AndroidManifestName), d.ManifestFile())

	require.NoError(t, ad.Close())
	assert.DirExists(t, dir, "directories that were not created by the decoder are left in place")
}

func TestAPKDecoderError(t *testing.T) {
	ad := NewAPKDecoder("app.broken", WithAPKTool(newFakeAPKTool(t)))
	defer ad.Close()

	_, err := ad.Descriptor(context.Background())
	assert.ErrorContains(t, err, "could not decode arsc file")
}
