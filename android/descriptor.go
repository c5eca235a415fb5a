package android

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	xslice "github.com/frantjc/x/slice"
	"github.com/go-logr/logr"
	"github.com/opencontainers/go-digest"
)

// Descriptor is an AndroidManifest.xml together with the ordered res
// directories and the assets directory of the project it describes.
//
// Everything derived from the manifest is parsed lazily, once, on the
// first call to any accessor that needs it. A manifest that cannot be
// read or parsed does not cause an error: the accessors return their
// defaults and ParseErr reports why.
type Descriptor struct {
	manifestFile string
	resourceDirs []string
	assetsDir    string

	log       logr.Logger
	parseFile func(string) (*ManifestInfo, error)
	parseOnce sync.Once
	info      *ManifestInfo
	parseErr  error
}

type DescriptorOpt func(*Descriptor)

// WithResourceDirs sets the ordered res directories. Earlier directories
// take precedence over later ones.
func WithResourceDirs(dirs ...string) DescriptorOpt {
	return func(d *Descriptor) {
		d.resourceDirs = slices.Clone(dirs)
	}
}

// WithAssetsDir overrides the default assets directory, which is the
// assets sibling of the first res directory.
func WithAssetsDir(dir string) DescriptorOpt {
	return func(d *Descriptor) {
		d.assetsDir = dir
	}
}

// WithLogger sets the logger that tolerated parse failures are reported to.
func WithLogger(log logr.Logger) DescriptorOpt {
	return func(d *Descriptor) {
		d.log = log
	}
}

// NewDescriptor returns a Descriptor for the manifest at manifestFile.
// Without WithResourceDirs the res directory next to manifestFile is used.
func NewDescriptor(manifestFile string, opts ...DescriptorOpt) *Descriptor {
	d := &Descriptor{
		manifestFile: manifestFile,
		log:          logr.Discard(),
		parseFile:    ParseManifestFile,
	}

	for _, opt := range opts {
		opt(d)
	}

	if len(d.resourceDirs) == 0 {
		d.resourceDirs = []string{filepath.Join(filepath.Dir(manifestFile), ResDirName)}
	}

	if d.assetsDir == "" {
		d.assetsDir = filepath.Join(filepath.Dir(d.resourceDirs[0]), AssetsDirName)
	}

	return d
}

// NewDescriptorFromDir returns a Descriptor for baseDir/AndroidManifest.xml,
// baseDir/res and baseDir/assets.
func NewDescriptorFromDir(baseDir string, opts ...DescriptorOpt) *Descriptor {
	return NewDescriptor(
		filepath.Join(baseDir, AndroidManifestName),
		append([]DescriptorOpt{
			WithResourceDirs(filepath.Join(baseDir, ResDirName)),
			WithAssetsDir(filepath.Join(baseDir, AssetsDirName)),
		}, opts...)...,
	)
}

// NewDescriptorFromProject is NewDescriptorFromDir with the res
// directories of baseDir's library projects. See ResolveResourceDirs.
func NewDescriptorFromProject(baseDir string, opts ...DescriptorOpt) (*Descriptor, error) {
	dirs, err := ResolveResourceDirs(baseDir)
	if err != nil {
		return nil, err
	}

	return NewDescriptor(
		filepath.Join(baseDir, AndroidManifestName),
		append([]DescriptorOpt{
			WithResourceDirs(dirs...),
			WithAssetsDir(filepath.Join(baseDir, AssetsDirName)),
		}, opts...)...,
	), nil
}

func (d *Descriptor) parse() *ManifestInfo {
	d.parseOnce.Do(func() {
		d.info, d.parseErr = d.parseFile(d.manifestFile)
		if d.info == nil {
			d.info = newManifestInfo()
		}

		if d.parseErr != nil {
			d.log.V(1).Info("ignoring manifest parse failure", "manifest", d.manifestFile, "error", d.parseErr.Error())
		}
	})

	return d.info
}

func (d *Descriptor) ManifestFile() string {
	return d.manifestFile
}

// ResourceDirs returns a copy of the ordered res directories.
func (d *Descriptor) ResourceDirs() []string {
	return slices.Clone(d.resourceDirs)
}

// ResourceDir returns the first, highest precedence, res directory.
func (d *Descriptor) ResourceDir() string {
	return d.resourceDirs[0]
}

func (d *Descriptor) AssetsDir() string {
	return d.assetsDir
}

// ParseErr returns the error, if any, that was ignored while parsing
// the manifest. It triggers the parse.
func (d *Descriptor) ParseErr() error {
	d.parse()
	return d.parseErr
}

func (d *Descriptor) PackageName() string {
	return d.parse().PackageName
}

// RClassName is the name of the generated R class, PackageName + ".R".
func (d *Descriptor) RClassName() string {
	return d.parse().RClassName
}

// ApplicationName is the <application android:name>, which may be
// relative to PackageName, or empty if not declared.
func (d *Descriptor) ApplicationName() string {
	return d.parse().ApplicationName
}

// ProcessName is the <application android:process>, defaulting to
// PackageName.
func (d *Descriptor) ProcessName() string {
	return d.parse().ProcessName
}

func (d *Descriptor) MinSDKVersion() int {
	return d.parse().MinSDKVersion
}

func (d *Descriptor) TargetSDKVersion() int {
	return d.parse().TargetSDKVersion
}

func (d *Descriptor) MinSDKVersionSpecified() bool {
	return d.parse().MinSDKVersionSpecified
}

func (d *Descriptor) TargetSDKVersionSpecified() bool {
	return d.parse().TargetSDKVersionSpecified
}

// EffectiveSDKVersion is the SDK version the application runs against.
// See ManifestInfo.EffectiveSDKVersion.
func (d *Descriptor) EffectiveSDKVersion() int {
	return d.parse().EffectiveSDKVersion()
}

func (d *Descriptor) ApplicationFlags() ApplicationFlags {
	return d.parse().ApplicationFlags
}

// Receivers returns a copy of the receiver registrations, one per
// <intent-filter>, in declaration order.
func (d *Descriptor) Receivers() []Receiver {
	return xslice.Map(d.parse().Receivers, func(r Receiver, _ int) Receiver {
		return Receiver{ClassName: r.ClassName, Actions: slices.Clone(r.Actions)}
	})
}

func (d *Descriptor) ReceiverCount() int {
	return len(d.parse().Receivers)
}

// ReceiverClassName panics if i is out of range, like indexing Receivers.
func (d *Descriptor) ReceiverClassName(i int) string {
	return d.parse().Receivers[i].ClassName
}

// ReceiverIntentFilterActions panics if i is out of range, like indexing
// Receivers.
func (d *Descriptor) ReceiverIntentFilterActions(i int) []string {
	return slices.Clone(d.parse().Receivers[i].Actions)
}

// Application locates the class named by ApplicationName, trying each of
// ApplicationClassCandidates in turn. It returns nil and no error when
// the manifest does not name an application class.
func (d *Descriptor) Application(loc ClassLocator) (*ClassRef, error) {
	candidates := ApplicationClassCandidates(d.PackageName(), d.ApplicationName())
	if len(candidates) == 0 {
		return nil, nil
	}

	errs := []string{}
	for _, candidate := range candidates {
		ref, err := loc.LocateClass(candidate)
		if err == nil {
			return ref, nil
		}

		errs = append(errs, err.Error())
	}

	return nil, fmt.Errorf("%w: application %s: %s", ErrResolution, d.ApplicationName(), strings.Join(errs, "; "))
}

// Equal reports whether d and o describe the same files. Parsed state is
// not compared.
func (d *Descriptor) Equal(o *Descriptor) bool {
	if d == nil || o == nil {
		return d == o
	}

	return d.manifestFile == o.manifestFile &&
		d.assetsDir == o.assetsDir &&
		slices.Equal(d.resourceDirs, o.resourceDirs)
}

// Hash is a stable digest of the same fields Equal compares.
func (d *Descriptor) Hash() digest.Digest {
	fields := append([]string{d.manifestFile, d.assetsDir}, d.resourceDirs...)

	return digest.FromString(
		strings.Join(xslice.Map(fields, func(field string, _ int) string {
			return strconv.Quote(field)
		}), "\n"),
	)
}
