package android

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/frantjc/resman/apktool"
	"github.com/frantjc/resman/keytool"
	"gopkg.in/yaml.v3"
)

const (
	apktoolMetadataName = "apktool.yml"
)

// APKDecoder decodes an .apk with apktool and describes the decoded
// AndroidManifest.xml and res directory.
type APKDecoder struct {
	Name string

	apktool    string
	framework  string
	keytool    string
	dir        string
	ownsDir    bool
	descOpts   []DescriptorOpt
	mu         sync.Mutex
	decoded    bool
	descriptor *Descriptor
	metadata   *apktool.Metadata
}

type APKDecoderOpt func(*APKDecoder)

func WithAPKTool(b string) APKDecoderOpt {
	return func(a *APKDecoder) {
		a.apktool = b
	}
}

// WithKeytool enables SigningCertFingerprints using the keytool at b.
func WithKeytool(b string) APKDecoderOpt {
	return func(a *APKDecoder) {
		a.keytool = b
	}
}

// WithFrameworkPath points apktool at a directory of framework
// .apks other than its default.
func WithFrameworkPath(dir string) APKDecoderOpt {
	return func(a *APKDecoder) {
		a.framework = dir
	}
}

// WithDir decodes into dir instead of a temporary directory. The
// directory is left in place by Close.
func WithDir(dir string) APKDecoderOpt {
	return func(a *APKDecoder) {
		a.dir = dir
	}
}

// WithDescriptorOpts passes opts through to the Descriptor.
func WithDescriptorOpts(opts ...DescriptorOpt) APKDecoderOpt {
	return func(a *APKDecoder) {
		a.descOpts = append(a.descOpts, opts...)
	}
}

func NewAPKDecoder(name string, opts ...APKDecoderOpt) *APKDecoder {
	ad := &APKDecoder{Name: name, apktool: "apktool"}

	for _, opt := range opts {
		opt(ad)
	}

	return ad
}

func (a *APKDecoder) decode(ctx context.Context) error {
	if a.decoded {
		return nil
	} else if a.dir == "" {
		var err error
		a.dir, err = os.MkdirTemp("", "resman-*")
		if err != nil {
			return err
		}
		a.ownsDir = true
	}

	opts := &apktool.DecodeOpts{
		Force:           true,
		NoSources:       true,
		FrameworkPath:   a.framework,
		OutputDirectory: a.dir,
	}

	if err := apktool.Command(a.apktool).Decode(ctx, a.Name, opts); err != nil {
		return err
	}

	a.decoded = true

	return nil
}

// Dir is the directory the .apk is decoded into, empty until decoded.
func (a *APKDecoder) Dir() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.dir
}

// Descriptor decodes the .apk if needed and returns a Descriptor of the
// decoded project.
func (a *APKDecoder) Descriptor(ctx context.Context) (*Descriptor, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.decode(ctx); err != nil {
		return nil, err
	}

	if a.descriptor == nil {
		a.descriptor = NewDescriptorFromDir(a.dir, a.descOpts...)
	}

	return a.descriptor, nil
}

// Metadata decodes the .apk if needed and reads apktool's apktool.yml.
func (a *APKDecoder) Metadata(ctx context.Context) (*apktool.Metadata, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.decode(ctx); err != nil {
		return nil, err
	}

	if a.metadata != nil {
		return a.metadata, nil
	}

	f, err := os.Open(filepath.Join(a.dir, apktoolMetadataName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	metadata := &apktool.Metadata{}
	if err := yaml.NewDecoder(f).Decode(metadata); err != nil {
		return nil, err
	}

	a.metadata = metadata

	return a.metadata, nil
}

// SigningCertFingerprints returns the SHA-256 fingerprints of the
// certificates that signed the .apk. It does not need the .apk to be
// decoded. Without WithKeytool it returns nil and no error.
func (a *APKDecoder) SigningCertFingerprints(ctx context.Context) ([]string, error) {
	if a.keytool == "" {
		return nil, nil
	}

	return keytool.Command(a.keytool).SHA256CertFingerprints(ctx, a.Name)
}

// Close removes the decoded directory if the decoder created it. The
// .apk itself is left alone.
func (a *APKDecoder) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ownsDir && a.dir != "" {
		if err := os.RemoveAll(a.dir); err != nil {
			return err
		}

		a.dir = ""
		a.ownsDir = false
	}

	a.decoded = false
	a.descriptor = nil
	a.metadata = nil

	return nil
}
