package android

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/magiconair/properties"
)

const (
	ProjectPropertiesName  = "project.properties"
	LibraryReferencePrefix = "android.library.reference."
)

// ReadProjectProperties loads dir/project.properties. The bool is false,
// with a nil error, when the file does not exist.
func ReadProjectProperties(dir string) (*properties.Properties, bool, error) {
	name := filepath.Join(dir, ProjectPropertiesName)

	if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	l := &properties.Loader{
		Encoding:         properties.ISO_8859_1,
		DisableExpansion: true,
	}

	p, err := l.LoadFile(name)
	if err != nil {
		return nil, false, err
	}

	return p, true, nil
}

// LibraryReferences returns the values of android.library.reference.1,
// .2 and so on, stopping at the first missing key.
func LibraryReferences(p *properties.Properties) []string {
	if p == nil {
		return nil
	}

	refs := []string{}
	for i := 1; ; i++ {
		ref, ok := p.Get(LibraryReferencePrefix + strconv.Itoa(i))
		if !ok {
			return refs
		}

		refs = append(refs, ref)
	}
}
