package android

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	xslice "github.com/frantjc/x/slice"
)

const (
	ResDirName    = "res"
	AssetsDirName = "assets"

	// MaxLibraryDepth bounds how deeply library references may nest.
	MaxLibraryDepth = 64
)

var (
	apklibsDir = filepath.Join("target", "unpack", "apklibs")
)

// ResolveResourceDirs returns the res directories contributed by the
// project at root and by its library projects: root/res first, then the
// libraries named by project.properties in declaration order, each
// expanded depth-first before moving on to the next.
//
// A project without project.properties instead contributes the res
// directory of every subdirectory of target/unpack/apklibs, sorted by
// name. Those libraries' own references are not followed.
func ResolveResourceDirs(root string) ([]string, error) {
	r := &libraryResolver{dirs: []string{}}

	if err := r.resolve(root, nil); err != nil {
		return nil, err
	}

	return r.dirs, nil
}

type libraryResolver struct {
	dirs []string
}

func (r *libraryResolver) resolve(root string, stack []string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	if xslice.Includes(stack, abs) {
		return fmt.Errorf("%w: %s", ErrLibraryCycle, strings.Join(append(stack, abs), " -> "))
	} else if len(stack) >= MaxLibraryDepth {
		return fmt.Errorf("%w: %s is nested %d libraries deep", ErrLibraryDepth, abs, len(stack))
	}

	stack = append(stack, abs)
	r.dirs = append(r.dirs, filepath.Join(root, ResDirName))

	props, ok, err := ReadProjectProperties(root)
	if err != nil {
		return err
	} else if ok {
		for _, lib := range LibraryReferences(props) {
			if err := r.resolve(filepath.Join(root, lib), stack); err != nil {
				return err
			}
		}

		return nil
	}

	unpack := filepath.Join(root, apklibsDir)
	if fi, err := os.Stat(unpack); err != nil || !fi.IsDir() {
		return nil
	}

	// os.ReadDir sorts by file name.
	entries, err := os.ReadDir(unpack)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		lib := filepath.Join(unpack, entry.Name())
		// Follow symlinks, entry.IsDir reports on the link itself.
		if fi, err := os.Stat(lib); err == nil && fi.IsDir() {
			r.dirs = append(r.dirs, filepath.Join(lib, ResDirName))
		}
	}

	return nil
}
