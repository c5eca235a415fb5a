package android

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResourcePath is one res directory as handed to a resource table
// builder, along with the project's assets directory and the R class
// that resources are looked up through.
type ResourcePath struct {
	ResourceDir string
	AssetsDir   string
	RClass      *ClassRef
}

func absPath(name string) string {
	if abs, err := filepath.Abs(name); err == nil {
		return abs
	}

	return name
}

// Validate checks that the manifest is a regular file and that every res
// directory is a directory. The error wraps ErrNotFound and names the
// first offending path.
func (d *Descriptor) Validate() error {
	if fi, err := os.Stat(d.manifestFile); err != nil || !fi.Mode().IsRegular() {
		return fmt.Errorf(
			"%w: %s not found or not a file; it should point to your project's %s",
			ErrNotFound, absPath(d.manifestFile), AndroidManifestName,
		)
	}

	for _, dir := range d.resourceDirs {
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			return fmt.Errorf(
				"%w: %s not found or not a directory; it should point to a %s directory",
				ErrNotFound, absPath(dir), ResDirName,
			)
		}
	}

	return nil
}

// ResourcePaths validates d, locates its R class with loc and returns one
// ResourcePath per res directory, in precedence order.
func (d *Descriptor) ResourcePaths(loc ClassLocator) ([]ResourcePath, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	rClassName := d.RClassName()
	if rClassName == "" {
		return nil, fmt.Errorf("%w: %s does not declare a package", ErrResolution, d.manifestFile)
	}

	rClass, err := loc.LocateClass(rClassName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolution, err)
	}

	resourcePaths := make([]ResourcePath, len(d.resourceDirs))
	for i, dir := range d.resourceDirs {
		resourcePaths[i] = ResourcePath{
			ResourceDir: dir,
			AssetsDir:   d.assetsDir,
			RClass:      rClass,
		}
	}

	return resourcePaths, nil
}
