package android

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ClassRef is a located class. Source is where it was found, e.g. a
// generated R.java, and may be empty for classes registered in memory.
type ClassRef struct {
	Name   string
	Source string
}

// ClassLocator finds classes by fully-qualified name on behalf of
// Descriptor.ResourcePaths and Descriptor.Application.
type ClassLocator interface {
	LocateClass(name string) (*ClassRef, error)
}

// ClassMap is a ClassLocator over a fixed set of class names mapped to
// their sources.
type ClassMap map[string]string

func (m ClassMap) LocateClass(name string) (*ClassRef, error) {
	if source, ok := m[name]; ok {
		return &ClassRef{Name: name, Source: source}, nil
	}

	return nil, fmt.Errorf("class %s not registered", name)
}

var (
	// GeneratedSourceDirs are the directories, relative to a project
	// root, that Ant, Gradle and Maven builds generate R classes into.
	GeneratedSourceDirs = []string{
		"gen",
		filepath.Join("build", "generated", "source", "r", "debug"),
		filepath.Join("build", "generated", "source", "r", "release"),
		filepath.Join("target", "generated-sources", "r"),
		filepath.Join("bin", "classes"),
	}

	classFileExts = []string{".java", ".kt", ".class"}
)

// GenDirLocator locates classes by looking for their source or class
// file under a list of root directories.
type GenDirLocator struct {
	Roots []string
}

// NewGenDirLocator returns a GenDirLocator rooted at each of
// GeneratedSourceDirs under projectRoot.
func NewGenDirLocator(projectRoot string) *GenDirLocator {
	l := &GenDirLocator{}

	for _, dir := range GeneratedSourceDirs {
		l.Roots = append(l.Roots, filepath.Join(projectRoot, dir))
	}

	return l
}

func (l *GenDirLocator) LocateClass(name string) (*ClassRef, error) {
	if name == "" {
		return nil, fmt.Errorf("empty class name")
	}

	rel := filepath.FromSlash(strings.ReplaceAll(name, ".", "/"))
	for _, root := range l.Roots {
		for _, ext := range classFileExts {
			source := filepath.Join(root, rel+ext)
			if fi, err := os.Stat(source); err == nil && fi.Mode().IsRegular() {
				return &ClassRef{Name: name, Source: source}, nil
			}
		}
	}

	return nil, fmt.Errorf("class %s not found in %s", name, strings.Join(l.Roots, ", "))
}
