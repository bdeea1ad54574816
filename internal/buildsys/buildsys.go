// Package buildsys detects which build system governs a project tree and
// translates tap's uniform subcommands into invocations of that tool.
package buildsys

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dccsillag/tap/internal/msg"
)

// Kind identifies the build system governing a project tree.
type Kind string

const (
	Make  Kind = "make"
	CMake Kind = "cmake"
	Meson Kind = "meson"
)

// Mode selects optimization flags and the build directory name.
type Mode string

const (
	Debug   Mode = "debug"
	Release Mode = "release"
)

var (
	ErrNoBuildSystem = errors.New("could not detect the build system")
	ErrUnsupported   = errors.New("cmake support is not implemented")
	ErrAborted       = errors.New("aborted by user")
)

// detectInDir checks a single directory for build-system marker files, in
// precedence order: CMakeLists.txt, then Makefile/makefile, then meson.build.
func detectInDir(dir string) (Kind, bool, error) {
	markers := []struct {
		name string
		kind Kind
	}{
		{"CMakeLists.txt", CMake},
		{"Makefile", Make},
		{"makefile", Make},
		{"meson.build", Meson},
	}
	for _, m := range markers {
		_, err := os.Stat(filepath.Join(dir, m.name))
		if err == nil {
			return m.kind, true, nil
		}
		if !os.IsNotExist(err) {
			return "", false, err
		}
	}
	return "", false, nil
}

// Detect walks upward from startDir, nearest directory first, until it finds
// a build-system marker. It returns the detected kind and the directory that
// contained the marker (the project root). Ascent stops at the first
// directory with any marker; reaching the filesystem root without one yields
// ErrNoBuildSystem.
func Detect(startDir string) (Kind, string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", "", err
	}

	for {
		kind, ok, err := detectInDir(dir)
		if err != nil {
			return "", "", err
		}
		if ok {
			msg.Trace("using %s project in %s", kind, dir)
			return kind, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", ErrNoBuildSystem
		}
		dir = parent
	}
}

// BuildDirName returns the mode-specific hidden directory that incremental
// build systems place their state in, relative to the project root. It is a
// pure function of the mode: the same mode always maps to the same name.
func BuildDirName(mode Mode) string {
	if mode == Release {
		return ".tap-release"
	}
	return ".tap-debug"
}
