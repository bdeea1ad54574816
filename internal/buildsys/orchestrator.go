package buildsys

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dccsillag/tap/internal/msg"
	"github.com/dccsillag/tap/internal/proc"
)

// Orchestrator translates tap subcommands into invocations of the governing
// build system. Exactly one Kind governs an invocation; the build directory
// it manages for Meson is derived from the mode and created at most once.
type Orchestrator struct {
	Root string
	Kind Kind
	Mode Mode
	Jobs int

	runner  func(proc.Command) error
	confirm func(format string, a ...any) bool
}

func New(root string, kind Kind, mode Mode, jobs int) *Orchestrator {
	return &Orchestrator{
		Root:    root,
		Kind:    kind,
		Mode:    mode,
		Jobs:    jobs,
		runner:  proc.Command.Run,
		confirm: askForConfirmation,
	}
}

func (o *Orchestrator) buildDir() string {
	return filepath.Join(o.Root, BuildDirName(o.Mode))
}

// Build compiles the project with the governing build system.
func (o *Orchestrator) Build() error {
	if err := o.build(); err != nil {
		return fmt.Errorf("while building: %w", err)
	}
	return nil
}

func (o *Orchestrator) build() error {
	switch o.Kind {
	case Make:
		args := []string{"-j", strconv.Itoa(o.Jobs)}
		if o.Mode == Release {
			args = append(args, "CFLAGS=-O3")
		}
		return o.runner(proc.New("make", args...).InDir(o.Root))
	case Meson:
		if err := o.mesonSetup(); err != nil {
			return err
		}
		return o.runner(proc.New("meson", "compile", "-C", o.buildDir(), "-j", strconv.Itoa(o.Jobs)).InDir(o.Root))
	case CMake:
		return ErrUnsupported
	}
	return fmt.Errorf("unknown build system %q", o.Kind)
}

// mesonSetup runs `meson setup` once per build directory. A failed setup must
// not leave partial state behind: if the directory did not exist before this
// invocation, it is removed again before the error is propagated. A build
// directory that already exists is reused as-is and is never touched on
// failure.
func (o *Orchestrator) mesonSetup() error {
	dir := o.buildDir()
	if _, err := os.Stat(dir); err == nil {
		return nil // setup already done in an earlier invocation
	} else if !os.IsNotExist(err) {
		return err
	}

	err := o.runner(proc.New("meson", "setup", "--buildtype", string(o.Mode), dir).InDir(o.Root))
	if err != nil {
		if _, statErr := os.Stat(dir); statErr == nil {
			if rmErr := os.RemoveAll(dir); rmErr != nil {
				msg.Warn("could not remove partial build directory %s: %v", dir, rmErr)
			}
		}
		return err
	}
	return nil
}

// Run builds the project, then executes the named binary with the given
// arguments. The binary never runs if the build failed.
func (o *Orchestrator) Run(executable string, args []string) error {
	if err := o.Build(); err != nil {
		return err
	}

	path := executable
	if o.Kind == Meson {
		resolved, err := o.findMesonExecutable(executable)
		if err != nil {
			return err
		}
		path = resolved
	}

	return o.runner(proc.New(path, args...).InDir(o.Root))
}

// findMesonExecutable locates a built executable under the build directory.
// Meson mirrors the source layout below the build directory, so a bare name
// may live in a subdirectory; fall back to a recursive search in that case.
func (o *Orchestrator) findMesonExecutable(name string) (string, error) {
	direct := filepath.Join(o.buildDir(), name)
	if strings.ContainsRune(name, os.PathSeparator) {
		return direct, nil // an explicit path is taken as given
	}
	if _, err := os.Stat(direct); err == nil {
		return direct, nil
	}

	matches, err := doublestar.Glob(os.DirFS(o.buildDir()), "**/"+name, doublestar.WithFilesOnly())
	if err != nil {
		return "", err
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no executable named %q in %s", name, o.buildDir())
	case 1:
		return filepath.Join(o.buildDir(), matches[0]), nil
	}
	return "", fmt.Errorf("ambiguous executable name %q in %s: matches %s", name, o.buildDir(), strings.Join(matches, ", "))
}

// Clean removes build artifacts through the governing build system.
func (o *Orchestrator) Clean() error {
	if err := o.clean(); err != nil {
		return fmt.Errorf("while cleaning: %w", err)
	}
	return nil
}

func (o *Orchestrator) clean() error {
	switch o.Kind {
	case Make:
		return o.runner(proc.New("make", "clean").InDir(o.Root))
	case Meson:
		return o.runner(proc.New("meson", "compile", "-C", o.buildDir(), "--clean").InDir(o.Root))
	case CMake:
		return ErrUnsupported
	}
	return fmt.Errorf("unknown build system %q", o.Kind)
}

// Install builds the project, resolves the install prefix and installs the
// artifacts under it. Installing a debug build asks for confirmation first;
// declining aborts with ErrAborted before any install step runs.
func (o *Orchestrator) Install(explicitPrefix string) error {
	if err := o.Build(); err != nil {
		return err
	}

	prefix, err := o.resolvePrefix(explicitPrefix)
	if err != nil {
		return err
	}

	if o.Mode == Debug {
		msg.Warn("about to install a debug build; release is the recommended mode for installed binaries")
		if !o.confirm("install a debug build to %s?", prefix) {
			return ErrAborted
		}
	}

	if err := o.install(prefix); err != nil {
		return fmt.Errorf("while installing: %w", err)
	}
	return nil
}

func (o *Orchestrator) install(prefix string) error {
	switch o.Kind {
	case Make:
		return o.runner(proc.New("make", "install", "PREFIX="+prefix).InDir(o.Root))
	case Meson:
		if err := o.runner(proc.New("meson", "configure", "-D", "prefix="+prefix, o.buildDir()).InDir(o.Root)); err != nil {
			return err
		}
		return o.runner(proc.New("meson", "install", "-C", o.buildDir()).InDir(o.Root))
	case CMake:
		return ErrUnsupported
	}
	return fmt.Errorf("unknown build system %q", o.Kind)
}
