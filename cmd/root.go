// tap build, tap run, tap clean, tap install
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dccsillag/tap/internal/buildsys"
	"github.com/dccsillag/tap/internal/config"
	"github.com/dccsillag/tap/internal/msg"
)

var (
	flagBuildSystem EnumValue = NewEnumValue("", map[string]string{
		"make":  "GNU Make (Makefile)",
		"cmake": "CMake (CMakeLists.txt)",
		"meson": "Meson (meson.build)",
	})
	flagBuildMode EnumValue = NewEnumValue("debug", map[string]string{
		"debug":   "Unoptimized build (default)",
		"release": "Optimized build",
	})
	flagJobs int
)

var rootCmd = &cobra.Command{
	Use:   "tap",
	Short: "A thin wrapper around your build system",
	Long: `Tap detects the build system governing the current project tree (make,
cmake or meson) and drives it through a uniform set of subcommands.`,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the project",
	Args:  cobra.NoArgs,
	Run:   doBuild,
}

func doBuild(cmd *cobra.Command, args []string) {
	o, _ := setup(cmd)
	if err := o.Build(); err != nil {
		msg.Fatal("%v", err)
	}
}

// setup resolves the build system, project root and effective options for a
// subcommand invocation, and moves the process into the project root.
func setup(cmd *cobra.Command) (*buildsys.Orchestrator, *config.Config) {
	cwd, err := os.Getwd()
	if err != nil {
		msg.Fatal("could not get current directory: %v", err)
	}

	var kind buildsys.Kind
	root := cwd
	if v := flagBuildSystem.Value(); v != "" {
		kind = buildsys.Kind(v)
	} else {
		kind, root, err = buildsys.Detect(cwd)
		if err != nil {
			msg.Fatal("%v", err)
		}
	}

	cfg, err := config.Load(root)
	if err != nil {
		msg.Fatal("%v", err)
	}

	if flagBuildSystem.Value() == "" && cfg.Defaults.BuildSystem != "" {
		kind = buildsys.Kind(cfg.Defaults.BuildSystem)
	}

	mode := buildsys.Mode(flagBuildMode.Value())
	if !rootCmd.PersistentFlags().Changed("build-mode") && cfg.Defaults.BuildMode != "" {
		mode = buildsys.Mode(cfg.Defaults.BuildMode)
	}

	jobs := flagJobs
	if jobs <= 0 {
		jobs = cfg.Defaults.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	if root != cwd {
		msg.Trace("entering directory %s", root)
		if err := os.Chdir(root); err != nil {
			msg.Fatal("could not enter project root %s: %v", root, err)
		}
	}

	return buildsys.New(root, kind, mode, jobs), cfg
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.VarP(&flagBuildSystem, "build-system", "b", "Build system to use, one of "+flagBuildSystem.HelpString()+" (detected when omitted)")
	pf.VarP(&flagBuildMode, "build-mode", "m", "Build mode, one of "+flagBuildMode.HelpString())
	pf.IntVarP(&flagJobs, "jobs", "j", 0, "Number of parallel jobs (defaults to the number of CPUs)")
	rootCmd.RegisterFlagCompletionFunc("build-system", flagBuildSystem.CompletionFunc())
	rootCmd.RegisterFlagCompletionFunc("build-mode", flagBuildMode.CompletionFunc())

	// tap build subcommand
	rootCmd.AddCommand(buildCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
