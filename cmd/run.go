// tap run <executable> [args...]
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dccsillag/tap/internal/msg"
)

func doRun(cmd *cobra.Command, args []string) {
	o, _ := setup(cmd)
	if err := o.Run(args[0], args[1:]); err != nil {
		msg.Fatal("%v", err)
	}
}

var runCmd = &cobra.Command{
	Use:   "run <executable> [args...]",
	Short: "Build the project, then run one of its executables",
	Long: `Build the project, then run the named executable. For meson projects the
executable is looked up inside the build directory; for make projects it is
taken as given. Everything after the executable name is passed through.`,
	Args: cobra.MinimumNArgs(1),
	Run:  doRun,
}

func init() {
	// tap run subcommand
	rootCmd.AddCommand(runCmd)
	// flags after the executable name belong to the program being run
	runCmd.Flags().SetInterspersed(false)
}
