// tap clean
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dccsillag/tap/internal/msg"
)

func doClean(cmd *cobra.Command, args []string) {
	o, _ := setup(cmd)
	if err := o.Clean(); err != nil {
		msg.Fatal("%v", err)
	}
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build artifacts",
	Args:  cobra.NoArgs,
	Run:   doClean,
}

func init() {
	// tap clean subcommand
	rootCmd.AddCommand(cleanCmd)
}
