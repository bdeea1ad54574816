// tap install [--prefix <path>]
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dccsillag/tap/internal/msg"
)

var flagPrefix string

func doInstall(cmd *cobra.Command, args []string) {
	o, cfg := setup(cmd)

	prefix := flagPrefix
	if prefix == "" {
		prefix = cfg.Install.Prefix
	}

	if err := o.Install(prefix); err != nil {
		msg.Fatal("%v", err)
	}
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Build the project, then install it",
	Long: `Build the project, then install it under a prefix. The prefix is --prefix
if given, the [install] prefix from tap.toml if present, /usr/local when
running as root, and ~/.local otherwise.`,
	Args: cobra.NoArgs,
	Run:  doInstall,
}

func init() {
	// tap install subcommand
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().StringVar(&flagPrefix, "prefix", "", "Install under this prefix instead of the default")
}
