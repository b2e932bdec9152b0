package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fontkeeper/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(buildInfo.String())
		fmt.Println(build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
