package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fontkeeper/internal/infrastructure/config"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema describing config.toml. Editors with TOML schema
support can use it for completion and validation.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
