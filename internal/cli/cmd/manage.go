package cmd

import (
	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate <id|family>",
	Short: "Use an installed font",
	Long: `Make an installed font the active font. The font is looked up by id
first, then by family name.

Examples:
  fontkeeper activate Inter
  fontkeeper activate "Fira Code"`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		_, err = app.ManageUC.Activate(app.Ctx(), args[0])
		return err
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Restore the host default font",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		return app.ManageUC.Deactivate(app.Ctx())
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove <id|family>",
	Aliases: []string{"rm"},
	Short:   "Delete an installed font",
	Long: `Delete an installed font and its stored file. Removing the active font
restores the host default.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		_, err = app.ManageUC.Remove(app.Ctx(), args[0])
		return err
	},
}

func init() {
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(deactivateCmd)
	rootCmd.AddCommand(removeCmd)
}
