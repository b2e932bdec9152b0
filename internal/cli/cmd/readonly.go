package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fontkeeper/internal/cli/styles"
)

var readonlyCmd = &cobra.Command{
	Use:       "readonly [on|off]",
	Short:     "Show or toggle read-only mode",
	Long:      `In read-only mode styles are still applied but import, activate, deactivate, remove and size are refused.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(_ *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			if err := app.Manager.SetReadOnly(args[0] == "on"); err != nil {
				return err
			}
		}

		if app.Manager.Get().ReadOnly {
			fmt.Println(app.Theme.WarningStyle.Render(styles.IconLock + " read-only"))
		} else {
			fmt.Println(app.Theme.SuccessStyle.Render(styles.IconCheck + " writable"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readonlyCmd)
}
