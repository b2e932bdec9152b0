package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fontkeeper/internal/cli/styles"
)

var uninstallYes bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove all fonts and settings",
	Long: `Remove every injected style, the font directory and the stored
settings. The configuration file is kept.

Use --yes to confirm.`,
	Args: cobra.NoArgs,
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
	uninstallCmd.Flags().BoolVarP(&uninstallYes, "yes", "y", false, "confirm removal")
}

func runUninstall(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	theme := app.Theme

	if !uninstallYes {
		fmt.Println(theme.WarningStyle.Render(styles.IconWarning + " This removes:"))
		fmt.Print(theme.RenderPaths([]styles.PathRow{
			{Label: "fonts", Path: app.FontStorageDir()},
			{Label: "settings", Path: app.Config.Database.Path + " (" + app.Config.Storage.SettingsKey + ")"},
			{Label: "styles", Path: app.Document.Path()},
		}))
		fmt.Println(theme.Subtle.Render("Run again with --yes to confirm."))
		return nil
	}

	if err := app.UninstallUC.Execute(app.Ctx()); err != nil {
		return err
	}
	fmt.Println(theme.SuccessStyle.Render(styles.IconTrash + " Fonts and settings removed"))
	return nil
}
