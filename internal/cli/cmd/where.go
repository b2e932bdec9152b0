package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fontkeeper/internal/cli"
	"github.com/bnema/fontkeeper/internal/cli/styles"
	"github.com/bnema/fontkeeper/internal/domain/entity"
)

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where fontkeeper keeps its files",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		rows := []styles.PathRow{
			{Label: "config", Path: app.Manager.ConfigFile()},
			{Label: "database", Path: app.Config.Database.Path},
			{Label: "fonts", Path: app.FontStorageDir(), Detail: fontDirSize(app)},
			{Label: "stylesheet", Path: app.Document.Path()},
		}
		if app.Config.Logging.EnableFileLog {
			rows = append(rows, styles.PathRow{Label: "logs", Path: app.Config.Logging.LogDir})
		}

		fmt.Print(app.Theme.RenderPaths(rows))
		return nil
	},
}

func fontDirSize(a *cli.App) string {
	size, err := a.Storage.Size(a.Ctx(), a.Config.Storage.FontDir)
	if err != nil {
		return ""
	}
	return entity.HumanFileSize(size)
}

func init() {
	rootCmd.AddCommand(whereCmd)
}
