package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/fontkeeper/internal/application/usecase"
	"github.com/bnema/fontkeeper/internal/cli/styles"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed fonts",
	Long: `List installed fonts in import order, marking the active one, followed
by the current size delta.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print the listing as JSON")
}

func runList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	status := app.ManageUC.Status(app.Ctx())
	if listJSON {
		return writeStatusJSON(os.Stdout, status)
	}

	fmt.Print(app.Theme.RenderFontList(fontRows(status), status.FontSizeDelta))
	return nil
}

func fontRows(status usecase.FontStatus) []styles.FontRow {
	rows := make([]styles.FontRow, 0, len(status.Fonts))
	for _, f := range status.Fonts {
		rows = append(rows, styles.FontRow{
			ID:          f.Record.ID,
			Name:        f.Record.Name,
			Family:      f.Record.Family,
			Ext:         f.Record.FileExt,
			Size:        f.HumanSize,
			InstalledAt: f.Record.InstalledAt,
			Active:      f.Active,
		})
	}
	return rows
}

type statusJSON struct {
	ActiveFont    string     `json:"activeFont"`
	FontSizeDelta int        `json:"fontSizeDelta"`
	Fonts         []fontJSON `json:"fonts"`
}

type fontJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Family      string `json:"family"`
	StoragePath string `json:"storagePath"`
	Format      string `json:"format"`
	Size        int64  `json:"size"`
	Active      bool   `json:"active"`
}

func writeStatusJSON(w io.Writer, status usecase.FontStatus) error {
	out := statusJSON{
		ActiveFont:    status.ActiveFont,
		FontSizeDelta: status.FontSizeDelta,
		Fonts:         make([]fontJSON, 0, len(status.Fonts)),
	}
	for _, f := range status.Fonts {
		out.Fonts = append(out.Fonts, fontJSON{
			ID:          f.Record.ID,
			Name:        f.Record.DisplayName(),
			Family:      f.Record.Family,
			StoragePath: f.Record.StoragePath,
			Format:      string(f.Record.Format()),
			Size:        f.Record.FileSize,
			Active:      f.Active,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
