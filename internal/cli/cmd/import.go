package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bnema/fontkeeper/internal/cli"
)

var importVerbose bool

var importCmd = &cobra.Command{
	Use:   "import <file|dir>...",
	Short: "Import font files",
	Long: `Import one or more .ttf, .otf, .woff or .woff2 files.

Directories are scanned (not recursively) for font files. Each file is
checked by its signature, named after its file name and stored in the
font directory. A file that fails never stops the others.

The first font ever imported becomes the active font.

Examples:
  fontkeeper import Inter.ttf
  fontkeeper import ~/Downloads/fonts
  fontkeeper import -v *.woff2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "show the outcome of every file")
}

func runImport(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	sources, err := cli.CollectSources(afero.NewOsFs(), args)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		fmt.Println(app.Theme.Subtle.Render("No font files found"))
		return nil
	}

	out, err := app.ImportUC.Execute(app.Ctx(), sources)
	if err != nil {
		return err
	}

	if importVerbose {
		names := make([]string, len(out.Results))
		errs := make([]error, len(out.Results))
		for i, r := range out.Results {
			names[i] = r.FileName
			errs[i] = r.Err
		}
		fmt.Print(app.Theme.RenderImportSummary(names, errs))
	}

	if out.Imported == 0 && out.Failed > 0 {
		return fmt.Errorf("no font imported (%d failed)", out.Failed)
	}
	return nil
}
