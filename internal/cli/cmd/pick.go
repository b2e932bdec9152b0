package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/fontkeeper/internal/application/usecase"
	"github.com/bnema/fontkeeper/internal/cli/model"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick the active font and size interactively",
	Long: `Open an interactive picker listing the installed fonts.

Move with j/k, activate with enter, change the size with + and -, reset
it with 0 and delete a font by pressing x twice.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		// The picker reports outcomes itself; printed notifications would
		// tear the alternate screen.
		manager := usecase.NewManageFontsUseCase(app.Engine.Catalog(), nil, app.Mode)

		m := model.NewFontsModel(app.Ctx(), app.Theme, manager)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
}
