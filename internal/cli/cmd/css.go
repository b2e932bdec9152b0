package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/fontkeeper/internal/cli"
	"github.com/bnema/fontkeeper/internal/infrastructure/config"
	"github.com/bnema/fontkeeper/internal/logging"
)

var cssWatch bool

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the generated stylesheet",
	Long: `Print the stylesheet generated from the current settings. The same CSS
is written to the configured output file on every command.

With --watch, keep running and regenerate the stylesheet whenever
config.toml changes (for example the fallback font stack).`,
	Args: cobra.NoArgs,
	RunE: runCSS,
}

func init() {
	rootCmd.AddCommand(cssCmd)
	cssCmd.Flags().BoolVarP(&cssWatch, "watch", "w", false, "regenerate on config changes")
}

func runCSS(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if !cssWatch {
		css := app.Engine.Composer().CSS()
		if css == "" {
			fmt.Fprintln(os.Stderr, app.Theme.Subtle.Render("No active font and no size change: stylesheet is empty"))
			return nil
		}
		fmt.Print(css)
		return nil
	}
	return watchCSS(app)
}

func watchCSS(app *cli.App) error {
	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Manager.OnConfigChange(func(cfg *config.Config) {
		applyConfig(ctx, app, cfg)
	})
	if err := app.Manager.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	fmt.Println(app.Theme.Subtle.Render(fmt.Sprintf("Watching %s (Ctrl+C to stop)", app.Manager.ConfigFile())))
	<-ctx.Done()
	return nil
}

func applyConfig(ctx context.Context, app *cli.App, cfg *config.Config) {
	composer := app.Engine.Composer()
	composer.SetFallbackStack(cfg.Fallback.Stack)
	composer.Recompose(ctx)

	logging.FromContext(ctx).Info().Strs("fallback", cfg.Fallback.Stack).Msg("stylesheet regenerated after config change")
	fmt.Println(app.Theme.SuccessStyle.Render("Stylesheet updated: " + app.Document.Path()))
}
