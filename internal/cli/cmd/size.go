package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/fontkeeper/internal/cli/styles"
)

var sizeCmd = &cobra.Command{
	Use:   "size [delta]",
	Short: "Show or change the font size delta",
	Long: `Shift every text size by a number of pixels, from -24 to +24.

Without an argument, print the current delta. Values are rounded to the
nearest pixel, halves upward, and clamped. Use -- before a negative value so it is not read as a flag.

Examples:
  fontkeeper size            # Show the current delta
  fontkeeper size 2          # Two pixels larger
  fontkeeper size -- -1.5    # One pixel smaller (rounded)
  fontkeeper size reset      # Back to the host sizes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSize,
}

var sizeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Return to the host font sizes",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		return app.ManageUC.ResetSize(app.Ctx())
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
	sizeCmd.AddCommand(sizeResetCmd)
}

func runSize(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		delta := app.ManageUC.Status(app.Ctx()).FontSizeDelta
		fmt.Println(app.Theme.DeltaBadge(delta))
		return nil
	}

	delta, err := parseDelta(args[0])
	if err != nil {
		return err
	}
	stored, err := app.ManageUC.SetSize(app.Ctx(), delta)
	if err != nil {
		return err
	}
	fmt.Println(app.Theme.SuccessStyle.Render(styles.IconResize + " Font size " + styles.FormatDelta(stored)))
	return nil
}

// parseDelta accepts signed numbers with an optional px suffix.
func parseDelta(arg string) (float64, error) {
	s := strings.TrimSuffix(strings.TrimSpace(strings.ToLower(arg)), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size delta %q: expected a number of pixels", arg)
	}
	return v, nil
}
