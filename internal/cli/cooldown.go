package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/DoyleJ11/lol-cooldown-tracker/internal/cooldown"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/engine"
)

func newCooldownCmd() *cobra.Command {
	var haste float64

	cmd := &cobra.Command{
		Use:   "cooldown <base-seconds>",
		Short: "Apply haste to a base cooldown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := strconv.ParseFloat(args[0], 64)
			if err != nil || base < 0 || math.IsNaN(base) || math.IsInf(base, 0) {
				return fmt.Errorf("invalid base cooldown %q", args[0])
			}
			if haste < 0 || math.IsNaN(haste) || math.IsInf(haste, 0) {
				return engine.ErrInvalidHaste
			}

			actual := cooldown.EffectiveCooldown(base, haste)
			bold := color.New(color.Bold).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %.2fs (%s) at %g haste\n",
				bold("Cooldown:"), actual, cooldown.FormatTime(actual), haste)
			return nil
		},
	}
	cmd.Flags().Float64Var(&haste, "haste", 0, "ability or summoner haste")
	return cmd
}
