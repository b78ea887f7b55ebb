package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DoyleJ11/lol-cooldown-tracker/internal/champion"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/cooldown"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/engine"
)

func newChampionCmd() *cobra.Command {
	var (
		haste   float64
		level   int
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "champion <id>",
		Short: "Show a champion's ability cooldowns",
		Long: `Show the base and haste-adjusted cooldown of each ability.

With --level, only that rank is shown (clamped to the ability's maximum).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if haste < 0 {
				return engine.ErrInvalidHaste
			}

			src := champion.NewFileSource(dataDir, zap.NewNop())
			c, err := src.Champion(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("champion %s: %w", args[0], err)
			}

			title := color.New(color.Bold).SprintFunc()
			dim := color.New(color.FgHiBlack).SprintFunc()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", title(c.Name), dim(c.Title))
			if c.Passive.Name != "" {
				fmt.Fprintf(out, "%s %s\n", dim("Passive:"), c.Passive.Name)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SLOT\tABILITY\tRANK\tBASE\tCOOLDOWN")
			for i, sp := range c.Spells {
				if i >= 4 {
					break
				}
				slot := engine.SlotOrder[i]
				for _, rank := range ranks(len(sp.Cooldowns), engine.MaxLevel(slot), level) {
					base, actual := cooldown.AbilityCooldown(sp.Cooldowns, rank, haste)
					fmt.Fprintf(w, "%s\t%s\t%d\t%gs\t%s\n", slot, sp.Name, rank, base, cooldown.FormatTime(actual))
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().Float64Var(&haste, "haste", 0, "ability haste")
	cmd.Flags().IntVar(&level, "level", 0, "only show this rank")
	cmd.Flags().StringVar(&dataDir, "data", "data", "champion data directory")
	return cmd
}

// ranks lists the 1-based ranks to print: all known ones, or just the
// requested rank clamped to 1..max.
func ranks(known, top, want int) []int {
	top = min(known, top)
	if top < 1 {
		return nil
	}
	if want > 0 {
		return []int{min(want, top)}
	}
	out := make([]int, top)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
