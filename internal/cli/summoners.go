package cli

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/DoyleJ11/lol-cooldown-tracker/internal/cooldown"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/engine"
)

func newSummonersCmd() *cobra.Command {
	var haste float64

	cmd := &cobra.Command{
		Use:   "summoners",
		Short: "List summoner spells with haste-adjusted cooldowns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if haste < 0 || math.IsNaN(haste) || math.IsInf(haste, 0) {
				return engine.ErrInvalidHaste
			}

			var table bytes.Buffer
			w := tabwriter.NewWriter(&table, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SPELL\tKEY\tBASE\tCOOLDOWN")
			for _, sp := range cooldown.SummonerSpells() {
				actual := cooldown.EffectiveCooldown(sp.Cooldown, haste)
				fmt.Fprintf(w, "%s\t%s\t%gs\t%s\n", sp.DisplayName, sp.Key, sp.Cooldown, cooldown.FormatTime(actual))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			// Color after layout so escape bytes do not count toward column widths.
			header, rows, _ := strings.Cut(table.String(), "\n")
			bold := color.New(color.FgCyan, color.Bold).SprintFunc()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s", bold(header), rows)
			return err
		},
	}
	cmd.Flags().Float64Var(&haste, "haste", 0, "summoner spell haste")
	return cmd
}
