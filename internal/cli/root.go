// Package cli implements cdcalc, an offline calculator over cooldown data.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package globals.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cdcalc",
		Short: "League of Legends cooldown calculator",
		Long: `cdcalc computes haste-adjusted cooldowns for abilities and summoner spells.

Champion data is read from a Data Dragon style directory (see --data).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SuggestionsMinimumDistance = 2

	root.AddCommand(newCooldownCmd(), newSummonersCmd(), newChampionCmd())
	return root
}

func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		PrintError(err)
		os.Exit(1)
	}
}

// PrintError prints the error in a user-friendly format
func PrintError(err error) {
	if err == nil {
		return
	}
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(os.Stderr, "%s %s\n", red("Error:"), err.Error())
}
