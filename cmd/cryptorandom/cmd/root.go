package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when cryptorandom is invoked without any
// subcommand.
var RootCmd = &cobra.Command{
	Use:   "cryptorandom",
	Short: "Deterministic, auditable random draws for risk-limiting audits",
	Long: `cryptorandom generates random samples, allocations, and permutations
from a counter-mode SHA-256 PRNG whose entire output stream is a pure
function of a base seed and a counter, so any draw can be reproduced
by anyone given the same seed.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once
// by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cryptorandom: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&planFile, "plan", "", "audit plan YAML file (overrides --seed/--population/--method flags)")
	RootCmd.PersistentFlags().StringVar(&seedFlag, "seed", "", "base seed (decimal integer or string)")
	RootCmd.PersistentFlags().IntVar(&populationFlag, "population", 0, "population size")
	RootCmd.PersistentFlags().StringVar(&methodFlag, "method", "fisher_yates", "sampling method")
}

var (
	planFile       string
	seedFlag       string
	populationFlag int
	methodFlag     string
)
