package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statlab/cryptorandom/prng"
)

var stateCounter uint64

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the generator's repr after advancing it to a given counter",
	Long: `state seeds a generator from --seed, jumps it ahead to --counter, and
prints its repr — the same (seed, counter, randbits_remaining) triple
an auditor can hand to a second generator to resume a draw exactly
where this one left off.`,
	RunE: runState,
}

func init() {
	stateCmd.Flags().Uint64Var(&stateCounter, "counter", 0, "counter to jump ahead to before printing state")
	RootCmd.AddCommand(stateCmd)
}

func runState(cmd *cobra.Command, args []string) error {
	if seedFlag == "" {
		return fmt.Errorf("--seed is required")
	}
	p := prng.New(seedFromString(seedFlag))
	p.JumpAhead(stateCounter)
	fmt.Fprintln(cmd.OutOrStdout(), p.String())
	return nil
}
