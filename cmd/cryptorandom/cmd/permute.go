package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/statlab/cryptorandom/sample"
)

var permuteCmd = &cobra.Command{
	Use:   "permute",
	Short: "Generate a uniformly random ordering of an entire population",
	RunE:  runPermute,
}

func init() {
	RootCmd.AddCommand(permuteCmd)
}

func runPermute(cmd *cobra.Command, args []string) error {
	run, err := resolveRun()
	if err != nil {
		return err
	}

	src := newSource(run.seed)
	pop := sample.FromSize(run.population)
	result, err := sample.RandomPermutation(pop, run.method, src)
	if err != nil {
		return fmt.Errorf("permute: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run: %s\n", uuid.New())
	fmt.Fprintln(cmd.OutOrStdout(), formatIndices(result.Indices))
	return nil
}
