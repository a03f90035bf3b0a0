package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/statlab/cryptorandom/sample"
)

var drawK int

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a random sample from a population",
	RunE:  runDraw,
}

func init() {
	drawCmd.Flags().IntVar(&drawK, "k", 0, "sample size")
	RootCmd.AddCommand(drawCmd)
}

func runDraw(cmd *cobra.Command, args []string) error {
	run, err := resolveRun()
	if err != nil {
		return err
	}
	if drawK <= 0 {
		return fmt.Errorf("--k must be positive")
	}

	runID := uuid.New()
	start := time.Now()

	src := newSource(run.seed)
	pop := sample.FromSize(run.population)
	result, err := sample.RandomSample(pop, drawK, sample.SampleOptions{
		Method:  run.method,
		Replace: run.replace,
		Weights: run.weights,
	}, src)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	elapsed := time.Since(start)
	fmt.Fprintf(cmd.OutOrStdout(), "run: %s\n", runID)
	fmt.Fprintf(cmd.OutOrStdout(), "drew %s indices from a population of %s in %s\n",
		humanize.Comma(int64(len(result.Indices))), humanize.Comma(int64(run.population)), elapsed)
	fmt.Fprintln(cmd.OutOrStdout(), formatIndices(result.Indices))
	return nil
}
