package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/statlab/cryptorandom/sample"
)

var allocateGroups string

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Partition a population into disjoint groups",
	RunE:  runAllocate,
}

func init() {
	allocateCmd.Flags().StringVar(&allocateGroups, "groups", "", "comma-separated group sizes, e.g. 10,10,5")
	RootCmd.AddCommand(allocateCmd)
}

func runAllocate(cmd *cobra.Command, args []string) error {
	run, err := resolveRun()
	if err != nil {
		return err
	}
	sizes := run.groupSizes
	if allocateGroups != "" {
		sizes, err = parseGroupSizes(allocateGroups)
		if err != nil {
			return err
		}
	}
	if len(sizes) == 0 {
		return fmt.Errorf("--groups or a plan's groups: is required")
	}

	src := newSource(run.seed)
	pop := sample.FromSize(run.population)
	results, err := sample.RandomAllocation(pop, sample.AllocationOptions{
		Method:     run.method,
		GroupSizes: sizes,
	}, src)
	if err != nil {
		return fmt.Errorf("allocate: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run: %s\n", uuid.New())
	for i, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "group %d (%d items): %s\n", i, len(r.Indices), formatIndices(r.Indices))
	}
	return nil
}

func parseGroupSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid group size %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}
