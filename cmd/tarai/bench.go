package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/on-the-ground/tarai/internal/bench"
	"github.com/on-the-ground/tarai/internal/configkeys"
)

func newBenchCommand() *cobra.Command {
	var variants string
	cmd := &cobra.Command{
		Use:   "bench [flags] [--] X Y Z",
		Short: "Time repeated evaluations of tarai(X, Y, Z)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, z, err := parseTriple(args)
			if err != nil {
				return err
			}
			vs, err := parseVariants(variants)
			if err != nil {
				return err
			}
			ctx, end, err := setup(cmd, map[string]string{
				"iterations": configkeys.ConfigBenchIterations,
			})
			if err != nil {
				return err
			}
			defer end()

			results, err := bench.RunAll(ctx, vs, x, y, z)
			for _, res := range results {
				fmt.Fprintln(cmd.OutOrStdout(), res)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&variants, "variant", "all", `variant(s) to run, comma separated, or "all"`)
	cmd.Flags().Int("iterations", bench.DefaultIterations, "fresh top-level calls per variant")
	return cmd
}
