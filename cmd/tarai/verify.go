package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/on-the-ground/tarai/internal/configkeys"
	"github.com/on-the-ground/tarai/internal/sweep"
)

func newVerifyCommand() *cobra.Command {
	var variants string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the variants agree on every triple of a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseVariants(variants)
			if err != nil {
				return err
			}
			ctx, end, err := setup(cmd, map[string]string{
				"min":        configkeys.ConfigSweepMin,
				"max":        configkeys.ConfigSweepMax,
				"workers":    configkeys.ConfigSweepNumWorkers,
				"buffer":     configkeys.ConfigSweepBufferSize,
				"naive-span": configkeys.ConfigSweepNaiveSpan,
			})
			if err != nil {
				return err
			}
			defer end()

			report, err := sweep.Run(ctx, vs)
			out := cmd.OutOrStdout()
			for _, m := range report.Mismatches {
				fmt.Fprintln(out, m.Error())
			}
			fmt.Fprintf(out, "checked %s triples, %s naive evaluations skipped, %d mismatches\n",
				humanize.Comma(int64(report.Checked)),
				humanize.Comma(int64(report.Skipped)),
				len(report.Mismatches),
			)
			return err
		},
	}
	cmd.Flags().StringVar(&variants, "variant", "all", `variant(s) to compare, comma separated, or "all"`)
	cmd.Flags().Int("min", sweep.DefaultMin, "smallest value of x, y and z")
	cmd.Flags().Int("max", sweep.DefaultMax, "largest value of x, y and z")
	cmd.Flags().Int("workers", sweep.DefaultNumWorkers, "number of workers")
	cmd.Flags().Int("buffer", sweep.DefaultBufferSize, "queue depth per worker")
	cmd.Flags().Int("naive-span", sweep.DefaultNaiveSpan, "largest x-y the naive variant is run on")
	return cmd
}
