package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/on-the-ground/tarai/internal/log"
)

func newEvalCommand() *cobra.Command {
	var (
		variants string
		stats    bool
	)
	cmd := &cobra.Command{
		Use:   "eval [flags] [--] X Y Z",
		Short: "Evaluate tarai(X, Y, Z)",
		Long: `Evaluate tarai(X, Y, Z) with one or more variants.

Put "--" before the arguments when any of them is negative.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, z, err := parseTriple(args)
			if err != nil {
				return err
			}
			vs, err := parseVariants(variants)
			if err != nil {
				return err
			}
			ctx, end, err := setup(cmd, nil)
			if err != nil {
				return err
			}
			defer end()

			out := cmd.OutOrStdout()
			for _, v := range vs {
				val, st := v.Evaluate(x, y, z)
				log.LogEff(ctx, log.LogDebug, "evaluated", map[string]interface{}{
					"variant": v.String(),
					"input":   [3]int{x, y, z},
					"value":   val,
					"calls":   st.Calls,
				})
				if !stats {
					fmt.Fprintf(out, "%-12s %d\n", v, val)
					continue
				}
				fmt.Fprintf(out, "%-12s %d  calls=%s hits=%s forces=%s\n", v, val,
					humanize.Comma(int64(st.Calls)),
					humanize.Comma(int64(st.Hits)),
					humanize.Comma(int64(st.Forces)),
				)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variants, "variant", "all", `variant(s) to run, comma separated, or "all"`)
	cmd.Flags().BoolVar(&stats, "stats", false, "print call statistics")
	return cmd
}
