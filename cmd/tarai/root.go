package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/on-the-ground/tarai/internal/binding"
	"github.com/on-the-ground/tarai/internal/configkeys"
	"github.com/on-the-ground/tarai/internal/log"
	"github.com/on-the-ground/tarai/tarai"
)

const envPrefix = "TARAI"

// NewCommand returns the root tarai command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tarai",
		Short: "Evaluate, benchmark and cross-check the Tarai function",
		Long: `Evaluate, benchmark and cross-check four evaluation strategies of the
Tarai (Takeuchi) function: naive, memo, lazy-closure and lazy-enum.

Every flag can also be set from the environment as TARAI_<FLAG>, with dashes
replaced by underscores (e.g. TARAI_LOG_LEVEL=debug).`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().Int("log-buffer", 64, "number of log entries buffered before callers block")

	cmd.AddCommand(
		newEvalCommand(),
		newBenchCommand(),
		newVerifyCommand(),
	)
	return cmd
}

// setup resolves flags and environment into a binding scope and installs the
// log handler. intFlags maps flag names to the config keys they feed.
func setup(cmd *cobra.Command, intFlags map[string]string) (context.Context, func(), error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, nil, err
	}

	level, err := log.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, nil, err
	}

	bindings := map[string]any{
		configkeys.ConfigLogBufferSize: v.GetInt("log-buffer"),
	}
	for flag, key := range intFlags {
		bindings[key] = v.GetInt(flag)
	}

	ctx := binding.WithBindings(cmd.Context(), bindings)
	ctx, endOfLog := log.WithZapLogHandler(
		ctx,
		binding.MustGet[int](ctx, configkeys.ConfigLogBufferSize),
		log.NewConsoleLogger(level),
	)
	return ctx, func() { endOfLog() }, nil
}

func parseTriple(args []string) (x, y, z int, err error) {
	var in [3]int
	for i, a := range args {
		if in[i], err = strconv.Atoi(a); err != nil {
			return 0, 0, 0, fmt.Errorf("argument %d: %w", i+1, err)
		}
	}
	return in[0], in[1], in[2], nil
}

// parseVariants accepts "all" or a comma-separated list of variant names.
func parseVariants(list string) ([]tarai.Variant, error) {
	if list == "all" {
		return tarai.Variants(), nil
	}
	var vs []tarai.Variant
	for _, name := range strings.Split(list, ",") {
		v, err := tarai.ParseVariant(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
