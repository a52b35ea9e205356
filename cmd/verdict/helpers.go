package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/verdict/internal/cli"
	"github.com/aretw0/verdict/internal/logging"
	"github.com/aretw0/verdict/pkg/domain"
)

// policyFromFlags resolves the input policy: --data takes precedence,
// then --file, then the built-in example.
func policyFromFlags(cmd *cobra.Command) (domain.Policy, error) {
	if data, _ := cmd.Flags().GetString("data"); data != "" {
		return cli.DecodePolicyData(data)
	}
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		return cli.LoadPolicyFile(file)
	}
	return cli.ExamplePolicy(), nil
}

func loggerFromFlags(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(logging.ParseLevel(level))
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Path to a YAML/JSON policy file")
	cmd.Flags().StringP("data", "d", "", `Inline JSON policy, e.g. '{"Q1": "Raining?", "logic": "Q1"}'`)
}
