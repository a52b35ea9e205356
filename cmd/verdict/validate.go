package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/verdict"
	"github.com/aretw0/verdict/internal/validator"
	"github.com/aretw0/verdict/pkg/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a policy and its compiled graph for consistency",
	Long: `Compiles the policy and crawls the resulting graph, reporting missing
answer edges, cycles or unreachable terminals.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Graph is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addInputFlags(validateCmd)
}

func runValidate(cmd *cobra.Command) error {
	var policy domain.Policy
	var err error

	policy, err = policyFromFlags(cmd)
	if err != nil {
		return fmt.Errorf("failed to read policy: %w", err)
	}

	g, err := verdict.Compile(policy, verdict.WithLogger(loggerFromFlags(cmd)))
	if err != nil {
		return fmt.Errorf("failed to compile policy: %w", err)
	}

	return validator.ValidateGraph(g)
}
