package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/verdict"
	"github.com/aretw0/verdict/internal/presentation/tui"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Compile a policy and export its decision graph",
	Long: `Compiles the policy's boolean logic and outputs the decision graph as a
Mermaid flowchart (default) or a JSON DAG (--dag). Without --file or
--data a built-in example policy is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		policy, err := policyFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error reading policy: %v\n", err)
			os.Exit(1)
		}

		g, err := verdict.Compile(policy, verdict.WithLogger(loggerFromFlags(cmd)))
		if err != nil {
			fmt.Printf("Error compiling policy: %v\n", err)
			os.Exit(1)
		}

		if dag, _ := cmd.Flags().GetBool("dag"); dag {
			raw, err := verdict.RenderDAG(g)
			if err != nil {
				fmt.Printf("Error rendering DAG: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(raw))
			return
		}

		output := verdict.RenderMermaid(g)

		pretty, _ := cmd.Flags().GetBool("pretty")
		if pretty && tui.Interactive() {
			if styled, err := tui.RenderDiagram(output); err == nil {
				fmt.Print(styled)
				return
			}
			// Fall back to plain output if the terminal renderer fails.
		}
		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addInputFlags(graphCmd)
	graphCmd.Flags().Bool("dag", false, "Output a JSON DAG instead of Mermaid")
	graphCmd.Flags().Bool("pretty", false, "Render the diagram with terminal styling when interactive")
}
