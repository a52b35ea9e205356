package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "verdict",
	Short: "Verdict compiles boolean policies into decision flowcharts",
	Long: `Verdict takes a set of yes/no questions plus a boolean expression over
them and compiles a decision graph: the minimal sequence of questions
that settles the outcome, rendered as a Mermaid diagram or a JSON DAG.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}
