package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the network",
	Long: `Check the network for cycles and isolated activities.

Cycles make the network invalid. Isolated activities are reported as a
warning and never removed automatically.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		report, err := c.Validate(context.Background())
		if err != nil {
			handleError(err)
		}

		printValidation(os.Stdout, report, jsonOutput)
		if !report.Valid {
			os.Exit(ExitInvalidNetwork)
		}
	},
}

var cyclesCmd = &cobra.Command{
	Use:   "cycles",
	Short: "List cycles",
	Long:  `List every distinct simple cycle in the network.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		cycles, err := c.Cycles(context.Background())
		if err != nil {
			handleError(err)
		}

		printCycles(os.Stdout, cycles, jsonOutput)
	},
}

var isolatedCmd = &cobra.Command{
	Use:   "isolated",
	Short: "List isolated activities",
	Long:  `List activities with no meaningful connection to the rest of the network.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		isolated, err := c.Isolated(context.Background())
		if err != nil {
			handleError(err)
		}

		printIsolated(os.Stdout, isolated, jsonOutput)
	},
}

var pathsCmd = &cobra.Command{
	Use:   "paths <from> <to>",
	Short: "Enumerate paths",
	Long:  `Enumerate every simple path between two activities with its total duration.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		paths, err := c.Paths(context.Background(), args[0], args[1])
		if err != nil {
			handleError(err)
		}

		printPaths(os.Stdout, paths, jsonOutput)
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve <start> <end>",
	Short: "Compute the critical path schedule",
	Long: `Run the critical path computation between the start and end activities.

Reports the project duration, the critical path, and the full timing table
(earliest/latest start and finish, slack) for every activity.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		solved, err := c.Solve(context.Background(), args[0], args[1])
		if err != nil {
			handleError(err)
		}

		printSolveResult(os.Stdout, solved, jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(cyclesCmd)
	rootCmd.AddCommand(isolatedCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(solveCmd)
}
