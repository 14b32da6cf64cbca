package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var depCmd = &cobra.Command{
	Use:   "dep",
	Short: "Manage dependency edges",
	Long:  `Commands for adding, removing, and listing weighted dependency edges.`,
}

var depAddCmd = &cobra.Command{
	Use:   "add <from> <to> <duration>",
	Short: "Add a dependency edge",
	Long: `Add a weighted edge from one activity to another.

Both endpoints are registered implicitly if they do not exist. Adding an
edge that already exists overwrites its duration.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		duration, err := parseDuration(args[2])
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		result, err := c.AddEdge(context.Background(), args[0], args[1], duration)
		if err != nil {
			handleError(err)
		}

		if result.Overwrote {
			printSuccess(os.Stdout, fmt.Sprintf("Updated edge %s -> %s (duration %s)",
				result.From, result.To, formatNum(result.Duration)), jsonOutput)
			return
		}
		printSuccess(os.Stdout, fmt.Sprintf("Added edge %s -> %s (duration %s)",
			result.From, result.To, formatNum(result.Duration)), jsonOutput)
	},
}

var depRemoveCmd = &cobra.Command{
	Use:   "remove <from> <to>",
	Short: "Remove a dependency edge",
	Long:  `Remove the edge between two activities. The activities themselves stay.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		if err := c.RemoveEdge(context.Background(), args[0], args[1]); err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, fmt.Sprintf("Removed edge %s -> %s", args[0], args[1]), jsonOutput)
	},
}

var depListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dependency edges",
	Long:  `List every edge in the project network.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		edges, err := c.ListEdges(context.Background())
		if err != nil {
			handleError(err)
		}

		printEdges(os.Stdout, edges, jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(depCmd)

	depCmd.AddCommand(depAddCmd)
	depCmd.AddCommand(depRemoveCmd)
	depCmd.AddCommand(depListCmd)
}
