package main

import (
	"context"
	"os"

	"github.com/planline/planline/pkg/planline"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <name>",
	Short: "Show activity history",
	Long: `Display the audit history for a specific activity.

History is kept even after the activity is removed from the network.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		entries, err := c.GetActivityHistory(context.Background(), args[0])
		if err != nil {
			handleError(err)
		}

		printHistory(os.Stdout, entries, jsonOutput)
	},
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the project audit log",
	Long: `Display recent changes across the whole project.

Entries can be filtered by action and agent, and paginated.`,
	Run: func(cmd *cobra.Command, args []string) {
		action, _ := cmd.Flags().GetString("action")
		agent, _ := cmd.Flags().GetString("agent")
		page, _ := cmd.Flags().GetInt("page")
		perPage, _ := cmd.Flags().GetInt("per-page")

		opts := []planline.AuditQueryOption{
			planline.WithPage(page),
			planline.WithPerPage(perPage),
		}
		if action != "" {
			opts = append(opts, planline.WithAction(action))
		}
		if agent != "" {
			opts = append(opts, planline.WithAgent(agent))
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		result, err := c.QueryAuditLog(context.Background(), opts...)
		if err != nil {
			handleError(err)
		}

		printAuditPage(os.Stdout, result, jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().String("action", "", "Filter by action")
	logCmd.Flags().String("agent", "", "Filter by agent identity")
	logCmd.Flags().Int("page", 1, "Page number")
	logCmd.Flags().Int("per-page", 50, "Entries per page")
}
