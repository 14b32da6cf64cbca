package main

import (
	"context"
	"fmt"
	"os"

	"github.com/planline/planline/pkg/planline"
	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Manage activities",
	Long:  `Commands for adding, listing, inspecting, and removing activities.`,
}

var activityAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an activity",
	Long: `Add an activity to the network.

Successors can be declared inline with repeated --to flags, each paired with
a --duration. Successors that do not exist yet are registered implicitly.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		label, _ := cmd.Flags().GetString("label")
		tos, _ := cmd.Flags().GetStringSlice("to")
		durations, _ := cmd.Flags().GetFloat64Slice("duration")

		if len(tos) != len(durations) {
			handleError(fmt.Errorf("each --to needs a matching --duration (%d vs %d)", len(tos), len(durations)))
		}

		opts := []planline.CreateActivityOption{}
		if label != "" {
			opts = append(opts, planline.WithLabel(label))
		}
		for i, to := range tos {
			opts = append(opts, planline.WithSuccessor(to, durations[i]))
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		activity, err := c.CreateActivity(context.Background(), args[0], opts...)
		if err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, fmt.Sprintf("Added activity '%s'", activity.Name), jsonOutput)
	},
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List activities",
	Long:  `List every activity in the project network.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		activities, err := c.ListActivities(context.Background())
		if err != nil {
			handleError(err)
		}

		printActivityList(os.Stdout, activities, jsonOutput)
	},
}

var activityShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show an activity",
	Long:  `Display an activity and its outgoing edges.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		detail, err := c.GetActivity(context.Background(), args[0])
		if err != nil {
			handleError(err)
		}

		printActivity(os.Stdout, detail, jsonOutput)
	},
}

var activityRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an activity",
	Long:  `Remove an activity and every edge pointing at it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		if err := c.DeleteActivity(context.Background(), args[0]); err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, fmt.Sprintf("Removed activity '%s'", args[0]), jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(activityCmd)

	activityCmd.AddCommand(activityAddCmd)
	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityShowCmd)
	activityCmd.AddCommand(activityRemoveCmd)

	activityAddCmd.Flags().String("label", "", "Human-readable label")
	activityAddCmd.Flags().StringSlice("to", nil, "Successor activity (repeatable)")
	activityAddCmd.Flags().Float64Slice("duration", nil, "Duration of the matching --to edge (repeatable)")
}
