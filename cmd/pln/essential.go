package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var essentialCmd = &cobra.Command{
	Use:   "essential",
	Short: "Manage essential constraints",
	Long: `Commands for declaring, revoking, and listing essential constraints.

An essential constraint records that an activity cannot start before another
activity has finished, beyond what the raw edges encode. The solver raises
the constrained activity's earliest start accordingly.`,
}

var essentialAddCmd = &cobra.Command{
	Use:   "add <activity> <required>",
	Short: "Declare an essential constraint",
	Long:  `Declare that <activity> cannot start before <required> has finished.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		if err := c.DeclareEssential(context.Background(), args[0], args[1]); err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, fmt.Sprintf("Declared %s essential on %s", args[0], args[1]), jsonOutput)
	},
}

var essentialRemoveCmd = &cobra.Command{
	Use:   "remove <activity> <required>",
	Short: "Revoke an essential constraint",
	Long:  `Revoke a previously declared essential constraint.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		if err := c.RevokeEssential(context.Background(), args[0], args[1]); err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, fmt.Sprintf("Revoked essential constraint of %s on %s", args[0], args[1]), jsonOutput)
	},
}

var essentialListCmd = &cobra.Command{
	Use:   "list <activity>",
	Short: "List essential constraints",
	Long:  `List the essential requirements of one activity.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		constraints, err := c.ListEssentials(context.Background(), args[0])
		if err != nil {
			handleError(err)
		}

		printEssentials(os.Stdout, constraints, jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(essentialCmd)

	essentialCmd.AddCommand(essentialAddCmd)
	essentialCmd.AddCommand(essentialRemoveCmd)
	essentialCmd.AddCommand(essentialListCmd)
}
