package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects on the server",
	Long:  `List every project the server knows about.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		projects, err := c.ListProjects(context.Background())
		if err != nil {
			handleError(err)
		}

		printProjects(os.Stdout, projects, jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}
