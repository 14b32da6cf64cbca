package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/planline/planline/pkg/planline"
)

// printActivity prints a single activity with its outgoing edges
func printActivity(w io.Writer, detail *planline.ActivityDetail, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(detail)
		return
	}

	// Table format
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", detail.Activity.Name)
	if detail.Activity.Label != nil && *detail.Activity.Label != "" {
		fmt.Fprintf(tw, "Label:\t%s\n", *detail.Activity.Label)
	}
	fmt.Fprintf(tw, "Created:\t%s\n", detail.Activity.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(tw, "Updated:\t%s\n", detail.Activity.UpdatedAt.Format("2006-01-02 15:04:05"))
	tw.Flush()

	if len(detail.Successors) == 0 {
		fmt.Fprintln(w, "No successors")
		return
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "SUCCESSOR\tDURATION\n")
	fmt.Fprintf(tw, "---------\t--------\n")
	for _, edge := range detail.Successors {
		fmt.Fprintf(tw, "%s\t%s\n", edge.To, formatNum(edge.Duration))
	}
	tw.Flush()
}

// printActivityList prints the activities of the project
func printActivityList(w io.Writer, activities []planline.Activity, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(activities)
		return
	}

	if len(activities) == 0 {
		fmt.Fprintln(w, "No activities found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "NAME\tLABEL\tCREATED\n")
	fmt.Fprintf(tw, "----\t-----\t-------\n")
	for _, a := range activities {
		label := ""
		if a.Label != nil {
			label = truncate(*a.Label, 40)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Name, label, a.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	tw.Flush()
}

// printEdges prints dependency edges
func printEdges(w io.Writer, edges []planline.Edge, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(edges)
		return
	}

	if len(edges) == 0 {
		fmt.Fprintln(w, "No edges found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "FROM\tTO\tDURATION\n")
	fmt.Fprintf(tw, "----\t--\t--------\n")
	for _, e := range edges {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.From, e.To, formatNum(e.Duration))
	}
	tw.Flush()
}

// printEssentials prints essential constraints
func printEssentials(w io.Writer, constraints []planline.EssentialConstraint, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(constraints)
		return
	}

	if len(constraints) == 0 {
		fmt.Fprintln(w, "No essential constraints found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ACTIVITY\tREQUIRES\n")
	fmt.Fprintf(tw, "--------\t--------\n")
	for _, c := range constraints {
		fmt.Fprintf(tw, "%s\t%s\n", c.Activity, c.Required)
	}
	tw.Flush()
}

// printValidation prints a network validation report
func printValidation(w io.Writer, report *planline.ValidationReport, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(report)
		return
	}

	if report.Valid {
		fmt.Fprintln(w, "Network is valid")
	} else {
		fmt.Fprintln(w, "Network is invalid")
	}
	for _, cycle := range report.Cycles {
		fmt.Fprintf(w, "Cycle: %s\n", cycle)
	}
	if len(report.Isolated) > 0 {
		fmt.Fprintf(w, "Isolated activities: %s\n", strings.Join(report.Isolated, ", "))
	}
	if report.Warning != "" {
		fmt.Fprintf(w, "Warning: %s\n", report.Warning)
	}
}

// printCycles prints the simple cycles of the network
func printCycles(w io.Writer, cycles [][]string, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(cycles)
		return
	}

	if len(cycles) == 0 {
		fmt.Fprintln(w, "No cycles found")
		return
	}

	for _, cycle := range cycles {
		fmt.Fprintln(w, strings.Join(cycle, " -> "))
	}
}

// printIsolated prints isolated activity names
func printIsolated(w io.Writer, isolated []string, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(isolated)
		return
	}

	if len(isolated) == 0 {
		fmt.Fprintln(w, "No isolated activities")
		return
	}

	for _, name := range isolated {
		fmt.Fprintln(w, name)
	}
}

// printPaths prints enumerated paths with their total durations
func printPaths(w io.Writer, paths []planline.Path, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(paths)
		return
	}

	if len(paths) == 0 {
		fmt.Fprintln(w, "No paths found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "PATH\tDURATION\n")
	fmt.Fprintf(tw, "----\t--------\n")
	for _, p := range paths {
		fmt.Fprintf(tw, "%s\t%s\n", strings.Join(p.Activities, " -> "), formatNum(p.Duration))
	}
	tw.Flush()
}

// printSolveResult prints a full CPM schedule
func printSolveResult(w io.Writer, solved *planline.SolveResult, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(solved)
		return
	}

	result := solved.Result
	fmt.Fprintf(w, "Run: %s\n", solved.RunID)
	fmt.Fprintf(w, "Project duration: %s\n", formatNum(result.ProjectDuration))
	fmt.Fprintf(w, "Critical path: %s\n", strings.Join(result.CriticalPath, " -> "))
	if solved.Warning != "" {
		fmt.Fprintf(w, "Warning: %s\n", solved.Warning)
	}
	fmt.Fprintln(w)

	// Timings in topological order when available, sorted otherwise
	names := result.TopoOrder
	if len(names) == 0 {
		for name := range result.Timings {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ACTIVITY\tES\tEF\tLS\tLF\tSLACK\tCRITICAL\n")
	fmt.Fprintf(tw, "--------\t--\t--\t--\t--\t-----\t--------\n")
	for _, name := range names {
		rec, ok := result.Timings[name]
		if !ok {
			continue
		}
		critical := ""
		if rec.Critical {
			critical = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			name,
			formatNum(rec.EarliestStart),
			formatNum(rec.EarliestFinish),
			formatNum(rec.LatestStart),
			formatNum(rec.LatestFinish),
			formatNum(rec.Slack),
			critical)
	}
	tw.Flush()
}

// printHistory prints activity history/audit entries
func printHistory(w io.Writer, entries []planline.AuditEntry, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(entries)
		return
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No history found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "TIME\tACTIVITY\tACTION\tFIELD\tOLD\tNEW\tBY\n")
	fmt.Fprintf(tw, "----\t--------\t------\t-----\t---\t---\t--\n")
	for _, entry := range entries {
		field := ""
		if entry.Field != nil {
			field = *entry.Field
		}
		oldVal := ""
		if entry.OldValue != nil {
			oldVal = truncate(*entry.OldValue, 20)
		}
		newVal := ""
		if entry.NewValue != nil {
			newVal = truncate(*entry.NewValue, 20)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.ChangedAt.Format("2006-01-02 15:04:05"),
			entry.Activity,
			entry.Action,
			field,
			oldVal,
			newVal,
			truncate(entry.ChangedBy, 30))
	}
	tw.Flush()
}

// printAuditPage prints a page of the project audit log
func printAuditPage(w io.Writer, page *planline.AuditPage, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(page)
		return
	}

	printHistory(w, page.Data, false)

	if page.Pagination.TotalPages > 1 {
		fmt.Fprintf(w, "\nPage %d of %d (%d total entries)\n",
			page.Pagination.Page, page.Pagination.TotalPages, page.Pagination.Total)
	}
}

// printProjects prints the known project names
func printProjects(w io.Writer, projects []string, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(projects)
		return
	}

	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects found")
		return
	}

	for _, name := range projects {
		fmt.Fprintln(w, name)
	}
}

// printError prints an error message
func printError(w io.Writer, err error, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

// printSuccess prints a success message
func printSuccess(w io.Writer, message string, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{
			"message": message,
		})
		return
	}

	fmt.Fprintln(w, message)
}

// formatNum formats a duration or timing value without trailing zeros
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
