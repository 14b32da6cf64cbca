// Package planline provides a Go SDK for interacting with the Planline
// scheduling server.
//
// Planline models a project as an activity network: activities joined by
// weighted dependency edges, analyzed with the Critical Path Method. This SDK
// allows Go applications to use Planline as a library dependency.
//
// # Getting Started
//
// First, ensure the Planline server is running. Then create a client:
//
//	client, err := planline.NewClient(
//	    planline.WithProject("bridge-build"),
//	    planline.WithAgentID("scheduler-bot"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Building the Network
//
// Create an activity, optionally with successor edges:
//
//	activity, err := client.CreateActivity(ctx, "excavate",
//	    planline.WithLabel("Excavate the site"),
//	    planline.WithSuccessor("pour", 3),
//	)
//
// Add a single dependency edge (re-adding the same pair overwrites the
// duration):
//
//	edge, err := client.AddEdge(ctx, "excavate", "pour", 3)
//
// Remove activities and edges:
//
//	err := client.DeleteActivity(ctx, "excavate")
//	err := client.RemoveEdge(ctx, "excavate", "pour")
//
// # Essential Constraints
//
// Declare that an activity cannot start before another has finished, beyond
// what the edges encode:
//
//	err := client.DeclareEssential(ctx, "paint", "inspect")
//	err := client.RevokeEssential(ctx, "paint", "inspect")
//
// # Analysis
//
// Check network integrity, enumerate paths, and solve:
//
//	report, err := client.Validate(ctx)
//	cycles, err := client.Cycles(ctx)
//	isolated, err := client.Isolated(ctx)
//	paths, err := client.Paths(ctx, "start", "end")
//	solved, err := client.Solve(ctx, "start", "end")
//	fmt.Println(solved.Result.ProjectDuration, solved.Result.CriticalPath)
//
// # Audit History
//
// Get the change history for an activity:
//
//	history, err := client.GetActivityHistory(ctx, "excavate")
//
// # Error Handling
//
// The SDK provides typed errors with helper functions:
//
//	solved, err := client.Solve(ctx, "start", "end")
//	if err != nil {
//	    if planline.IsUnknownActivity(err) {
//	        // An endpoint doesn't exist
//	    } else if planline.IsCyclicNetwork(err) {
//	        // The network has dependency cycles
//	    } else if planline.IsServerNotRunning(err) {
//	        // Server is not reachable
//	    }
//	}
//
// # Configuration Options
//
// Client options:
//
//	planline.WithProject(name)      // Required: project name
//	planline.WithAgentID(id)        // Required: agent ID for audit logging
//	planline.WithHost(host)         // Optional: server host (default: localhost)
//	planline.WithPort(port)         // Optional: server port (default: 7519)
//	planline.WithTimeout(duration)  // Optional: HTTP timeout (default: 30s)
package planline
