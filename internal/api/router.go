package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/planline/planline/internal/api/handler"
	"github.com/planline/planline/internal/api/middleware"
	"github.com/planline/planline/internal/store"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(manager *store.Manager) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AgentID)

	// Initialize handlers
	systemHandler := handler.NewSystemHandler(manager)
	activityHandler := handler.NewActivityHandler()
	edgeHandler := handler.NewEdgeHandler()
	essentialHandler := handler.NewEssentialHandler()
	analysisHandler := handler.NewAnalysisHandler()
	auditHandler := handler.NewAuditHandler()

	// System routes (no project context needed)
	r.Get("/v1/health", systemHandler.Health)
	r.Get("/v1/projects", systemHandler.ListProjects)

	// Project-scoped routes
	r.Route("/v1/projects/{project}", func(r chi.Router) {
		r.Use(middleware.ProjectContext(manager))

		// Activity CRUD
		r.Get("/activities", activityHandler.ListActivities)
		r.Post("/activities", activityHandler.CreateActivity)
		r.Get("/activities/{name}", activityHandler.GetActivity)
		r.Delete("/activities/{name}", activityHandler.DeleteActivity)
		r.Get("/activities/{name}/successors", activityHandler.ListSuccessors)

		// Dependency edges
		r.Get("/edges", edgeHandler.ListEdges)
		r.Post("/activities/{name}/edges", edgeHandler.AddEdge)
		r.Delete("/activities/{name}/edges/{to}", edgeHandler.RemoveEdge)

		// Essential constraints
		r.Get("/activities/{name}/essentials", essentialHandler.ListEssentials)
		r.Post("/activities/{name}/essentials", essentialHandler.DeclareEssential)
		r.Delete("/activities/{name}/essentials/{required}", essentialHandler.RevokeEssential)

		// Analysis
		r.Get("/validate", analysisHandler.Validate)
		r.Get("/isolated", analysisHandler.ListIsolated)
		r.Get("/cycles", analysisHandler.ListCycles)
		r.Get("/paths", analysisHandler.ListPaths)
		r.Post("/solve", analysisHandler.Solve)

		// Audit
		r.Get("/activities/{name}/history", auditHandler.GetActivityHistory)
		r.Get("/audit", auditHandler.QueryAuditLog)
	})

	return r
}
