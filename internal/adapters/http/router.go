// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
)

// Handlers groups the handlers served by NewRouter.
type Handlers struct {
	Teams       *handlers.TeamHandler
	Users       *handlers.UserHandler
	Tasks       *handlers.TaskHandler
	Attachments *handlers.AttachmentHandler
	Admin       *handlers.AdminHandler
	Health      *handlers.HealthHandler
}

// RouteOptions configures the per-route middleware of the API.
type RouteOptions struct {
	// Authenticate resolves the caller for every /api/v1 route.
	Authenticate func(http.Handler) http.Handler

	// RequestTimeout bounds JSON routes. Attachment transfers stream and
	// are bounded by the server's read and write timeouts instead. Zero
	// disables the per-request deadline.
	RequestTimeout time.Duration
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, opts RouteOptions, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("%w: no route for %s", domain.ErrNotFound, req.URL.Path))
	})

	// Health endpoints (outside /api/v1 prefix, unauthenticated).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		if opts.Authenticate != nil {
			r.Use(opts.Authenticate)
		}

		// Streaming routes.
		r.Get("/tasks/{id}/attachments", h.Attachments.ListAttachments)
		r.Post("/tasks/{id}/attachments", h.Attachments.UploadAttachment)
		r.Get("/attachments/{id}", h.Attachments.DownloadAttachment)

		r.Group(func(r chi.Router) {
			if opts.RequestTimeout > 0 {
				r.Use(middleware.Timeout(opts.RequestTimeout))
			}

			r.Get("/teams", h.Teams.ListTeams)
			r.Post("/teams", h.Teams.CreateTeam)
			r.Get("/teams/{id}", h.Teams.GetTeam)
			r.Patch("/teams/{id}", h.Teams.UpdateTeam)
			r.Delete("/teams/{id}", h.Teams.DeleteTeam)
			r.Put("/teams/{id}/leader", h.Teams.TransferLeadership)
			r.Post("/teams/{id}/members", h.Teams.AddMember)
			r.Delete("/teams/{id}/members/{userId}", h.Teams.RemoveMember)

			r.Get("/users", h.Users.ListUsers)
			r.Get("/users/eligible", h.Users.EligibleUsers)
			r.Get("/users/{id}", h.Users.GetUser)
			r.Post("/users/{id}/activate", h.Users.ActivateUser)
			r.Post("/users/{id}/deactivate", h.Users.DeactivateUser)
			r.Post("/users/{id}/promote", h.Users.PromoteUser)
			r.Post("/users/{id}/demote", h.Users.DemoteUser)

			r.Get("/tasks", h.Tasks.ListTasks)
			r.Post("/tasks", h.Tasks.CreateTask)
			r.Get("/tasks/{id}", h.Tasks.GetTask)
			r.Patch("/tasks/{id}", h.Tasks.UpdateTask)
			r.Delete("/tasks/{id}", h.Tasks.DeleteTask)
			r.Put("/tasks/{id}/status", h.Tasks.ChangeStatus)
			r.Post("/tasks/{id}/comments", h.Tasks.AddComment)

			r.Get("/admin/invariants", h.Admin.Audit)
			r.Post("/admin/reconcile", h.Admin.Reconcile)
		})
	})

	return r
}
