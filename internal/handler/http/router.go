package http

import (
	"log/slog"
	"os"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/user"
	"github.com/dycrane/crane-safety-backend-go/internal/handler/http/middleware"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	siteHandler SiteHandler,
	craneHandler CraneHandler,
	assignmentHandler AssignmentHandler,
	attendanceHandler AttendanceHandler,
	documentHandler DocumentHandler,
	requestHandler RequestHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "crane-safety"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/sites", func(r chi.Router) {
				r.Get("/", siteHandler.List)
				r.Get("/{siteID}", siteHandler.Get)
				r.Get("/{siteID}/assignments", assignmentHandler.ListCraneAssignments)

				// Safety manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleSafetyManager))
					r.Post("/", siteHandler.Create)
					r.Post("/{siteID}/complete", siteHandler.Complete)
				})

				// Manufacturer only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleManufacturer))
					r.Post("/{siteID}/approve", siteHandler.Approve)
					r.Post("/{siteID}/reject", siteHandler.Reject)
				})
			})

			r.Route("/cranes", func(r chi.Router) {
				r.Get("/", craneHandler.List)
				r.Get("/{craneID}", craneHandler.Get)
			})

			r.Route("/crane-models", func(r chi.Router) {
				r.Get("/", craneHandler.ListModels)
				r.Get("/{modelID}", craneHandler.GetModel)
			})

			r.Get("/owners", craneHandler.ListOwners)

			r.Route("/assignments", func(r chi.Router) {
				r.Get("/{assignmentID}/drivers", assignmentHandler.ListDriverAssignments)
				r.Get("/{assignmentID}/attendance", attendanceHandler.ListByAssignment)

				// Safety manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleSafetyManager))
					r.Post("/cranes", assignmentHandler.AssignCrane)
					r.Post("/drivers", assignmentHandler.AssignDriver)
					r.Post("/cranes/{assignmentID}/release", assignmentHandler.ReleaseCrane)
					r.Post("/drivers/{assignmentID}/release", assignmentHandler.ReleaseDriver)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				// Driver only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleDriver))
					r.Post("/", attendanceHandler.Record)
					r.Post("/check-out", attendanceHandler.CheckOut)
				})
			})

			r.Route("/document-requests", func(r chi.Router) {
				r.Get("/{requestID}/items", documentHandler.ListItems)

				// Safety manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleSafetyManager))
					r.Post("/", documentHandler.CreateRequest)
					r.Post("/items/{itemID}/review", documentHandler.ReviewItem)
				})

				// Driver only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleDriver))
					r.Get("/my", documentHandler.ListMyRequests)
					r.Post("/{requestID}/items", documentHandler.SubmitItem)
				})
			})

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", requestHandler.Create)
				r.Get("/{requestID}", requestHandler.Get)

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleOwner))
					r.Get("/", requestHandler.ListForOwner)
					r.Post("/{requestID}/respond", requestHandler.Respond)
				})
			})
		})
	})

	return r
}
