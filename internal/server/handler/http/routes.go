package http

import (
	"net/http"

	"github.com/imalykh/todolist/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the HTTP handler serving the todo API.
//
// Routes:
//
//	POST   /api/auth/signup   → authHandler.SignUp
//	POST   /api/auth/signin   → authHandler.SignIn
//	POST   /api/auth/signout  → authHandler.SignOut (bearer auth)
//	GET    /api/todos         → todoHandler.GetAll  (bearer auth)
//	POST   /api/todos         → todoHandler.Create  (bearer auth)
//	GET    /api/todos/{id}    → todoHandler.GetByID (bearer auth)
//	PUT    /api/todos/{id}    → todoHandler.Update  (bearer auth)
//	DELETE /api/todos/{id}    → todoHandler.Delete  (bearer auth)
//
// Middleware chain (applied in order):
//  1. AllowContentType("application/json") — rejects non-JSON request bodies
//  2. WithRequestLogging(logger)           — logs each request
//  3. BearerAuth (protected group only)    — validates the JWT, fails closed
func NewRouter(
	authHandler *AuthHandler,
	todoHandler *TodoHandler,
	jwtSecret []byte,
	jwtIssuer string,
	jwtAudience string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/signup", authHandler.SignUp)
		r.Post("/auth/signin", authHandler.SignIn)

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(jwtSecret, jwtIssuer, jwtAudience))

			r.Post("/auth/signout", authHandler.SignOut)

			r.Route("/todos", func(r chi.Router) {
				r.Get("/", todoHandler.GetAll)
				r.Post("/", todoHandler.Create)
				r.Get("/{id}", todoHandler.GetByID)
				r.Put("/{id}", todoHandler.Update)
				r.Delete("/{id}", todoHandler.Delete)
			})
		})
	})

	return r
}
