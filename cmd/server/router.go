package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/optiq-app/optiq-api/internal/api"
	apimiddleware "github.com/optiq-app/optiq-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)
	r.Use(apimiddleware.Metrics)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.profileStore,
		app.transactor,
		app.passwordHasher,
		app.passwordVerifier,
		app.sessionService,
		app.sessionLifetime(),
		app.logger,
	)
	perfilHandler := api.NewPerfilHandler(app.profileStore, app.logger)
	orcamentoHandler := api.NewOrcamentoHandler(app.orcamentoStore, app.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.sessionService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/cadastro", authHandler.Cadastro)
		r.Post("/login", authHandler.Login)

		// Logout checks the session itself so it can answer 401 on a
		// request that was never logged in.
		r.Post("/logout", authHandler.Logout)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/perfil", perfilHandler.Get)
			r.Put("/perfil", perfilHandler.Update)

			r.Post("/orcamentos", orcamentoHandler.Create)
			r.Get("/orcamentos", orcamentoHandler.List)
			r.Get("/orcamentos/{id}", orcamentoHandler.Get)
			r.Put("/orcamentos/{id}", orcamentoHandler.Update)
			r.Delete("/orcamentos/{id}", orcamentoHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
