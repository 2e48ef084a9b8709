package main

import (
	"net/http"

	"github.com/campuskit/leave-tracker/docs"
	"github.com/go-chi/chi/v5"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (app *application) configureSwagger() {
	docs.SwaggerInfo.Title = "Leave & OD Tracker"
	docs.SwaggerInfo.Description = "Web API - Leave & OD Tracker"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmtHTTPAddr("localhost", app.config.httpPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}
}

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)

	mux.Get("/api/v1/status", app.handleStatus)
	mux.Get("/api/v1/departments", app.handleListDepartments)

	mux.Post("/api/v1/auth/login", app.handleLogin)

	mux.Group(func(mux chi.Router) {
		mux.Use(app.authenticate)

		mux.Post("/api/v1/auth/logout", app.handleLogout)
		mux.Get("/api/v1/auth/session", app.handleCurrentSession)

		mux.Get("/api/v1/requests/{kind}", app.handleListRequests)
		mux.Get("/api/v1/requests/{kind}/stats", app.handleRequestStats)

		mux.With(app.requireStudent).Post("/api/v1/requests/{kind}", app.handleSubmitRequest)

		mux.With(app.requireHOD).Get("/api/v1/review/{kind}/pending", app.handleListPending)
		mux.With(app.requireHOD).Patch("/api/v1/review/{kind}/{requestId}", app.handleDecide)
	})

	mux.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(
			"http://"+fmtHTTPAddr("localhost", app.config.httpPort)+"/swagger/doc.json",
		), // The url pointing to API definition
	))

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	return parsedRoutes
}
