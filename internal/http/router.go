package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Hasitha-J/tea-management/internal/http/catalog"
	"github.com/Hasitha-J/tea-management/internal/http/collector"
	"github.com/Hasitha-J/tea-management/internal/http/expense"
	"github.com/Hasitha-J/tea-management/internal/http/field"
	"github.com/Hasitha-J/tea-management/internal/http/harvest"
	"github.com/Hasitha-J/tea-management/internal/http/importcsv"
	"github.com/Hasitha-J/tea-management/internal/http/report"
)

func New(
	fieldsV1 *field.Handler,
	catalogV1 *catalog.Handler,
	harvestsV1 *harvest.Handler,
	expensesV1 *expense.Handler,
	collectorsV1 *collector.Handler,
	reportsV1 *report.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/fields", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			fieldsV1.Routes(r)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			catalogV1.Routes(r)
		})

		r.Route("/harvests", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			harvestsV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expensesV1.Routes(r)
		})

		r.Route("/collectors", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			collectorsV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/import", importV1.Routes)
	})

	return router
}
