package http

import (
	"net/http"

	"opsmeter/internal/ingestors"
	"opsmeter/internal/queries"
	"opsmeter/internal/shared/loggers"
	"opsmeter/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, queryService queries.MeterQueryService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	ingestSamplesHandler := NewIngestSamplesHandler(ingestionService)
	getMeterHandler := NewGetMeterHandler(queryService)
	listMetersHandler := NewListMetersHandler(queryService)

	router.Post("/samples", errorHandlingAdapter(ingestSamplesHandler))
	router.Get("/meters", errorHandlingAdapter(listMetersHandler))
	router.Get("/meters/{"+urlParamMeterName+"}", errorHandlingAdapter(getMeterHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
