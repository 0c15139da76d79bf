package http

import (
	"net/http"
	"strings"

	"opsmeter/internal/models"
	"opsmeter/internal/queries"

	"github.com/go-chi/chi/v5"
)

// MeterListResponse is the body of GET /meters.
type MeterListResponse struct {
	Meters []*models.MeterSnapshot `json:"meters"`
}

type getMeterHandler struct {
	queryService queries.MeterQueryService
}

func NewGetMeterHandler(queryService queries.MeterQueryService) AppHttpHandler {
	return &getMeterHandler{queryService: queryService}
}

// Handle processes GET /meters/{name} requests.
func (h *getMeterHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	name := strings.TrimSpace(chi.URLParam(r, urlParamMeterName))
	snapshot, err := h.queryService.Get(r.Context(), name)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, snapshot)
}

type listMetersHandler struct {
	queryService queries.MeterQueryService
}

func NewListMetersHandler(queryService queries.MeterQueryService) AppHttpHandler {
	return &listMetersHandler{queryService: queryService}
}

// Handle processes GET /meters requests.
func (h *listMetersHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	snapshots, err := h.queryService.List(r.Context())
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, MeterListResponse{Meters: snapshots})
}
