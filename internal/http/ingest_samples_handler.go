package http

import (
	"net/http"

	"opsmeter/internal/ingestors"
)

type ingestSamplesHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestSamplesHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestSamplesHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /samples requests.
func (h *ingestSamplesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestSamples(r.Context(), contentType(r), r.Body)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusAccepted, result)
}
