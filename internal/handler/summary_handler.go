package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/suar-net/summaries/internal/model"
	"github.com/suar-net/summaries/internal/service"
)

// SummaryService is what the handler needs from the summarizer.
type SummaryService interface {
	CreateSummary(ctx context.Context, dto *model.DTOSummaryRequest) (*model.DTOSummaryResponse, error)
}

type SummaryHandler struct {
	service SummaryService
	logger  *log.Logger
}

func NewSummaryHandler(s SummaryService, l *log.Logger) *SummaryHandler {
	return &SummaryHandler{
		service: s,
		logger:  l,
	}
}

// Create handles POST /summaries.
func (h *SummaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto model.DTOSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	resp, err := h.service.CreateSummary(r.Context(), &dto)
	if err != nil {
		h.logger.Printf("ERROR: %v", err)

		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		respondWithError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	respondWithJson(w, http.StatusOK, resp)
}
