package http

import (
	"net/http"

	"rate-normalizer/domain"
	"rate-normalizer/logger"
	"rate-normalizer/service"
)

type RateHandler struct {
	service *service.RateService
	log     logger.Logger
}

func NewRateHandler(service *service.RateService, log logger.Logger) *RateHandler {
	return &RateHandler{service: service, log: log}
}

// NormalizeRecord handles POST /rates/normalize with a single rate record.
func (h *RateHandler) NormalizeRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !requireJSON(w, r) {
		return
	}

	var record domain.RateRecord
	if err := decodeJSON(w, r, &record); err != nil || record == nil {
		h.log.Debug("error decoding request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.NormalizeRecord(record)
	if err != nil {
		h.log.Warn("error normalizing record", "error", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}

// NormalizeBatch handles POST /rates/normalize-batch with an array of records.
// Rejected records do not fail the request; they are listed in the response.
func (h *RateHandler) NormalizeBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !requireJSON(w, r) {
		return
	}

	var records []domain.RateRecord
	if err := decodeJSON(w, r, &records); err != nil {
		h.log.Debug("error decoding request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, h.log, http.StatusOK, h.service.NormalizeBatch(records))
}

// Quarantine handles GET /rates/quarantine.
func (h *RateHandler) Quarantine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]any{"rejected": h.service.Quarantined()})
}
