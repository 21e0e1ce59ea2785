package http

import (
	"fmt"
	"net/http"
	"strconv"

	"rate-normalizer/logger"
	"rate-normalizer/service"
)

type TermHandler struct {
	service *service.RateService
	log     logger.Logger
}

func NewTermHandler(service *service.RateService, log logger.Logger) *TermHandler {
	return &TermHandler{service: service, log: log}
}

// NormalizeTerm handles GET /terms/normalize?term=66.
func (h *TermHandler) NormalizeTerm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	term, err := queryInt(r, "term")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	info, err := h.service.TermInfo(r.Context(), term)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, h.log, http.StatusOK, info)
}

// NormalizeRange handles GET /terms/range?min=37&max=60.
func (h *TermHandler) NormalizeRange(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	termMin, err := queryInt(r, "min")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	termMax, err := queryInt(r, "max")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	termRange, err := h.service.NormalizeRange(termMin, termMax)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, h.log, http.StatusOK, termRange)
}

// StandardTerms handles GET /terms/standard.
func (h *TermHandler) StandardTerms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string][]int{"terms": service.StandardTerms()})
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("parámetro %q requerido", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parámetro %q inválido: %q", name, raw)
	}
	return v, nil
}
