package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nattawat/golinks/pkg/core/domain"
	"github.com/nattawat/golinks/pkg/ports"
)

type HTTPHandler struct {
	service ports.LinkService
	logger  *zap.Logger
}

func NewHTTPHandler(service ports.LinkService, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

// DeleteLinkRequest payload
type DeleteLinkRequest struct {
	Short string `json:"short"`
}

// List all links
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	links := h.service.ListLinks(r.Context())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(links)
}

// Create a link; an existing short key is overwritten
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var link domain.Link
	if err := json.NewDecoder(r.Body).Decode(&link); err != nil || link.Short == "" || link.URL == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.AddLink(r.Context(), link); err != nil {
		// Operator detail goes to the log only; the caller just learns the
		// save did not complete and should retry.
		h.logger.Error("failed to add link", zap.String("short", link.Short), zap.Error(err))
		http.Error(w, "failed to save link", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(link)
}

// Delete a link by short key
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Short == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveLink(r.Context(), req.Short); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "link not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to delete link", zap.String("short", req.Short), zap.Error(err))
		http.Error(w, "failed to delete link", http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Redirect to the target URL
func (h *HTTPHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	short := chi.URLParam(r, "short")

	url, err := h.service.GetLink(r.Context(), short)
	if err != nil {
		http.Error(w, "link not found", http.StatusNotFound)
		return
	}

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// Healthz is the unauthenticated liveness probe
func (h *HTTPHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
}
