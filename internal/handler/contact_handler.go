package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/repository"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/service"
)

const maxContactBody = 64 << 10

// ContactHandler handles contact form submission and admin listing.
type ContactHandler struct {
	contactService service.ContactService
	clientKey      KeyFunc
}

// NewContactHandler creates a ContactHandler. A nil keyFunc keys clients by
// their connecting address.
func NewContactHandler(contactService service.ContactService, keyFunc KeyFunc) *ContactHandler {
	if keyFunc == nil {
		keyFunc = RemoteAddrKey
	}
	return &ContactHandler{contactService: contactService, clientKey: keyFunc}
}

type submitResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in model.ContactInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	c, err := h.contactService.Submit(r.Context(), h.clientKey(r), in)
	if err != nil {
		var rl *service.RateLimitError
		var inv *service.InvalidSubmissionError
		switch {
		case errors.As(err, &rl):
			w.Header().Set("Retry-After", strconv.Itoa(rl.RetryAfterSeconds))
			writeError(w, http.StatusTooManyRequests, service.ReasonRateLimited)
		case errors.As(err, &inv) && inv.Reason == service.ReasonHoneypot:
			writeError(w, http.StatusBadRequest, "invalid_submission")
		case errors.As(err, &inv):
			writeError(w, http.StatusBadRequest, inv.Reason)
		default:
			writeError(w, http.StatusInternalServerError, "submit_failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{OK: true, ID: c.ID})
}

// List handles GET /api/contact (admin).
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

type setHandledRequest struct {
	Handled *bool `json:"handled"`
}

// SetHandled handles PATCH /api/contact/{id} (admin).
func (h *ContactHandler) SetHandled(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !validID(id) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	var req setHandledRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Handled == nil {
		writeError(w, http.StatusBadRequest, "handled_required")
		return
	}

	if err := h.contactService.SetHandled(r.Context(), id, *req.Handled); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
