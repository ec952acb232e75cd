package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/service"
)

const maxSettingsBody = 64 << 10

// SettingsHandler serves the site settings document.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles GET /api/settings. Returns {} when nothing is stored.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "settings_unavailable")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Put handles PUT /api/settings (admin). The body replaces the whole
// document; fields left out are removed.
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSettingsBody)).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if raw == nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	settings, err := h.settingsService.Update(r.Context(), raw)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
