package handler

import "net/http"

// ProvidersHandler tells the admin login page which sign-in methods exist.
type ProvidersHandler struct {
	google bool
}

// NewProvidersHandler creates a ProvidersHandler. googleEnabled mirrors
// config.GoogleEnabled.
func NewProvidersHandler(googleEnabled bool) *ProvidersHandler {
	return &ProvidersHandler{google: googleEnabled}
}

type providersResponse struct {
	Providers []string `json:"providers"`
}

// Providers handles GET /api/auth/providers. Password login is always
// available and listed first.
func (h *ProvidersHandler) Providers(w http.ResponseWriter, r *http.Request) {
	providers := []string{"password"}
	if h.google {
		providers = append(providers, "google")
	}
	writeJSON(w, http.StatusOK, providersResponse{Providers: providers})
}
