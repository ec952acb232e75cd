package handler

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/repository"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/service"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/pkg/auth"
)

const oauthStateCookieName = "oauth_state"

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// SessionManager creates and deletes login sessions.
type SessionManager interface {
	CreateSession(ctx context.Context, userID string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// AuthHandler handles admin login, logout and the current-user endpoint.
type AuthHandler struct {
	authService  service.AuthService
	sessions     SessionManager
	userRepo     repository.UserRepository
	googleConfig *oauth2.Config
	frontendURL  string
	secure       bool
}

// AuthConfig configures AuthHandler.
type AuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	BackendURL         string
	FrontendURL        string
	SecureCookies      bool
}

// NewAuthHandler creates an AuthHandler. Google sign-in is disabled unless
// both client ID and secret are set.
func NewAuthHandler(authService service.AuthService, sessions SessionManager, userRepo repository.UserRepository, cfg AuthConfig) *AuthHandler {
	h := &AuthHandler{
		authService: authService,
		sessions:    sessions,
		userRepo:    userRepo,
		frontendURL: cfg.FrontendURL,
		secure:      cfg.SecureCookies,
	}
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		h.googleConfig = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  strings.TrimRight(cfg.BackendURL, "/") + "/api/auth/google/callback",
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		}
	}
	return h
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	OK   bool        `json:"ok"`
	User *model.User `json:"user"`
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 16<<10)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}
	if err != nil {
		slog.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login_failed")
		return
	}

	if !h.startSession(w, r, user.ID) {
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{OK: true, User: user})
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, userID string) bool {
	session, err := h.sessions.CreateSession(r.Context(), userID)
	if err != nil {
		slog.Error("create session failed", "error", err, "user_id", userID)
		return false
	}
	auth.SetSessionCookie(w, session.Token, session.ExpiresAt, h.secure)
	return true
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil && cookie.Value != "" {
		if err := h.sessions.DeleteSession(r.Context(), cookie.Value); err != nil {
			slog.Error("delete session failed", "error", err)
		}
	}
	auth.ClearSessionCookie(w, h.secure)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me handles GET /api/me (behind RequireAuth).
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.userRepo.FindByID(r.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err != nil {
		slog.Error("load current user failed", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// generateOAuthState returns a random state string for CSRF protection.
func generateOAuthState() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

func (h *AuthHandler) setStateCookie(w http.ResponseWriter, state string) {
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secure,
	})
}

func verifyOAuthState(r *http.Request) bool {
	cookie, err := r.Cookie(oauthStateCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	return cookie.Value == r.URL.Query().Get("state")
}

func clearStateCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
}

// GoogleLoginURL handles GET /api/auth/google/login and returns the consent URL.
func (h *AuthHandler) GoogleLoginURL(w http.ResponseWriter, r *http.Request) {
	if h.googleConfig == nil {
		writeError(w, http.StatusNotFound, "provider_disabled")
		return
	}
	state := generateOAuthState()
	h.setStateCookie(w, state)
	writeJSON(w, http.StatusOK, map[string]string{"url": h.googleConfig.AuthCodeURL(state)})
}

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// GoogleCallback handles GET /api/auth/google/callback.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.googleConfig == nil {
		writeError(w, http.StatusNotFound, "provider_disabled")
		return
	}
	adminURL := h.frontendURL + "/admin"
	if !verifyOAuthState(r) {
		clearStateCookie(w)
		http.Redirect(w, r, adminURL+"?error=invalid_state", http.StatusFound)
		return
	}
	clearStateCookie(w)

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, adminURL+"?error=no_code", http.StatusFound)
		return
	}

	token, err := h.googleConfig.Exchange(r.Context(), code)
	if err != nil {
		slog.Warn("google token exchange failed", "error", err)
		http.Redirect(w, r, adminURL+"?error=exchange_failed", http.StatusFound)
		return
	}

	resp, err := h.googleConfig.Client(r.Context(), token).Get(googleUserInfoURL)
	if err != nil {
		http.Redirect(w, r, adminURL+"?error=userinfo_failed", http.StatusFound)
		return
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || !info.VerifiedEmail {
		http.Redirect(w, r, adminURL+"?error=userinfo_failed", http.StatusFound)
		return
	}

	user, err := h.authService.LoginWithGoogle(r.Context(), &service.GoogleUserInfo{
		Sub:   info.ID,
		Email: info.Email,
		Name:  info.Name,
	})
	if err != nil {
		http.Redirect(w, r, adminURL+"?error=not_authorized", http.StatusFound)
		return
	}
	if !h.startSession(w, r, user.ID) {
		http.Redirect(w, r, adminURL+"?error=session_failed", http.StatusFound)
		return
	}
	http.Redirect(w, r, adminURL, http.StatusFound)
}
