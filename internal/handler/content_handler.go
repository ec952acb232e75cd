package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/repository"
)

const maxContentBody = 1 << 20

// Prepare normalizes an item before it is stored and returns an error code
// when the item is invalid.
type Prepare[T any] func(item *T) string

// ContentHandler serves list/create/update/delete for one content table.
type ContentHandler[T any] struct {
	kind    string
	repo    repository.ContentRepository[T]
	prepare Prepare[T]
}

// NewContentHandler creates a ContentHandler. kind names the content in logs.
func NewContentHandler[T any](kind string, repo repository.ContentRepository[T], prepare Prepare[T]) *ContentHandler[T] {
	return &ContentHandler[T]{kind: kind, repo: repo, prepare: prepare}
}

// List handles GET on the collection.
func (h *ContentHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("list content failed", "error", err, "kind", h.kind)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if items == nil {
		items = []*T{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ContentHandler[T]) decode(w http.ResponseWriter, r *http.Request) (*T, bool) {
	item := new(T)
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContentBody)).Decode(item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return nil, false
	}
	if h.prepare != nil {
		if code := h.prepare(item); code != "" {
			writeError(w, http.StatusBadRequest, code)
			return nil, false
		}
	}
	return item, true
}

// Create handles POST on the collection.
func (h *ContentHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	item, ok := h.decode(w, r)
	if !ok {
		return
	}
	if err := h.repo.Create(r.Context(), item); err != nil {
		slog.Error("create content failed", "error", err, "kind", h.kind)
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /{id}.
func (h *ContentHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !validID(id) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	item, ok := h.decode(w, r)
	if !ok {
		return
	}
	err := h.repo.Update(r.Context(), id, item)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		slog.Error("update content failed", "error", err, "kind", h.kind)
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /{id}.
func (h *ContentHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !validID(id) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	err := h.repo.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		slog.Error("delete content failed", "error", err, "kind", h.kind)
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// PrepareProject trims the title and slug. A project needs a title.
func PrepareProject(p *model.Project) string {
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = strings.TrimSpace(p.Slug)
	if p.Title == "" {
		return "title_required"
	}
	return ""
}

// PrepareBlog trims the title and slug. A post needs a title.
func PrepareBlog(b *model.Blog) string {
	b.Title = strings.TrimSpace(b.Title)
	b.Slug = strings.TrimSpace(b.Slug)
	if b.Title == "" {
		return "title_required"
	}
	return ""
}

// PrepareReview defaults the author to "Anonymous". Ratings outside 1..5
// were already turned into nil while decoding.
func PrepareReview(rv *model.Review) string {
	rv.Author = strings.TrimSpace(rv.Author)
	if rv.Author == "" {
		rv.Author = "Anonymous"
	}
	rv.Text = strings.TrimSpace(rv.Text)
	if rv.Text == "" {
		return "text_required"
	}
	return ""
}

// PrepareService trims the name and slug. A service needs a name.
func PrepareService(s *model.Service) string {
	s.Name = strings.TrimSpace(s.Name)
	s.Slug = strings.TrimSpace(s.Slug)
	if s.Name == "" {
		return "name_required"
	}
	return ""
}

// PrepareSkill requires a non-blank name.
func PrepareSkill(s *model.Skill) string {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return "name_required"
	}
	return ""
}

// PrepareTeamMember requires a non-blank name.
func PrepareTeamMember(m *model.TeamMember) string {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return "name_required"
	}
	return ""
}
