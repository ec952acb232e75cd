package handler

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// legalDocs maps the public document name to its Markdown file.
var legalDocs = map[string]string{
	"privacy": "privacy.md",
	"terms":   "terms.md",
}

// LegalHandler serves the site's privacy policy and terms as Markdown.
type LegalHandler struct {
	docsDir string
}

// NewLegalHandler reads documents from docsDir (LEGAL_DOCS_DIR).
func NewLegalHandler(docsDir string) *LegalHandler {
	return &LegalHandler{docsDir: docsDir}
}

// Legal handles GET /api/legal/{doc}. Only names in legalDocs are served, so
// the path value never reaches the filesystem.
func (h *LegalHandler) Legal(w http.ResponseWriter, r *http.Request) {
	name, ok := legalDocs[r.PathValue("doc")]
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	content, err := os.ReadFile(filepath.Join(h.docsDir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		slog.Error("read legal document failed", "error", err, "doc", name)
		writeError(w, http.StatusInternalServerError, "read_failed")
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
