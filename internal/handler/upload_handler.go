package handler

import (
	"log/slog"
	"net/http"
	"path"

	"github.com/google/uuid"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/storage"
)

const maxUploadSize = 5 << 20 // 5 MB

var allowedContentTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

// UploadHandler stores images used by site content.
type UploadHandler struct {
	storage storage.Storage
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{storage: store}
}

// Upload handles POST /api/uploads (admin). The multipart field is "file".
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+(1<<20))
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "file_too_large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file_required")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusBadRequest, "file_too_large")
		return
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[ct]
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_content_type")
		return
	}

	key := path.Join("images", uuid.NewString()+ext)
	url, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		slog.Error("upload failed", "error", err, "key", key)
		writeError(w, http.StatusInternalServerError, "upload_failed")
		return
	}

	slog.Info("file uploaded", "key", key, "size", header.Size)
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
