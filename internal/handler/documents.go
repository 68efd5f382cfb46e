package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/set-night/healthdash/internal/domain"
	"github.com/set-night/healthdash/internal/extract"
	"github.com/set-night/healthdash/internal/middleware"
)

// multipartOverhead is the slack allowed on top of the file size for the
// multipart envelope.
const multipartOverhead = 1 << 20

func (h *Handler) ListDocuments(c *gin.Context) {
	docs, err := h.documents.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *Handler) DocumentSummary(c *gin.Context) {
	summary, err := h.documents.Summary(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UploadDocument accepts a multipart form with a single "file" field.
// The extension is checked here, before anything is stored.
func (h *Handler) UploadDocument(c *gin.Context) {
	limit := h.cfg.MaxUploadBytes()
	tooLarge := domain.BadInput("File too large (max %d MB)", h.cfg.MaxUploadMB)

	if c.Request.ContentLength > limit+multipartOverhead {
		h.writeError(c, tooLarge)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)

	fh, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(c, tooLarge)
			return
		}
		h.writeError(c, domain.BadInput("File is required"))
		return
	}

	if !extract.Allowed(fh.Filename) {
		h.writeError(c, domain.ErrFileTypeNotAllowed)
		return
	}
	if fh.Size > limit {
		h.writeError(c, tooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.writeError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.writeError(c, fmt.Errorf("read upload: %w", err))
		return
	}

	doc, err := h.documents.Upload(c.Request.Context(), middleware.UserID(c), domain.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *Handler) DeleteDocument(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.documents.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
