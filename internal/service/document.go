package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/set-night/healthdash/internal/config"
	"github.com/set-night/healthdash/internal/domain"
	"github.com/set-night/healthdash/internal/extract"
	"github.com/set-night/healthdash/internal/repository/sqlc"
)

// ObjectStore holds the raw bytes of uploaded documents.
type ObjectStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) error
	PublicURL(path string) string
	ObjectPath(publicURL string) (string, bool)
	Remove(ctx context.Context, paths ...string) error
}

// DocumentService keeps stored files and their metadata rows in step.
// Neither upload nor delete is atomic: a crash between the two phases leaves
// an orphaned object (upload) or an orphaned object without a row (delete).
// The Sweeper reconciles the former.
type DocumentService struct {
	queries sqlc.Querier
	store   ObjectStore
	now     func() time.Time
}

func NewDocumentService(queries sqlc.Querier, store ObjectStore) *DocumentService {
	return &DocumentService{queries: queries, store: store, now: time.Now}
}

func (s *DocumentService) List(ctx context.Context, userID uuid.UUID) ([]domain.Document, error) {
	rows, err := s.queries.ListDocumentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch documents: %w", err)
	}
	docs := make([]domain.Document, len(rows))
	for i, r := range rows {
		docs[i] = rowToDocument(r)
	}
	return docs, nil
}

// Upload extracts text, stores the bytes and records the metadata row.
// The extension allow-list is enforced by the caller.
func (s *DocumentService) Upload(ctx context.Context, userID uuid.UUID, up domain.Upload) (*domain.Document, error) {
	name := filepath.Base(up.FileName)

	text, err := extract.Text(name, up.Data)
	if err != nil {
		return nil, err
	}

	contentType := up.ContentType
	if contentType == "" {
		contentType = config.DefaultFileType
	}

	now := s.now().UTC()
	path := objectPath(userID, name, now)

	// Phase 1: object storage.
	if err := s.store.Upload(ctx, path, contentType, up.Data); err != nil {
		return nil, fmt.Errorf("upload file to storage: %w", err)
	}
	url := s.store.PublicURL(path)

	// Phase 2: metadata row. A failure here orphans the stored object.
	row, err := s.queries.CreateDocument(ctx, sqlc.CreateDocumentParams{
		UserID:        userID,
		FileName:      name,
		FileUrl:       url,
		FileSize:      int64(len(up.Data)),
		FileType:      contentType,
		ExtractedText: &text,
		CreatedAt:     timeToPgTimestamptz(now),
	})
	if err != nil {
		slog.Error("document metadata insert failed, stored object orphaned",
			"error", err, "user_id", userID, "path", path)
		return nil, fmt.Errorf("save document metadata: %w", err)
	}

	doc := rowToDocument(row)
	slog.Info("document uploaded", "user_id", userID, "document_id", doc.ID, "size", doc.FileSize)
	return &doc, nil
}

// Delete removes the stored object best-effort, then the metadata row.
func (s *DocumentService) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	row, err := s.queries.GetDocumentForUser(ctx, sqlc.GetDocumentForUserParams{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrDocumentNotFound
		}
		return fmt.Errorf("fetch document: %w", err)
	}

	s.removeObjectBestEffort(ctx, row)

	n, err := s.queries.DeleteDocumentForUser(ctx, sqlc.DeleteDocumentForUserParams{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if n == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

// removeObjectBestEffort never fails the delete: storage errors are logged
// and the row is removed regardless.
func (s *DocumentService) removeObjectBestEffort(ctx context.Context, row sqlc.Document) {
	path, ok := s.store.ObjectPath(row.FileUrl)
	if !ok {
		slog.Warn("document url does not point into storage, skipping file removal",
			"document_id", row.ID, "file_url", row.FileUrl)
		return
	}
	if err := s.store.Remove(ctx, path); err != nil {
		slog.Error("error deleting file from storage", "error", err, "document_id", row.ID, "path", path)
	}
}

func (s *DocumentService) Summary(ctx context.Context, userID uuid.UUID) (*domain.DocumentSummary, error) {
	rows, err := s.queries.ListDocumentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch document summary: %w", err)
	}

	summary := &domain.DocumentSummary{
		TotalDocuments: len(rows),
		FileTypes:      make(map[string]int),
	}
	for _, r := range rows {
		summary.TotalSize += r.FileSize
		summary.FileTypes[r.FileType]++
	}
	return summary, nil
}

// objectPath namespaces by user and prefixes the name with the upload time.
func objectPath(userID uuid.UUID, name string, at time.Time) string {
	return fmt.Sprintf("%s/%s/%s_%s", config.DocumentsPrefix, userID, at.Format(config.UploadTimeLayout), name)
}
