package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/healthdash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocumentService(q *memQueries, store *fakeStore) *DocumentService {
	s := NewDocumentService(q, store)
	s.now = stepClock(clockStart, time.Second)
	return s
}

func txtUpload(name, body string) domain.Upload {
	return domain.Upload{FileName: name, ContentType: "text/plain", Data: []byte(body)}
}

func TestDocumentService_UploadText(t *testing.T) {
	ctx := context.Background()
	q, store := newMemQueries(), newFakeStore()
	svc := newTestDocumentService(q, store)
	user := uuid.New()

	doc, err := svc.Upload(ctx, user, txtUpload("notes.txt", "hello world"))
	require.NoError(t, err)

	wantPath := "documents/" + user.String() + "/20240305_143000_notes.txt"
	assert.Equal(t, user, doc.UserID)
	assert.Equal(t, "notes.txt", doc.FileName)
	assert.Equal(t, fakePublicPrefix+wantPath, doc.FileURL)
	assert.Equal(t, int64(11), doc.FileSize)
	assert.Equal(t, "text/plain", doc.FileType)
	require.NotNil(t, doc.ExtractedText)
	assert.Equal(t, "hello world", *doc.ExtractedText)
	assert.True(t, store.has(wantPath))
}

func TestDocumentService_UploadStripsDirectories(t *testing.T) {
	ctx := context.Background()
	q, store := newMemQueries(), newFakeStore()
	svc := newTestDocumentService(q, store)
	user := uuid.New()

	doc, err := svc.Upload(ctx, user, txtUpload("../../etc/passwd.txt", "x"))
	require.NoError(t, err)
	assert.Equal(t, "passwd.txt", doc.FileName)
	assert.True(t, store.has("documents/"+user.String()+"/20240305_143000_passwd.txt"))
}

func TestDocumentService_UploadDefaultsContentType(t *testing.T) {
	svc := newTestDocumentService(newMemQueries(), newFakeStore())

	doc, err := svc.Upload(context.Background(), uuid.New(), domain.Upload{FileName: "a.txt", Data: []byte("a")})
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", doc.FileType)
}

func TestDocumentService_UploadUnreadablePDF(t *testing.T) {
	q, store := newMemQueries(), newFakeStore()
	svc := newTestDocumentService(q, store)

	_, err := svc.Upload(context.Background(), uuid.New(), domain.Upload{
		FileName:    "scan.pdf",
		ContentType: "application/pdf",
		Data:        []byte("definitely not a pdf"),
	})
	require.ErrorIs(t, err, domain.ErrBadInput)
	assert.Zero(t, store.uploads)
	assert.Zero(t, q.calls["CreateDocument"])
}

func TestDocumentService_UploadStorageFailure(t *testing.T) {
	q, store := newMemQueries(), newFakeStore()
	store.uploadErr = errors.New("bucket not found")
	svc := newTestDocumentService(q, store)

	_, err := svc.Upload(context.Background(), uuid.New(), txtUpload("a.txt", "a"))
	require.ErrorIs(t, err, store.uploadErr)
	assert.Contains(t, err.Error(), "bucket not found")
	assert.NotErrorIs(t, err, domain.ErrBadInput)
	assert.Zero(t, q.calls["CreateDocument"])
}

func TestDocumentService_UploadInsertFailureLeavesObject(t *testing.T) {
	q, store := newMemQueries(), newFakeStore()
	q.fail["CreateDocument"] = errors.New("insert failed")
	svc := newTestDocumentService(q, store)
	user := uuid.New()

	_, err := svc.Upload(context.Background(), user, txtUpload("a.txt", "a"))
	require.Error(t, err)
	assert.True(t, store.has("documents/"+user.String()+"/20240305_143000_a.txt"))
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()
	q, store := newMemQueries(), newFakeStore()
	svc := newTestDocumentService(q, store)
	alice, bob := uuid.New(), uuid.New()

	doc, err := svc.Upload(ctx, alice, txtUpload("a.txt", "a"))
	require.NoError(t, err)
	path, _ := store.ObjectPath(doc.FileURL)

	err = svc.Delete(ctx, bob, doc.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Document not found or access denied", err.Error())
	assert.True(t, store.has(path))

	require.NoError(t, svc.Delete(ctx, alice, doc.ID))
	assert.False(t, store.has(path))
	assert.Equal(t, []string{path}, store.removed)

	list, err := svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, svc.Delete(ctx, alice, doc.ID), domain.ErrNotFound)
}

func TestDocumentService_DeleteIgnoresStorageFailure(t *testing.T) {
	ctx := context.Background()
	q, store := newMemQueries(), newFakeStore()
	svc := newTestDocumentService(q, store)
	user := uuid.New()

	doc, err := svc.Upload(ctx, user, txtUpload("a.txt", "a"))
	require.NoError(t, err)

	store.removeErr = errors.New("storage unavailable")
	require.NoError(t, svc.Delete(ctx, user, doc.ID))

	list, err := svc.List(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDocumentService_DeleteForeignURL(t *testing.T) {
	ctx := context.Background()
	q, store := newMemQueries(), newFakeStore()
	svc := newTestDocumentService(q, store)
	user := uuid.New()

	row, err := q.CreateDocument(ctx, sqlcDocument(user, "old.pdf", "https://elsewhere.test/old.pdf", 10, "application/pdf"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user, row.ID))
	assert.Empty(t, store.removed)
}

func TestDocumentService_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := newTestDocumentService(newMemQueries(), newFakeStore())
	user := uuid.New()

	for _, name := range []string{"first.txt", "second.txt"} {
		_, err := svc.Upload(ctx, user, txtUpload(name, name))
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second.txt", list[0].FileName)
	assert.Equal(t, "first.txt", list[1].FileName)
}

func TestDocumentService_Summary(t *testing.T) {
	ctx := context.Background()
	q := newMemQueries()
	svc := newTestDocumentService(q, newFakeStore())
	user := uuid.New()

	t.Run("no documents", func(t *testing.T) {
		summary, err := svc.Summary(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, &domain.DocumentSummary{TotalDocuments: 0, TotalSize: 0, FileTypes: map[string]int{}}, summary)
	})

	t.Run("totals and types", func(t *testing.T) {
		_, err := q.CreateDocument(ctx, sqlcDocument(user, "a.pdf", fakePublicPrefix+"a", 1000, "application/pdf"))
		require.NoError(t, err)
		_, err = q.CreateDocument(ctx, sqlcDocument(user, "b.pdf", fakePublicPrefix+"b", 500, "application/pdf"))
		require.NoError(t, err)
		_, err = q.CreateDocument(ctx, sqlcDocument(user, "c.txt", fakePublicPrefix+"c", 24, "text/plain"))
		require.NoError(t, err)
		_, err = q.CreateDocument(ctx, sqlcDocument(uuid.New(), "d.txt", fakePublicPrefix+"d", 7, "text/plain"))
		require.NoError(t, err)

		summary, err := svc.Summary(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.TotalDocuments)
		assert.Equal(t, int64(1524), summary.TotalSize)
		assert.Equal(t, map[string]int{"application/pdf": 2, "text/plain": 1}, summary.FileTypes)
	})
}
