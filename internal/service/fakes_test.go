package service

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/set-night/healthdash/internal/repository/sqlc"
	"github.com/set-night/healthdash/internal/storage"
)

// Compile-time check that memQueries satisfies the generated interface.
var _ sqlc.Querier = (*memQueries)(nil)

// memQueries is an in-memory sqlc.Querier. Setting fail[method] makes that
// method return the error.
type memQueries struct {
	mu     sync.Mutex
	nextID int64
	vitals []sqlc.Vital
	docs   []sqlc.Document
	limits map[uuid.UUID]int32
	fail   map[string]error
	calls  map[string]int
}

func newMemQueries() *memQueries {
	return &memQueries{
		limits: make(map[uuid.UUID]int32),
		fail:   make(map[string]error),
		calls:  make(map[string]int),
	}
}

func (m *memQueries) hit(method string) error {
	m.calls[method]++
	return m.fail[method]
}

func (m *memQueries) id() int64 {
	m.nextID++
	return m.nextID
}

func newestFirst[T any](items []T, created func(T) time.Time, id func(T) int64) {
	slices.SortFunc(items, func(a, b T) int {
		if c := created(b).Compare(created(a)); c != 0 {
			return c
		}
		return cmp.Compare(id(b), id(a))
	})
}

func (m *memQueries) userVitals(userID uuid.UUID) []sqlc.Vital {
	var out []sqlc.Vital
	for _, v := range m.vitals {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	newestFirst(out, func(v sqlc.Vital) time.Time { return v.CreatedAt.Time }, func(v sqlc.Vital) int64 { return v.ID })
	return out
}

func (m *memQueries) userDocs(userID uuid.UUID) []sqlc.Document {
	var out []sqlc.Document
	for _, d := range m.docs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	newestFirst(out, func(d sqlc.Document) time.Time { return d.CreatedAt.Time }, func(d sqlc.Document) int64 { return d.ID })
	return out
}

func (m *memQueries) CheckAndIncrementRateLimit(ctx context.Context, userID uuid.UUID) (int32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("CheckAndIncrementRateLimit"); err != nil {
		return 0, err
	}
	m.limits[userID]++
	return m.limits[userID], nil
}

func (m *memQueries) CleanupRateLimits(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hit("CleanupRateLimits")
}

func (m *memQueries) CreateDocument(ctx context.Context, arg sqlc.CreateDocumentParams) (sqlc.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("CreateDocument"); err != nil {
		return sqlc.Document{}, err
	}
	d := sqlc.Document{
		ID:            m.id(),
		UserID:        arg.UserID,
		FileName:      arg.FileName,
		FileUrl:       arg.FileUrl,
		FileSize:      arg.FileSize,
		FileType:      arg.FileType,
		ExtractedText: arg.ExtractedText,
		CreatedAt:     arg.CreatedAt,
	}
	m.docs = append(m.docs, d)
	return d, nil
}

func (m *memQueries) CreateVitals(ctx context.Context, arg sqlc.CreateVitalsParams) (sqlc.Vital, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("CreateVitals"); err != nil {
		return sqlc.Vital{}, err
	}
	v := sqlc.Vital{
		ID:                     m.id(),
		UserID:                 arg.UserID,
		HeartRate:              arg.HeartRate,
		Temperature:            arg.Temperature,
		Spo2:                   arg.Spo2,
		BloodPressureSystolic:  arg.BloodPressureSystolic,
		BloodPressureDiastolic: arg.BloodPressureDiastolic,
		Notes:                  arg.Notes,
		CreatedAt:              arg.CreatedAt,
	}
	m.vitals = append(m.vitals, v)
	return v, nil
}

func (m *memQueries) DeleteDocumentForUser(ctx context.Context, arg sqlc.DeleteDocumentForUserParams) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("DeleteDocumentForUser"); err != nil {
		return 0, err
	}
	before := len(m.docs)
	m.docs = slices.DeleteFunc(m.docs, func(d sqlc.Document) bool {
		return d.ID == arg.ID && d.UserID == arg.UserID
	})
	return int64(before - len(m.docs)), nil
}

func (m *memQueries) DeleteVitalsForUser(ctx context.Context, arg sqlc.DeleteVitalsForUserParams) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("DeleteVitalsForUser"); err != nil {
		return 0, err
	}
	before := len(m.vitals)
	m.vitals = slices.DeleteFunc(m.vitals, func(v sqlc.Vital) bool {
		return v.ID == arg.ID && v.UserID == arg.UserID
	})
	return int64(before - len(m.vitals)), nil
}

func (m *memQueries) DocumentURLExists(ctx context.Context, fileUrl string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("DocumentURLExists"); err != nil {
		return false, err
	}
	return slices.ContainsFunc(m.docs, func(d sqlc.Document) bool { return d.FileUrl == fileUrl }), nil
}

func (m *memQueries) GetDocumentForUser(ctx context.Context, arg sqlc.GetDocumentForUserParams) (sqlc.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("GetDocumentForUser"); err != nil {
		return sqlc.Document{}, err
	}
	for _, d := range m.docs {
		if d.ID == arg.ID && d.UserID == arg.UserID {
			return d, nil
		}
	}
	return sqlc.Document{}, pgx.ErrNoRows
}

func (m *memQueries) ListDocumentTextsByUser(ctx context.Context, userID uuid.UUID) ([]sqlc.ListDocumentTextsByUserRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("ListDocumentTextsByUser"); err != nil {
		return nil, err
	}
	docs := m.userDocs(userID)
	slices.Reverse(docs)
	var out []sqlc.ListDocumentTextsByUserRow
	for _, d := range docs {
		out = append(out, sqlc.ListDocumentTextsByUserRow{FileName: d.FileName, ExtractedText: d.ExtractedText})
	}
	return out, nil
}

func (m *memQueries) ListDocumentsByUser(ctx context.Context, userID uuid.UUID) ([]sqlc.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("ListDocumentsByUser"); err != nil {
		return nil, err
	}
	return m.userDocs(userID), nil
}

func (m *memQueries) ListRecentVitalsByUser(ctx context.Context, arg sqlc.ListRecentVitalsByUserParams) ([]sqlc.Vital, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("ListRecentVitalsByUser"); err != nil {
		return nil, err
	}
	out := m.userVitals(arg.UserID)
	if len(out) > int(arg.Limit) {
		out = out[:arg.Limit]
	}
	return out, nil
}

func (m *memQueries) ListVitalsByUser(ctx context.Context, userID uuid.UUID) ([]sqlc.Vital, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hit("ListVitalsByUser"); err != nil {
		return nil, err
	}
	return m.userVitals(userID), nil
}

const fakePublicPrefix = "https://store.test/public/documents/"

type storedObject struct {
	contentType string
	data        []byte
	createdAt   time.Time
}

// fakeStore is an in-memory ObjectStore and SweepStore.
type fakeStore struct {
	mu        sync.Mutex
	objects   map[string]storedObject
	uploadErr error
	removeErr error
	uploads   int
	removed   []string
	now       func() time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string]storedObject), now: time.Now}
}

func (f *fakeStore) Upload(ctx context.Context, path, contentType string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.objects[path] = storedObject{contentType: contentType, data: data, createdAt: f.now()}
	return nil
}

func (f *fakeStore) PublicURL(path string) string {
	return fakePublicPrefix + path
}

func (f *fakeStore) ObjectPath(publicURL string) (string, bool) {
	path, ok := strings.CutPrefix(publicURL, fakePublicPrefix)
	return path, ok && path != ""
}

func (f *fakeStore) Remove(ctx context.Context, paths ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return f.removeErr
	}
	for _, p := range paths {
		delete(f.objects, p)
		f.removed = append(f.removed, p)
	}
	return nil
}

func (f *fakeStore) List(ctx context.Context, prefix string, limit, offset int) ([]storage.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seen := make(map[string]storage.Object)
	for path, obj := range f.objects {
		rest, ok := strings.CutPrefix(path, prefix+"/")
		if !ok {
			continue
		}
		if dir, _, nested := strings.Cut(rest, "/"); nested {
			seen[dir] = storage.Object{Name: dir}
			continue
		}
		id := "obj-" + rest
		seen[rest] = storage.Object{Name: rest, ID: &id, CreatedAt: obj.createdAt}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)

	var page []storage.Object
	for i := offset; i < len(names) && len(page) < limit; i++ {
		page = append(page, seen[names[i]])
	}
	return page, nil
}

func (f *fakeStore) has(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[path]
	return ok
}

// fakeGenerator records prompts and answers with reply or err.
type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

// stepClock returns a clock that advances by step on every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	t := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := t
		t = t.Add(step)
		return now
	}
}

func sqlcDocument(userID uuid.UUID, name, url string, size int64, fileType string) sqlc.CreateDocumentParams {
	text := "text of " + name
	return sqlc.CreateDocumentParams{
		UserID:        userID,
		FileName:      name,
		FileUrl:       url,
		FileSize:      size,
		FileType:      fileType,
		ExtractedText: &text,
		CreatedAt:     pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}
