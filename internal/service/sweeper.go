package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/set-night/healthdash/internal/config"
	"github.com/set-night/healthdash/internal/storage"
)

// SweepStore is the part of object storage the sweeper needs.
type SweepStore interface {
	List(ctx context.Context, prefix string, limit, offset int) ([]storage.Object, error)
	PublicURL(path string) string
	Remove(ctx context.Context, paths ...string) error
}

// URLChecker reports whether a metadata row references a stored object.
type URLChecker interface {
	DocumentURLExists(ctx context.Context, fileUrl string) (bool, error)
}

// Sweeper removes stored objects that no metadata row references, which is
// what an upload interrupted between its two phases leaves behind. Objects
// younger than the grace period are skipped so in-flight uploads survive.
type Sweeper struct {
	store   SweepStore
	queries URLChecker
	grace   time.Duration
	now     func() time.Time
}

func NewSweeper(store SweepStore, queries URLChecker) *Sweeper {
	return &Sweeper{
		store:   store,
		queries: queries,
		grace:   config.OrphanGracePeriod,
		now:     time.Now,
	}
}

// Run sweeps every interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.Sweep(ctx)
			if err != nil {
				slog.Error("orphan sweep", "error", err)
				continue
			}
			if removed > 0 {
				slog.Info("orphan sweep removed objects", "count", removed)
			}
		}
	}
}

// Sweep makes one pass over every user folder and returns how many objects it removed.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	folders, err := s.listAll(ctx, config.DocumentsPrefix)
	if err != nil {
		return 0, fmt.Errorf("list user folders: %w", err)
	}

	removed := 0
	for _, folder := range folders {
		if !folder.IsFolder() {
			continue
		}
		n, err := s.sweepFolder(ctx, config.DocumentsPrefix+"/"+folder.Name)
		removed += n
		if err != nil {
			return removed, err
		}
	}
	return removed, nil
}

func (s *Sweeper) sweepFolder(ctx context.Context, prefix string) (int, error) {
	objects, err := s.listAll(ctx, prefix)
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", prefix, err)
	}

	cutoff := s.now().Add(-s.grace)
	var orphans []string
	for _, obj := range objects {
		if obj.IsFolder() || obj.CreatedAt.After(cutoff) {
			continue
		}
		path := prefix + "/" + obj.Name
		exists, err := s.queries.DocumentURLExists(ctx, s.store.PublicURL(path))
		if err != nil {
			return 0, fmt.Errorf("check %s: %w", path, err)
		}
		if !exists {
			orphans = append(orphans, path)
		}
	}

	if len(orphans) == 0 {
		return 0, nil
	}
	if err := s.store.Remove(ctx, orphans...); err != nil {
		return 0, fmt.Errorf("remove orphans in %s: %w", prefix, err)
	}
	slog.Debug("removed orphaned objects", "prefix", prefix, "paths", orphans)
	return len(orphans), nil
}

func (s *Sweeper) listAll(ctx context.Context, prefix string) ([]storage.Object, error) {
	var all []storage.Object
	for offset := 0; ; offset += config.StorageListLimit {
		page, err := s.store.List(ctx, prefix, config.StorageListLimit, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < config.StorageListLimit {
			return all, nil
		}
	}
}
