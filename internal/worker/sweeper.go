package worker

import (
	"context"
	"path"
	"time"

	"go.uber.org/zap"

	"portfolioservice/internal/logging"
	"portfolioservice/internal/storage"
)

type ImageRefLister interface {
	ListImageRefs(ctx context.Context) ([]string, error)
}

type BlobStore interface {
	List(ctx context.Context) ([]storage.Object, error)
	Delete(ctx context.Context, ref string) error
}

// OrphanSweeper deletes stored attachments that no portfolio references any more.
// Blobs younger than grace are kept so uploads whose record is still being
// written are never collected.
type OrphanSweeper struct {
	refs     ImageRefLister
	store    BlobStore
	logger   *logging.Logger
	interval time.Duration
	grace    time.Duration
	now      func() time.Time
}

func NewOrphanSweeper(refs ImageRefLister, store BlobStore, logger *logging.Logger, interval, grace time.Duration) *OrphanSweeper {
	return &OrphanSweeper{
		refs:     refs,
		store:    store,
		logger:   logger,
		interval: interval,
		grace:    grace,
		now:      time.Now,
	}
}

func (w *OrphanSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Orphan sweeper stopped")
			return
		case <-ticker.C:
			if _, err := w.Sweep(ctx); err != nil {
				w.logger.Error(ctx, "Orphan sweep failed", zap.Error(err))
			}
		}
	}
}

// Sweep runs one pass and returns the number of deleted blobs.
func (w *OrphanSweeper) Sweep(ctx context.Context) (int, error) {
	refs, err := w.refs.ListImageRefs(ctx)
	if err != nil {
		return 0, err
	}
	referenced := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		referenced[path.Base(ref)] = struct{}{}
	}

	objects, err := w.store.List(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := w.now().Add(-w.grace)
	deleted := 0
	for _, obj := range objects {
		if _, ok := referenced[path.Base(obj.Ref)]; ok {
			continue
		}
		if obj.ModTime.IsZero() || obj.ModTime.After(cutoff) {
			continue
		}
		if err := w.store.Delete(ctx, obj.Ref); err != nil {
			w.logger.Warn(ctx, "Failed to delete orphaned attachment", zap.String("ref", obj.Ref), zap.Error(err))
			continue
		}
		deleted++
	}
	if deleted > 0 {
		w.logger.Info(ctx, "Orphaned attachments removed", zap.Int("count", deleted))
	}
	return deleted, nil
}
