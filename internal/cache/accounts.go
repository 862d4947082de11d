package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolioservice/internal/logging"
	"portfolioservice/internal/models"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

type AccountSource interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
	ListAssignedStudents(ctx context.Context, assessorID uuid.UUID) ([]uuid.UUID, error)
	ListAccountsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Account, error)
	ListAccounts(ctx context.Context) ([]*models.Account, error)
}

// AccountDirectory caches single-account lookups. Listings always go to the source.
type AccountDirectory struct {
	AccountSource
	cache Cache
	ttl   time.Duration
}

func NewAccountDirectory(source AccountSource, cache Cache, ttl time.Duration) *AccountDirectory {
	return &AccountDirectory{AccountSource: source, cache: cache, ttl: ttl}
}

func accountKey(id uuid.UUID) string {
	return "account:" + id.String()
}

func (d *AccountDirectory) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	key := accountKey(id)
	if data, ok := d.cache.Get(ctx, key); ok {
		acc := &models.Account{}
		if err := json.Unmarshal(data, acc); err == nil {
			return acc, nil
		}
		d.cache.Delete(ctx, key)
	}

	acc, err := d.AccountSource.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(acc)
	if err != nil {
		logging.FromContext(ctx).Warn(ctx, "cannot encode account for cache", zap.Error(err))
		return acc, nil
	}
	d.cache.Set(ctx, key, data, d.ttl)
	return acc, nil
}
