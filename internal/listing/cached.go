package listing

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/workopia/pkg/cache"
)

// CachedStore serves Latest from a cache and drops the cached pages
// whenever a listing is created, updated or deleted. Other reads go
// straight to the wrapped Store.
//
// Keys carry a generation that every invalidation bumps, so a fill that
// started before a write lands under a key no reader asks for again.
type CachedStore struct {
	Store
	cache  cache.Cache[[]Listing]
	log    *slog.Logger
	ttl    time.Duration
	gen    atomic.Uint64
	limits sync.Map // int -> struct{}
}

// CachedStoreOption configures a CachedStore.
type CachedStoreOption func(*CachedStore)

// WithCacheLogger sets the logger for failed invalidations.
func WithCacheLogger(l *slog.Logger) CachedStoreOption {
	return func(s *CachedStore) {
		if l != nil {
			s.log = l
		}
	}
}

// NewCachedStore wraps s. Entries live for ttl at most.
func NewCachedStore(s Store, c cache.Cache[[]Listing], ttl time.Duration, opts ...CachedStoreOption) *CachedStore {
	cs := &CachedStore{
		Store: s,
		cache: c,
		ttl:   ttl,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cs)
	}
	return cs
}

func latestKey(gen uint64, limit int) string {
	return "listings:latest:" + strconv.FormatUint(gen, 10) + ":" + strconv.Itoa(limit)
}

func (s *CachedStore) Latest(ctx context.Context, limit int) ([]Listing, error) {
	s.limits.Store(limit, struct{}{})
	key := latestKey(s.gen.Load(), limit)
	return cache.GetOrSet(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]Listing, error) {
		return s.Store.Latest(ctx, limit)
	})
}

func (s *CachedStore) Create(ctx context.Context, userID int64, in Input) (int64, error) {
	id, err := s.Store.Create(ctx, userID, in)
	if err == nil {
		s.invalidate(ctx)
	}
	return id, err
}

func (s *CachedStore) Update(ctx context.Context, id int64, in Input) error {
	err := s.Store.Update(ctx, id, in)
	if err == nil {
		s.invalidate(ctx)
	}
	return err
}

func (s *CachedStore) Delete(ctx context.Context, id int64) error {
	err := s.Store.Delete(ctx, id)
	if err == nil {
		s.invalidate(ctx)
	}
	return err
}

// invalidate moves readers to a new generation and deletes the pages of
// the previous one. A failed delete only leaves garbage that expires
// after ttl.
func (s *CachedStore) invalidate(ctx context.Context) {
	old := s.gen.Add(1) - 1

	var keys []string
	s.limits.Range(func(k, _ any) bool {
		keys = append(keys, latestKey(old, k.(int)))
		return true
	})
	if len(keys) == 0 {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.log.WarnContext(ctx, "invalidate listings cache", slog.String("error", err.Error()))
	}
}

var _ Store = (*CachedStore)(nil)
