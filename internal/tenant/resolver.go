// internal/tenant/resolver.go
package tenant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/marchkeep/marchkeep/internal/cache"
	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/model"
)

// Cache TTLs. The local tier turns over quickly; the distributed tier holds
// positive hits for an hour but bounds "not found" at five minutes so a slug
// that becomes a real tenant converges without manual invalidation.
const (
	MemoryTTL        = 5 * time.Minute
	RedisPositiveTTL = time.Hour
	RedisNegativeTTL = 5 * time.Minute
)

// Info is the resolved view of a tenant that routing and handlers consume.
type Info struct {
	ID            uuid.UUID          `json:"id"`
	Slug          string             `json:"slug"`
	Name          string             `json:"name"`
	Status        model.TenantStatus `json:"status"`
	DirectorEmail string             `json:"director_email"`
	DirectorName  string             `json:"director_name"`
}

func InfoFromModel(t *model.Tenant) *Info {
	return &Info{
		ID:            t.ID,
		Slug:          t.Slug,
		Name:          t.Name,
		Status:        t.Status,
		DirectorEmail: t.DirectorEmail,
		DirectorName:  t.DirectorName,
	}
}

// Repository is the relational fallback for slug lookups.
type Repository interface {
	FindBySlug(ctx context.Context, slug string) (*model.Tenant, error)
}

// Resolver answers "which tenant is this slug" with a read-through two-tier
// cache. Tenant resolution runs on every request, so the database must stay
// off the hot path.
type Resolver struct {
	local       *cache.InMemoryCache
	distributed *cache.RedisCache
	repo        Repository
	logger      *slog.Logger
}

func NewResolver(local *cache.InMemoryCache, distributed *cache.RedisCache, repo Repository, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		local:       local,
		distributed: distributed,
		repo:        repo,
		logger:      logger,
	}
}

func cacheKey(slug string) string {
	return "tenant:slug:" + slug
}

// Resolve returns the tenant for slug, or (nil, nil) when no such tenant
// exists. The local tier stores a typed-nil *Info as the negative sentinel so
// a cached "not found" is distinguishable from a cache miss.
func (r *Resolver) Resolve(ctx context.Context, slug string) (*Info, error) {
	key := cacheKey(slug)

	if v, found := r.local.Get(ctx, key); found {
		info := v.(*Info)
		return info, nil
	}

	var cached Info
	found, negative, err := r.distributed.Get(ctx, key, &cached)
	if err != nil {
		// A broken distributed tier falls through to the database rather
		// than failing resolution.
		r.logger.Warn("distributed tenant cache read failed", "slug", slug, "error", err)
	} else if found {
		if negative {
			r.local.SetWithTTL(ctx, key, (*Info)(nil), MemoryTTL)
			return nil, nil
		}
		r.local.SetWithTTL(ctx, key, &cached, MemoryTTL)
		return &cached, nil
	}

	t, err := r.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			r.local.SetWithTTL(ctx, key, (*Info)(nil), MemoryTTL)
			if err := r.distributed.SetNegative(ctx, key, RedisNegativeTTL); err != nil {
				r.logger.Warn("distributed tenant cache write failed", "slug", slug, "error", err)
			}
			return nil, nil
		}
		return nil, fmt.Errorf("resolving tenant %q: %w", slug, err)
	}

	info := InfoFromModel(t)
	r.populate(ctx, key, info)
	return info, nil
}

// WriteThrough eagerly populates both cache tiers for a tenant, closing the
// negative-cache window when a new tenant is created.
func (r *Resolver) WriteThrough(ctx context.Context, t *model.Tenant) {
	r.populate(ctx, cacheKey(t.Slug), InfoFromModel(t))
}

// Invalidate drops a slug from both tiers, used after status changes.
func (r *Resolver) Invalidate(ctx context.Context, slug string) {
	key := cacheKey(slug)
	r.local.Delete(ctx, key)
	if err := r.distributed.Delete(ctx, key); err != nil {
		r.logger.Warn("distributed tenant cache delete failed", "slug", slug, "error", err)
	}
}

func (r *Resolver) populate(ctx context.Context, key string, info *Info) {
	r.local.SetWithTTL(ctx, key, info, MemoryTTL)
	if err := r.distributed.Set(ctx, key, info, RedisPositiveTTL); err != nil {
		r.logger.Warn("distributed tenant cache write failed", "slug", info.Slug, "error", err)
	}
}
