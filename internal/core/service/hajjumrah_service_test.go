package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

type stubPackageRepo struct {
	packages      map[string]*domain.HajjUmrahPackage
	nextID        int
	featuredCalls int
}

func newStubPackageRepo() *stubPackageRepo {
	return &stubPackageRepo{packages: make(map[string]*domain.HajjUmrahPackage)}
}

func (r *stubPackageRepo) Insert(ctx context.Context, p *domain.HajjUmrahPackage) (*domain.HajjUmrahPackage, error) {
	for _, existing := range r.packages {
		if existing.Slug == p.Slug {
			return nil, domain.ErrSlugConflict
		}
	}
	r.nextID++
	cp := *p
	cp.ID = "p" + string(rune('0'+r.nextID))
	r.packages[cp.ID] = &cp
	return &cp, nil
}

func (r *stubPackageRepo) FindByID(ctx context.Context, id string) (*domain.HajjUmrahPackage, error) {
	p, ok := r.packages[id]
	if !ok {
		return nil, domain.ErrPackageNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubPackageRepo) FindActiveBySlug(ctx context.Context, slug string) (*domain.HajjUmrahPackage, error) {
	for _, p := range r.packages {
		if p.Slug == slug && p.IsActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrPackageNotFound
}

func (r *stubPackageRepo) List(ctx context.Context, filters ports.PackageFilters, opts ports.ListOptions) ([]domain.HajjUmrahPackage, int64, error) {
	out := make([]domain.HajjUmrahPackage, 0, len(r.packages))
	for _, p := range r.packages {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPackageRepo) ListFeatured(ctx context.Context) ([]domain.HajjUmrahPackage, error) {
	r.featuredCalls++
	var out []domain.HajjUmrahPackage
	for _, p := range r.packages {
		if p.IsActive && p.IsFeatured {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPackageRepo) Replace(ctx context.Context, id string, p *domain.HajjUmrahPackage) (*domain.HajjUmrahPackage, error) {
	if _, ok := r.packages[id]; !ok {
		return nil, domain.ErrPackageNotFound
	}
	cp := *p
	r.packages[id] = &cp
	return &cp, nil
}

func (r *stubPackageRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.packages[id]; !ok {
		return domain.ErrPackageNotFound
	}
	delete(r.packages, id)
	return nil
}

func (r *stubPackageRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, p := range r.packages {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPackageRepo) SlugExistsExcluding(ctx context.Context, slug, excludeID string) (bool, error) {
	for _, p := range r.packages {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// stubCache round-trips values through JSON the way the Redis cache does.
type stubCache struct {
	entries map[string][]byte
	sets    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *stubCache) Set(ctx context.Context, key string, val any, ttl time.Duration) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.sets++
	return nil
}

func (c *stubCache) Invalidate(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func newTestPackageService(repo *stubPackageRepo, cache ListingCache) *PackageServiceImpl {
	return NewPackageService(repo, cache, zerolog.Nop())
}

func TestPackageFeatured_CachesResult(t *testing.T) {
	repo := newStubPackageRepo()
	cache := newStubCache()
	svc := newTestPackageService(repo, cache)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &domain.HajjUmrahPackage{
		Name: "Premium Umrah", Type: domain.PackageUmrah, IsActive: true, IsFeatured: true,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := svc.Featured(ctx)
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 featured package, got %d", len(first))
	}
	if repo.featuredCalls != 1 {
		t.Fatalf("expected 1 store read, got %d", repo.featuredCalls)
	}

	// Second read is served from the cache.
	second, err := svc.Featured(ctx)
	if err != nil {
		t.Fatalf("featured from cache: %v", err)
	}
	if len(second) != 1 || second[0].Slug != first[0].Slug {
		t.Fatalf("cached result diverges: %+v", second)
	}
	if repo.featuredCalls != 1 {
		t.Fatalf("cache hit should not reach the store, got %d reads", repo.featuredCalls)
	}
}

func TestPackageCreate_InvalidatesFeaturedCache(t *testing.T) {
	repo := newStubPackageRepo()
	cache := newStubCache()
	svc := newTestPackageService(repo, cache)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &domain.HajjUmrahPackage{
		Name: "Economy Hajj", Type: domain.PackageHajj, IsActive: true, IsFeatured: true,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Featured(ctx); err != nil {
		t.Fatalf("prime cache: %v", err)
	}

	if _, err := svc.Create(ctx, &domain.HajjUmrahPackage{
		Name: "Deluxe Hajj", Type: domain.PackageHajj, IsActive: true, IsFeatured: true,
	}); err != nil {
		t.Fatalf("second create: %v", err)
	}

	got, err := svc.Featured(ctx)
	if err != nil {
		t.Fatalf("featured after create: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 featured packages after invalidation, got %d", len(got))
	}
}

func TestPackageFeatured_NilCache(t *testing.T) {
	repo := newStubPackageRepo()
	svc := newTestPackageService(repo, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &domain.HajjUmrahPackage{
		Name: "Standard Umrah", Type: domain.PackageUmrah, IsActive: true, IsFeatured: true,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.Featured(ctx)
	if err != nil {
		t.Fatalf("featured without cache: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 featured package, got %d", len(got))
	}
}

func TestPackageUpdate_ReallocatesSlugOnRename(t *testing.T) {
	repo := newStubPackageRepo()
	svc := newTestPackageService(repo, newStubCache())
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.HajjUmrahPackage{
		Name: "Gold Package", Type: domain.PackageHajj, IsActive: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "gold-package" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}

	updated, err := svc.Update(ctx, created.ID, &domain.HajjUmrahPackage{
		Name: "Platinum Package", Type: domain.PackageHajj, IsActive: true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Slug != "platinum-package" {
		t.Fatalf("expected reallocated slug, got %q", updated.Slug)
	}
	if updated.ID != created.ID {
		t.Fatalf("id changed on update: %q != %q", updated.ID, created.ID)
	}
}
