package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// stubCountryRepo is a map-backed ports.CountryRepository. failInserts
// forces ErrSlugConflict on the first N inserts to simulate losing the
// unique-index race.
type stubCountryRepo struct {
	byID        map[string]*domain.Country
	failInserts int
	nextID      int
}

func newStubCountryRepo(existing ...*domain.Country) *stubCountryRepo {
	r := &stubCountryRepo{byID: make(map[string]*domain.Country)}
	for _, c := range existing {
		r.byID[c.ID] = c
	}
	return r
}

func (r *stubCountryRepo) Insert(ctx context.Context, c *domain.Country) (*domain.Country, error) {
	if r.failInserts > 0 {
		r.failInserts--
		return nil, domain.ErrSlugConflict
	}
	for _, other := range r.byID {
		if other.Slug == c.Slug {
			return nil, domain.ErrSlugConflict
		}
	}
	r.nextID++
	c.ID = string(rune('a' + r.nextID))
	r.byID[c.ID] = c
	return c, nil
}

func (r *stubCountryRepo) FindByID(ctx context.Context, id string) (*domain.Country, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCountryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCountryRepo) FindActiveBySlug(ctx context.Context, slug string) (*domain.Country, error) {
	for _, c := range r.byID {
		if c.Slug == slug && c.IsActive {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrCountryNotFound
}

func (r *stubCountryRepo) List(ctx context.Context, filters ports.CountryFilters, opts ports.ListOptions) ([]domain.Country, int64, error) {
	out := make([]domain.Country, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCountryRepo) ListActive(ctx context.Context) ([]domain.Country, error)   { return nil, nil }
func (r *stubCountryRepo) ListFeatured(ctx context.Context) ([]domain.Country, error) { return nil, nil }

func (r *stubCountryRepo) Replace(ctx context.Context, id string, c *domain.Country) (*domain.Country, error) {
	if _, ok := r.byID[id]; !ok {
		return nil, domain.ErrCountryNotFound
	}
	r.byID[id] = c
	return c, nil
}

func (r *stubCountryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCountryNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubCountryRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, c := range r.byID {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCountryRepo) SlugExistsExcluding(ctx context.Context, slug, excludeID string) (bool, error) {
	for id, c := range r.byID {
		if id != excludeID && c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func TestCountryService_Create_AllocatesSlug(t *testing.T) {
	repo := newStubCountryRepo()
	svc := NewCountryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Country{Name: "United Arab Emirates"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "united-arab-emirates" {
		t.Fatalf("expected slug united-arab-emirates, got %q", created.Slug)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("timestamps must be set on create")
	}
}

func TestCountryService_Create_CounterOnCollision(t *testing.T) {
	repo := newStubCountryRepo(
		&domain.Country{ID: "x1", Name: "Dubai", Slug: "dubai"},
		&domain.Country{ID: "x2", Name: "Dubai", Slug: "dubai-1"},
	)
	svc := NewCountryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Country{Name: "Dubai"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "dubai-2" {
		t.Fatalf("expected slug dubai-2, got %q", created.Slug)
	}
}

// Losing the unique-index race once triggers a single retry with a fresh
// probe; losing twice surfaces the conflict.
func TestCountryService_Create_RetriesOnSlugRace(t *testing.T) {
	repo := newStubCountryRepo()
	repo.failInserts = 1
	svc := NewCountryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Country{Name: "Qatar"})
	if err != nil {
		t.Fatalf("create after one race: %v", err)
	}
	if created.Slug != "qatar" {
		t.Fatalf("expected slug qatar, got %q", created.Slug)
	}

	repo2 := newStubCountryRepo()
	repo2.failInserts = 2
	svc2 := NewCountryService(repo2, zerolog.Nop())
	if _, err := svc2.Create(context.Background(), &domain.Country{Name: "Qatar"}); !errors.Is(err, domain.ErrSlugConflict) {
		t.Fatalf("expected ErrSlugConflict after two races, got %v", err)
	}
}

func TestCountryService_Update_PreservesSlugWhenNameUnchanged(t *testing.T) {
	existing := &domain.Country{ID: "x1", Name: "Turkey", Slug: "turkey"}
	repo := newStubCountryRepo(existing)
	svc := NewCountryService(repo, zerolog.Nop())

	updated, err := svc.Update(context.Background(), "x1", &domain.Country{Name: "Turkey", Capital: "Ankara"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Slug != "turkey" {
		t.Fatalf("slug must not move on unchanged name, got %q", updated.Slug)
	}
	if updated.ID != "x1" {
		t.Fatalf("id must be preserved, got %q", updated.ID)
	}
	if updated.Capital != "Ankara" {
		t.Fatalf("field update lost: %+v", updated)
	}
}

func TestCountryService_Update_ReallocatesSlugOnRename(t *testing.T) {
	existing := &domain.Country{ID: "x1", Name: "Turkey", Slug: "turkey"}
	repo := newStubCountryRepo(existing)
	svc := NewCountryService(repo, zerolog.Nop())

	updated, err := svc.Update(context.Background(), "x1", &domain.Country{Name: "Turkiye"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Slug != "turkiye" {
		t.Fatalf("expected reallocated slug turkiye, got %q", updated.Slug)
	}
}

func TestCountryService_Update_NotFound(t *testing.T) {
	svc := NewCountryService(newStubCountryRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), "missing", &domain.Country{Name: "X"})
	if !errors.Is(err, domain.ErrCountryNotFound) {
		t.Fatalf("expected ErrCountryNotFound, got %v", err)
	}
}

func TestCountryService_Delete(t *testing.T) {
	repo := newStubCountryRepo(&domain.Country{ID: "x1", Name: "Oman", Slug: "oman"})
	svc := NewCountryService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "x1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), "x1"); !errors.Is(err, domain.ErrCountryNotFound) {
		t.Fatalf("second delete: expected ErrCountryNotFound, got %v", err)
	}
}

func TestCountryService_List_NormalizesOptions(t *testing.T) {
	repo := newStubCountryRepo(&domain.Country{ID: "x1", Name: "Oman", Slug: "oman"})
	svc := NewCountryService(repo, zerolog.Nop())

	_, meta, err := svc.List(context.Background(), ports.CountryFilters{}, ports.ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if meta.Page != 1 || meta.Limit != defaultListLimit {
		t.Fatalf("expected normalized defaults, got %+v", meta)
	}
	if meta.Total != 1 || meta.TotalPages != 1 {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}
