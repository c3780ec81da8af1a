package slug

import (
	"context"
	"strings"
	"testing"
	"time"
)

// stubIndex is an in-memory slug index keyed by slug → owning id.
type stubIndex struct {
	slugs map[string]string
}

func newStubIndex() *stubIndex {
	return &stubIndex{slugs: make(map[string]string)}
}

func (s *stubIndex) SlugExists(_ context.Context, slug string) (bool, error) {
	_, ok := s.slugs[slug]
	return ok, nil
}

func (s *stubIndex) SlugExistsExcluding(_ context.Context, slug, excludeID string) (bool, error) {
	owner, ok := s.slugs[slug]
	return ok && owner != excludeID, nil
}

func (s *stubIndex) add(slug, id string) {
	s.slugs[slug] = id
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Standard Hajj 2025", "standard-hajj-2025"},
		{"  Multi   Space--Name!! ", "multi-space-name"},
		{"economy hajj 2025!!", "economy-hajj-2025"},
		{"already-a-slug", "already-a-slug"},
		{"--lead-and-trail--", "lead-and-trail"},
		{"UPPER Case", "upper-case"},
		{"Café & Résumé", "caf-rsum"},
		{"বাংলাদেশ", ""},
		{"", ""},
		{"!!!", ""},
		{"a\tb\nc", "a-b-c"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Standard Hajj 2025",
		"  Multi   Space--Name!! ",
		"বাংলাদেশ Visa",
		"a--b   c!!d",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestNormalize_OutputShape(t *testing.T) {
	for _, in := range []string{"Hello World", "a!b@c", "  x  ", "-y-"} {
		got := Normalize(in)
		if got == "" {
			continue
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Fatalf("Normalize(%q) = %q has leading/trailing hyphen", in, got)
		}
		if strings.Contains(got, "--") {
			t.Fatalf("Normalize(%q) = %q has consecutive hyphens", in, got)
		}
	}
}

func TestAllocate_FreeBase(t *testing.T) {
	idx := newStubIndex()
	alloc := NewAllocator(idx)

	got, err := alloc.Allocate(context.Background(), "Economy Hajj 2025")
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if got != "economy-hajj-2025" {
		t.Fatalf("expected base slug, got %q", got)
	}
}

func TestAllocate_SequentialSuffixes(t *testing.T) {
	idx := newStubIndex()
	alloc := NewAllocator(idx)
	ctx := context.Background()

	names := []string{"Economy Hajj 2025", "Economy Hajj 2025", "economy hajj 2025!!"}
	want := []string{"economy-hajj-2025", "economy-hajj-2025-1", "economy-hajj-2025-2"}

	for i, name := range names {
		got, err := alloc.Allocate(ctx, name)
		if err != nil {
			t.Fatalf("Allocate #%d: %v", i, err)
		}
		if got != want[i] {
			t.Fatalf("Allocate #%d = %q, want %q", i, got, want[i])
		}
		if taken, _ := idx.SlugExists(ctx, got); taken {
			t.Fatalf("Allocate #%d returned slug %q already present in scope", i, got)
		}
		idx.add(got, "id")
	}
}

func TestAllocate_SkipsHoles(t *testing.T) {
	idx := newStubIndex()
	idx.add("dubai", "a")
	idx.add("dubai-1", "b")
	idx.add("dubai-3", "c")
	alloc := NewAllocator(idx)

	got, err := alloc.Allocate(context.Background(), "Dubai")
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if got != "dubai-2" {
		t.Fatalf("expected first free candidate dubai-2, got %q", got)
	}
}

func TestReallocate_NoCollision(t *testing.T) {
	idx := newStubIndex()
	idx.add("old-name", "self")
	alloc := NewAllocator(idx)

	got, err := alloc.Reallocate(context.Background(), "self", "New Name")
	if err != nil {
		t.Fatalf("Reallocate: %v", err)
	}
	if got != "new-name" {
		t.Fatalf("expected new-name, got %q", got)
	}
}

func TestReallocate_IgnoresOwnSlug(t *testing.T) {
	idx := newStubIndex()
	idx.add("same-name", "self")
	alloc := NewAllocator(idx)

	// Renaming to a name that normalizes to the entity's own current slug
	// must return the plain candidate, not a suffixed one.
	got, err := alloc.Reallocate(context.Background(), "self", "Same Name")
	if err != nil {
		t.Fatalf("Reallocate: %v", err)
	}
	if got != "same-name" {
		t.Fatalf("expected same-name, got %q", got)
	}
}

func TestReallocate_TimestampOnCollision(t *testing.T) {
	idx := newStubIndex()
	idx.add("tourist-visa", "other")
	alloc := NewAllocator(idx)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	alloc.now = func() time.Time { return fixed }

	got, err := alloc.Reallocate(context.Background(), "self", "Tourist Visa")
	if err != nil {
		t.Fatalf("Reallocate: %v", err)
	}
	want := "tourist-visa-1748779200"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got == "tourist-visa" {
		t.Fatalf("Reallocate returned the colliding slug unchanged")
	}
}
