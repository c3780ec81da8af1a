// Package slug derives unique, URL-safe identifiers from display names.
//
// Uniqueness is checked per entity collection through the Index interface.
// The probing here is check-then-act: under concurrent creation two callers
// can both observe a slug as free. The unique index on each collection's
// slug field is the authoritative backstop; callers must handle its
// duplicate-key violation (domain.ErrSlugConflict) as a creation failure.
package slug

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Index answers existence probes against one entity collection.
type Index interface {
	// SlugExists reports whether any record in the collection holds slug.
	SlugExists(ctx context.Context, slug string) (bool, error)
	// SlugExistsExcluding is SlugExists ignoring the record with excludeID,
	// used on the rename path so an entity does not collide with itself.
	SlugExistsExcluding(ctx context.Context, slug string, excludeID string) (bool, error)
}

// Normalize reduces a display name to its slug base: lowercase, non
// [a-z0-9 space hyphen] runes stripped, whitespace runs collapsed to a
// single hyphen, hyphen runs collapsed, leading/trailing hyphens trimmed.
// A name made entirely of stripped characters normalizes to "", which is
// accepted; rejecting empty source names is the validation layer's job.
// Normalize is idempotent.
func Normalize(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	s := strings.Join(strings.Fields(b.String()), "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// Allocator assigns collection-unique slugs.
type Allocator struct {
	index Index
	now   func() time.Time
}

// NewAllocator returns an Allocator probing the given collection index.
func NewAllocator(index Index) *Allocator {
	return &Allocator{index: index, now: time.Now}
}

// Allocate derives a slug for a new record: the normalized base if free,
// otherwise the first of base-1, base-2, ... not present.
// Terminates in at most existing-collision-count+1 probes.
func (a *Allocator) Allocate(ctx context.Context, name string) (string, error) {
	base := Normalize(name)

	taken, err := a.index.SlugExists(ctx, base)
	if err != nil {
		return "", fmt.Errorf("slug probe %q: %w", base, err)
	}
	if !taken {
		return base, nil
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err := a.index.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("slug probe %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
}

// Reallocate derives a slug for a renamed record, ignoring the record's own
// current slug. On collision it appends the current unix timestamp instead
// of probing a counter, trading slug readability for a single lookup.
func (a *Allocator) Reallocate(ctx context.Context, excludeID, newName string) (string, error) {
	candidate := Normalize(newName)

	taken, err := a.index.SlugExistsExcluding(ctx, candidate, excludeID)
	if err != nil {
		return "", fmt.Errorf("slug probe %q: %w", candidate, err)
	}
	if !taken {
		return candidate, nil
	}
	return fmt.Sprintf("%s-%d", candidate, a.now().Unix()), nil
}
