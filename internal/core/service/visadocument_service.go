package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// VisaDocumentServiceImpl implements ports.VisaDocumentService.
type VisaDocumentServiceImpl struct {
	repo   ports.VisaDocumentRepository
	logger zerolog.Logger
}

func NewVisaDocumentService(repo ports.VisaDocumentRepository, logger zerolog.Logger) *VisaDocumentServiceImpl {
	return &VisaDocumentServiceImpl{repo: repo, logger: logger}
}

// Create records a document on behalf of a customer. The reference number
// is generated here, not supplied by the caller.
func (s *VisaDocumentServiceImpl) Create(ctx context.Context, d *domain.VisaDocument, adminID string) (*domain.VisaDocument, error) {
	d.Reference = newReference()
	d.CreatedBy = adminID
	d.Notes = sanitizePlain(d.Notes)
	if d.Status == "" {
		d.Status = domain.DocumentPending
	}

	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	created, err := s.repo.Insert(ctx, d)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("document_id", created.ID).Str("reference", created.Reference).Str("user_id", created.UserID).Msg("visa document created")
	return created, nil
}

func (s *VisaDocumentServiceImpl) List(ctx context.Context, filters ports.VisaDocumentFilters, opts ports.ListOptions) ([]domain.VisaDocument, ports.ListMeta, error) {
	opts = opts.Normalized("createdAt", defaultListLimit, maxListLimit)
	if opts.SortBy == "createdAt" && opts.SortOrder == "asc" {
		opts.SortOrder = "desc"
	}
	items, total, err := s.repo.List(ctx, filters, opts)
	if err != nil {
		return nil, ports.ListMeta{}, err
	}
	return items, ports.NewListMeta(opts, total), nil
}

func (s *VisaDocumentServiceImpl) ListMine(ctx context.Context, userID string) ([]domain.VisaDocument, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get enforces ownership: only admins may read documents they do not own.
func (s *VisaDocumentServiceImpl) Get(ctx context.Context, id string, ident domain.Identity) (*domain.VisaDocument, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	isAdmin := ident.Role == domain.RoleAdmin || ident.Role == domain.RoleSuperAdmin
	if !isAdmin && doc.UserID != ident.UserID {
		return nil, domain.ErrForbidden
	}
	return doc, nil
}

func (s *VisaDocumentServiceImpl) Update(ctx context.Context, id string, d *domain.VisaDocument) (*domain.VisaDocument, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.ID = existing.ID
	d.Reference = existing.Reference
	d.CreatedBy = existing.CreatedBy
	d.CreatedAt = existing.CreatedAt
	d.UpdatedAt = time.Now().UTC()
	d.Notes = sanitizePlain(d.Notes)

	return s.repo.Replace(ctx, id, d)
}

func (s *VisaDocumentServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// newReference yields a short human-quotable reference like VD-9F2C41A7.
func newReference() string {
	id := uuid.NewString()
	return "VD-" + strings.ToUpper(strings.ReplaceAll(id, "-", ""))[:8]
}
