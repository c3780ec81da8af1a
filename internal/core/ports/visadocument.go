package ports

import (
	"context"

	"github.com/visapro/visapro-api/internal/core/domain"
)

// VisaDocumentFilters narrows the admin document listing.
type VisaDocumentFilters struct {
	SearchTerm string
	UserID     string
	Status     string
	Country    string
	VisaType   string
}

// VisaDocumentRepository is the persistence interface for visa documents.
// Documents carry no slug; they are addressed by id and reference number.
type VisaDocumentRepository interface {
	Insert(ctx context.Context, d *domain.VisaDocument) (*domain.VisaDocument, error)
	FindByID(ctx context.Context, id string) (*domain.VisaDocument, error)
	List(ctx context.Context, filters VisaDocumentFilters, opts ListOptions) ([]domain.VisaDocument, int64, error)
	ListByUser(ctx context.Context, userID string) ([]domain.VisaDocument, error)
	Replace(ctx context.Context, id string, d *domain.VisaDocument) (*domain.VisaDocument, error)
	Delete(ctx context.Context, id string) error
}

// VisaDocumentService defines use-case operations for visa documents.
type VisaDocumentService interface {
	// Create stores a document on behalf of a customer; adminID is recorded
	// as the creator and a reference number is generated.
	Create(ctx context.Context, d *domain.VisaDocument, adminID string) (*domain.VisaDocument, error)
	List(ctx context.Context, filters VisaDocumentFilters, opts ListOptions) ([]domain.VisaDocument, ListMeta, error)
	// ListMine returns the authenticated owner's documents, newest first.
	ListMine(ctx context.Context, userID string) ([]domain.VisaDocument, error)
	// Get enforces ownership: non-admin callers only see their own documents.
	Get(ctx context.Context, id string, ident domain.Identity) (*domain.VisaDocument, error)
	Update(ctx context.Context, id string, d *domain.VisaDocument) (*domain.VisaDocument, error)
	Delete(ctx context.Context, id string) error
}
