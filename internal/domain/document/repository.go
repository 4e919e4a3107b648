package document

import "context"

type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByDocumentID(ctx context.Context, documentID string) (*Document, error)
	ListByApplication(ctx context.Context, applicationID uint64) ([]Document, error)
	TypesByApplication(ctx context.Context, applicationID uint64) ([]Type, error)
	Delete(ctx context.Context, documentID string) error
}
