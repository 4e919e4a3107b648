package location

import "context"

type Repository interface {
	Create(ctx context.Context, l *Location) error
	Save(ctx context.Context, l *Location) error
	GetByID(ctx context.Context, id uint64) (*Location, error)
	// GetByIDForUpdate locks the location row inside the surrounding tx;
	// the booking capacity check serializes on this lock.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Location, error)
	ListActive(ctx context.Context) ([]Location, error)
}
