package favorite

import "context"

type Repository interface {
	Add(ctx context.Context, f *Favorite) error
	Remove(ctx context.Context, borrowerID string, bookID uint64) error
	Exists(ctx context.Context, borrowerID string, bookID uint64) (bool, error)
	ListByBorrower(ctx context.Context, borrowerID string, offset, limit int) ([]Favorite, int64, error)
}
