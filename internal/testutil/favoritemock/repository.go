package favoritemock

import (
	"context"
	"errors"

	domain "library-backend/internal/domain/favorite"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("favoritemock: method not implemented")

// Repo is a function-backed mock that satisfies favorite.Repository.
type Repo struct {
	AddFn            func(ctx context.Context, f *domain.Favorite) error
	RemoveFn         func(ctx context.Context, borrowerID string, bookID uint64) error
	ExistsFn         func(ctx context.Context, borrowerID string, bookID uint64) (bool, error)
	ListByBorrowerFn func(ctx context.Context, borrowerID string, offset, limit int) ([]domain.Favorite, int64, error)
}

func (m *Repo) Add(ctx context.Context, f *domain.Favorite) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, f)
	}
	return nil
}

func (m *Repo) Remove(ctx context.Context, borrowerID string, bookID uint64) error {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, borrowerID, bookID)
	}
	return nil
}

func (m *Repo) Exists(ctx context.Context, borrowerID string, bookID uint64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, borrowerID, bookID)
	}
	return false, errUnimplemented
}

func (m *Repo) ListByBorrower(ctx context.Context, borrowerID string, offset, limit int) ([]domain.Favorite, int64, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID, offset, limit)
	}
	return nil, 0, errUnimplemented
}
