package bookmock

import (
	"context"
	"errors"

	domain "library-backend/internal/domain/book"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("bookmock: method not implemented")

// Repo is a function-backed mock that satisfies book.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, b *domain.Book) error
	GetByBookIDFn      func(ctx context.Context, bookID string) (*domain.Book, error)
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Book, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Book, error)
	GetByIDsFn         func(ctx context.Context, ids []uint64) ([]domain.Book, error)
	ListFn             func(ctx context.Context, search string, offset, limit int) ([]domain.Book, int64, error)
	SaveFn             func(ctx context.Context, b *domain.Book) error
	DeleteFn           func(ctx context.Context, b *domain.Book) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBookID(ctx context.Context, bookID string) (*domain.Book, error) {
	if m.GetByBookIDFn != nil {
		return m.GetByBookIDFn(ctx, bookID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Book, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDs(ctx context.Context, ids []uint64) ([]domain.Book, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, search string, offset, limit int) ([]domain.Book, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, search, offset, limit)
	}
	return nil, 0, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, b *domain.Book) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, b *domain.Book) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, b)
	}
	return nil
}
