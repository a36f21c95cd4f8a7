package bookmock

import (
	"context"

	domain "library-backend/internal/domain/book"
)

var (
	_ domain.AuthorRepository   = (*AuthorRepo)(nil)
	_ domain.CategoryRepository = (*CategoryRepo)(nil)
)

// AuthorRepo is a function-backed mock that satisfies book.AuthorRepository.
type AuthorRepo struct {
	CreateFn        func(ctx context.Context, a *domain.Author) error
	GetByAuthorIDFn func(ctx context.Context, authorID string) (*domain.Author, error)
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.Author, error)
	ListFn          func(ctx context.Context, offset, limit int) ([]domain.Author, int64, error)
	SaveFn          func(ctx context.Context, a *domain.Author) error
	DeleteFn        func(ctx context.Context, a *domain.Author) error
}

func (m *AuthorRepo) Create(ctx context.Context, a *domain.Author) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *AuthorRepo) GetByAuthorID(ctx context.Context, authorID string) (*domain.Author, error) {
	if m.GetByAuthorIDFn != nil {
		return m.GetByAuthorIDFn(ctx, authorID)
	}
	return nil, errUnimplemented
}

func (m *AuthorRepo) GetByID(ctx context.Context, id uint64) (*domain.Author, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *AuthorRepo) List(ctx context.Context, offset, limit int) ([]domain.Author, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, offset, limit)
	}
	return nil, 0, errUnimplemented
}

func (m *AuthorRepo) Save(ctx context.Context, a *domain.Author) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *AuthorRepo) Delete(ctx context.Context, a *domain.Author) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, a)
	}
	return nil
}

// CategoryRepo is a function-backed mock that satisfies book.CategoryRepository.
type CategoryRepo struct {
	CreateFn          func(ctx context.Context, c *domain.Category) error
	GetByCategoryIDFn func(ctx context.Context, categoryID string) (*domain.Category, error)
	GetByIDFn         func(ctx context.Context, id uint64) (*domain.Category, error)
	ListFn            func(ctx context.Context, offset, limit int) ([]domain.Category, int64, error)
	SaveFn            func(ctx context.Context, c *domain.Category) error
	DeleteFn          func(ctx context.Context, c *domain.Category) error
}

func (m *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *CategoryRepo) GetByCategoryID(ctx context.Context, categoryID string) (*domain.Category, error) {
	if m.GetByCategoryIDFn != nil {
		return m.GetByCategoryIDFn(ctx, categoryID)
	}
	return nil, errUnimplemented
}

func (m *CategoryRepo) GetByID(ctx context.Context, id uint64) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *CategoryRepo) List(ctx context.Context, offset, limit int) ([]domain.Category, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, offset, limit)
	}
	return nil, 0, errUnimplemented
}

func (m *CategoryRepo) Save(ctx context.Context, c *domain.Category) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *CategoryRepo) Delete(ctx context.Context, c *domain.Category) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, c)
	}
	return nil
}
