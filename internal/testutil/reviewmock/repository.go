package reviewmock

import (
	"context"
	"errors"

	domain "library-backend/internal/domain/review"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("reviewmock: method not implemented")

// Repo is a function-backed mock that satisfies review.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, r *domain.Review) error
	GetByReviewIDFn func(ctx context.Context, reviewID string) (*domain.Review, error)
	ListByBookIDFn  func(ctx context.Context, bookID uint64, status domain.ModerationStatus) ([]domain.Review, error)
	ListFn          func(ctx context.Context, offset, limit int) ([]domain.Review, int64, error)
	SaveFn          func(ctx context.Context, r *domain.Review) error
	DeleteFn        func(ctx context.Context, r *domain.Review) error
}

func (m *Repo) Create(ctx context.Context, r *domain.Review) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByReviewID(ctx context.Context, reviewID string) (*domain.Review, error) {
	if m.GetByReviewIDFn != nil {
		return m.GetByReviewIDFn(ctx, reviewID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByBookID(ctx context.Context, bookID uint64, status domain.ModerationStatus) ([]domain.Review, error) {
	if m.ListByBookIDFn != nil {
		return m.ListByBookIDFn(ctx, bookID, status)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, offset, limit int) ([]domain.Review, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, offset, limit)
	}
	return nil, 0, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, r *domain.Review) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, r *domain.Review) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, r)
	}
	return nil
}
