package review

import "context"

type Repository interface {
	Create(ctx context.Context, r *Review) error
	GetByReviewID(ctx context.Context, reviewID string) (*Review, error)
	// ListByBookID with status "" returns every review of the book.
	ListByBookID(ctx context.Context, bookID uint64, status ModerationStatus) ([]Review, error)
	List(ctx context.Context, offset, limit int) ([]Review, int64, error)
	Save(ctx context.Context, r *Review) error
	Delete(ctx context.Context, r *Review) error
}
