package mysql

import (
	"context"

	reviewDomain "library-backend/internal/domain/review"

	"gorm.io/gorm"
)

type ReviewRepository struct{ db *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{db: db} }

func (r *ReviewRepository) Create(ctx context.Context, rv *reviewDomain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) Save(ctx context.Context, rv *reviewDomain.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, rv *reviewDomain.Review) error {
	return r.db.WithContext(ctx).Delete(rv).Error
}

func (r *ReviewRepository) GetByReviewID(ctx context.Context, reviewID string) (*reviewDomain.Review, error) {
	var out reviewDomain.Review
	res := r.db.WithContext(ctx).Where("review_id = ?", reviewID).First(&out)
	return &out, res.Error
}

func (r *ReviewRepository) ListByBookID(ctx context.Context, bookID uint64, status reviewDomain.ModerationStatus) ([]reviewDomain.Review, error) {
	q := r.db.WithContext(ctx).Where("book_id = ?", bookID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []reviewDomain.Review
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *ReviewRepository) List(ctx context.Context, offset, limit int) ([]reviewDomain.Review, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&reviewDomain.Review{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []reviewDomain.Review
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&out)
	return out, total, res.Error
}
