package mysql

import (
	"context"

	favoriteDomain "library-backend/internal/domain/favorite"

	"gorm.io/gorm"
)

type FavoriteRepository struct{ db *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository { return &FavoriteRepository{db: db} }

func (r *FavoriteRepository) Add(ctx context.Context, f *favoriteDomain.Favorite) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FavoriteRepository) Remove(ctx context.Context, borrowerID string, bookID uint64) error {
	res := r.db.WithContext(ctx).
		Where("borrower_id = ? AND book_id = ?", borrowerID, bookID).
		Delete(&favoriteDomain.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return favoriteDomain.ErrNotFound
	}
	return nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, borrowerID string, bookID uint64) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&favoriteDomain.Favorite{}).
		Where("borrower_id = ? AND book_id = ?", borrowerID, bookID).
		Count(&n)
	return n > 0, res.Error
}

func (r *FavoriteRepository) ListByBorrower(ctx context.Context, borrowerID string, offset, limit int) ([]favoriteDomain.Favorite, int64, error) {
	q := r.db.WithContext(ctx).Model(&favoriteDomain.Favorite{}).Where("borrower_id = ?", borrowerID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []favoriteDomain.Favorite
	res := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&out)
	return out, total, res.Error
}
