package favorite

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("favorite not found")

type Favorite struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	BorrowerID string    `gorm:"size:32;not null;uniqueIndex:ux_favorites_pair" json:"borrower_id"`
	BookID     uint64    `gorm:"column:book_id;not null;uniqueIndex:ux_favorites_pair" json:"-"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Favorite) TableName() string { return "favorites" }
