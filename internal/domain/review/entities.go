package review

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("review not found")

	// ErrNotEligible: the borrower never returned a loan of the book.
	ErrNotEligible = errors.New("borrower not eligible to review this book")

	// ErrInvalidTransition: moderation applied to a non-pending review.
	ErrInvalidTransition = errors.New("invalid review moderation transition")
)

type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

type Review struct {
	ID         uint64           `gorm:"primaryKey;column:id" json:"-"`
	ReviewID   string           `gorm:"size:32;uniqueIndex:ux_reviews_review_id_active" json:"review_id"`
	BookID     uint64           `gorm:"column:book_id;not null;index" json:"-"`
	BorrowerID string           `gorm:"size:32;index" json:"borrower_id"`
	Rating     int              `gorm:"not null" json:"rating"`
	Comment    string           `gorm:"type:text" json:"comment"`
	Status     ModerationStatus `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (Review) TableName() string { return "reviews" }
