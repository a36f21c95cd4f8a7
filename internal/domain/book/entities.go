package book

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("book not found")
	ErrNoCopies = errors.New("no available copies")
)

type Book struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	BookID          string         `gorm:"size:32;uniqueIndex:ux_books_book_id_active" json:"book_id"`
	Title           string         `gorm:"size:255;not null;index" json:"title"`
	AuthorID        uint64         `gorm:"column:author_id;index" json:"-"`
	CategoryID      uint64         `gorm:"column:category_id;index" json:"-"`
	Description     string         `gorm:"type:text" json:"description"`
	CoverURL        string         `gorm:"type:text" json:"cover_url"`
	TotalCopies     int            `gorm:"column:total_copies;not null;default:1" json:"total_copies"`
	AvailableCopies int            `gorm:"column:available_copies;not null;default:1" json:"available_copies"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Book) TableName() string { return "books" }

type Author struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	AuthorID  string         `gorm:"size:32;uniqueIndex:ux_authors_author_id_active" json:"author_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Bio       string         `gorm:"type:text" json:"bio"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Author) TableName() string { return "authors" }

type Category struct {
	ID         uint64         `gorm:"primaryKey;column:id" json:"-"`
	CategoryID string         `gorm:"size:32;uniqueIndex:ux_categories_category_id_active" json:"category_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Category) TableName() string { return "categories" }
