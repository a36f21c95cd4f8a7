package book

import "time"

type CreateBookInput struct {
	Title       string `json:"title"`
	AuthorID    string `json:"author_id"`
	CategoryID  string `json:"category_id"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url"`
	TotalCopies int    `json:"total_copies"`
}

type UpdateBookInput struct {
	BookID      string
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoverURL    *string `json:"cover_url"`
	TotalCopies *int    `json:"total_copies"`
}

type BookDTO struct {
	BookID          string    `json:"book_id"`
	Title           string    `json:"title"`
	AuthorID        string    `json:"author_id,omitempty"`
	AuthorName      string    `json:"author_name,omitempty"`
	CategoryID      string    `json:"category_id,omitempty"`
	CategoryName    string    `json:"category_name,omitempty"`
	Description     string    `json:"description"`
	CoverURL        string    `json:"cover_url"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
}

type BookPageDTO struct {
	Items      []BookDTO `json:"items"`
	TotalItems int64     `json:"totalItems"`
	PageSize   int       `json:"pageSize"`
	TotalPages int64     `json:"totalPages"`
}

type AuthorInput struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type AuthorDTO struct {
	AuthorID  string    `json:"author_id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryInput struct {
	Name string `json:"name"`
}

type CategoryDTO struct {
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}
