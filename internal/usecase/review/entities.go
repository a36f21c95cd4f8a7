package review

import "time"

type CreateInput struct {
	BorrowerID string `json:"borrower_id"`
	BookID     string `json:"book_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type ReviewDTO struct {
	ReviewID   string    `json:"review_id"`
	BookID     string    `json:"book_id"`
	BorrowerID string    `json:"borrower_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type PageDTO struct {
	Items      []ReviewDTO `json:"items"`
	TotalItems int64       `json:"totalItems"`
	PageSize   int         `json:"pageSize"`
	TotalPages int64       `json:"totalPages"`
}
