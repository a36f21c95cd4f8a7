package review

import (
	"context"
	"errors"
	"fmt"

	domainBook "library-backend/internal/domain/book"
	domainLoan "library-backend/internal/domain/loan"
	domain "library-backend/internal/domain/review"
	"library-backend/pkg/id"

	"gorm.io/gorm"
)

// Usecase enforces the review-on-return rule: a borrower may review a
// book only after completing (returning) a loan of it. Moderation of the
// created review is a separate manager concern.
type Usecase struct {
	reviews domain.Repository
	loans   domainLoan.Repository
	books   domainBook.Repository
}

func NewUsecase(reviews domain.Repository, loans domainLoan.Repository, books domainBook.Repository) *Usecase {
	return &Usecase{reviews: reviews, loans: loans, books: books}
}

// CanReview reports whether at least one loan for the (borrower, book)
// pair reached the returned state.
func (u *Usecase) CanReview(ctx context.Context, borrowerID, bookID string) (bool, error) {
	b, err := u.books.GetByBookID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domainBook.ErrNotFound
		}
		return false, err
	}
	return u.loans.HasReturned(ctx, borrowerID, b.ID)
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ReviewDTO, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("rating %d out of range 1..5", in.Rating)
	}
	b, err := u.books.GetByBookID(ctx, in.BookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainBook.ErrNotFound
		}
		return nil, err
	}

	ok, err := u.loans.HasReturned(ctx, in.BorrowerID, b.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotEligible
	}

	r := &domain.Review{
		ReviewID:   id.NewID32(),
		BookID:     b.ID,
		BorrowerID: in.BorrowerID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		Status:     domain.ModerationPending,
	}
	if err := u.reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	return toDTO(r, b.BookID), nil
}

func (u *Usecase) Approve(ctx context.Context, reviewID string) (*ReviewDTO, error) {
	return u.moderate(ctx, reviewID, domain.ModerationApproved)
}

func (u *Usecase) Reject(ctx context.Context, reviewID string) (*ReviewDTO, error) {
	return u.moderate(ctx, reviewID, domain.ModerationRejected)
}

func (u *Usecase) moderate(ctx context.Context, reviewID string, to domain.ModerationStatus) (*ReviewDTO, error) {
	r, err := u.reviews.GetByReviewID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if r.Status != domain.ModerationPending {
		return nil, domain.ErrInvalidTransition
	}
	r.Status = to
	if err := u.reviews.Save(ctx, r); err != nil {
		return nil, err
	}
	b, _ := u.books.GetByID(ctx, r.BookID)
	pub := ""
	if b != nil {
		pub = b.BookID
	}
	return toDTO(r, pub), nil
}

// ListForBook returns a book's reviews. Borrowers only see approved
// ones; managers see everything.
func (u *Usecase) ListForBook(ctx context.Context, bookID string, includeUnmoderated bool) ([]ReviewDTO, error) {
	b, err := u.books.GetByBookID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainBook.ErrNotFound
		}
		return nil, err
	}
	status := domain.ModerationApproved
	if includeUnmoderated {
		status = ""
	}
	rs, err := u.reviews.ListByBookID(ctx, b.ID, status)
	if err != nil {
		return nil, err
	}
	out := make([]ReviewDTO, 0, len(rs))
	for i := range rs {
		out = append(out, *toDTO(&rs[i], b.BookID))
	}
	return out, nil
}

// List pages through every review for the moderation console.
func (u *Usecase) List(ctx context.Context, page, pageSize int) (*PageDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	rs, total, err := u.reviews.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(rs))
	for i := range rs {
		ids = append(ids, rs[i].BookID)
	}
	pub := map[uint64]string{}
	if len(ids) > 0 {
		books, err := u.books.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range books {
			pub[books[i].ID] = books[i].BookID
		}
	}

	items := make([]ReviewDTO, 0, len(rs))
	for i := range rs {
		items = append(items, *toDTO(&rs[i], pub[rs[i].BookID]))
	}
	return &PageDTO{
		Items:      items,
		TotalItems: total,
		PageSize:   pageSize,
		TotalPages: (total + int64(pageSize) - 1) / int64(pageSize),
	}, nil
}

func toDTO(r *domain.Review, bookPublicID string) *ReviewDTO {
	return &ReviewDTO{
		ReviewID:   r.ReviewID,
		BookID:     bookPublicID,
		BorrowerID: r.BorrowerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}
