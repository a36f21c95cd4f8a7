package review

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainBook "library-backend/internal/domain/book"
	domain "library-backend/internal/domain/review"
	"library-backend/internal/testutil/bookmock"
	"library-backend/internal/testutil/loanmock"
	"library-backend/internal/testutil/reviewmock"

	"gorm.io/gorm"
)

var (
	borrower = strings.Repeat("a", 32)
	bookPub  = strings.Repeat("c", 32)
)

func bookRepo(b *domainBook.Book) *bookmock.Repo {
	return &bookmock.Repo{
		GetByBookIDFn: func(ctx context.Context, bookID string) (*domainBook.Book, error) {
			if b == nil || b.BookID != bookID {
				return nil, gorm.ErrRecordNotFound
			}
			return b, nil
		},
		GetByIDFn: func(ctx context.Context, id uint64) (*domainBook.Book, error) {
			if b == nil || b.ID != id {
				return nil, gorm.ErrRecordNotFound
			}
			return b, nil
		},
	}
}

func TestCanReview(t *testing.T) {
	b := &domainBook.Book{ID: 1, BookID: bookPub, Title: "Mythical Man-Month"}
	returned := false
	loans := &loanmock.Repo{
		HasReturnedFn: func(ctx context.Context, borrowerID string, bookID uint64) (bool, error) {
			return returned, nil
		},
	}
	uc := NewUsecase(&reviewmock.Repo{}, loans, bookRepo(b))

	ok, err := uc.CanReview(context.Background(), borrower, bookPub)
	if err != nil || ok {
		t.Fatalf("before any return: ok=%v err=%v, want false", ok, err)
	}

	returned = true
	ok, err = uc.CanReview(context.Background(), borrower, bookPub)
	if err != nil || !ok {
		t.Fatalf("after a completed loan: ok=%v err=%v, want true", ok, err)
	}

	if _, err := uc.CanReview(context.Background(), borrower, strings.Repeat("f", 32)); !errors.Is(err, domainBook.ErrNotFound) {
		t.Fatalf("unknown book err = %v, want ErrNotFound", err)
	}
}

func TestCreateRequiresCompletedLoan(t *testing.T) {
	b := &domainBook.Book{ID: 1, BookID: bookPub}
	loans := &loanmock.Repo{
		HasReturnedFn: func(ctx context.Context, borrowerID string, bookID uint64) (bool, error) {
			return false, nil
		},
	}
	uc := NewUsecase(&reviewmock.Repo{}, loans, bookRepo(b))

	_, err := uc.Create(context.Background(), CreateInput{BorrowerID: borrower, BookID: bookPub, Rating: 5})
	if !errors.Is(err, domain.ErrNotEligible) {
		t.Fatalf("err = %v, want ErrNotEligible", err)
	}
}

func TestCreateStartsPending(t *testing.T) {
	b := &domainBook.Book{ID: 1, BookID: bookPub}
	loans := &loanmock.Repo{
		HasReturnedFn: func(ctx context.Context, borrowerID string, bookID uint64) (bool, error) {
			return true, nil
		},
	}
	var stored *domain.Review
	reviews := &reviewmock.Repo{
		CreateFn: func(ctx context.Context, r *domain.Review) error { stored = r; return nil },
	}
	uc := NewUsecase(reviews, loans, bookRepo(b))

	dto, err := uc.Create(context.Background(), CreateInput{BorrowerID: borrower, BookID: bookPub, Rating: 4, Comment: "solid"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if stored == nil || stored.Status != domain.ModerationPending {
		t.Fatalf("stored = %+v, want pending moderation", stored)
	}
	if dto.Status != string(domain.ModerationPending) {
		t.Fatalf("dto status = %s", dto.Status)
	}
}

func TestCreateRejectsRatingOutOfRange(t *testing.T) {
	uc := NewUsecase(&reviewmock.Repo{}, &loanmock.Repo{}, bookRepo(nil))
	for _, rating := range []int{0, 6, -1} {
		if _, err := uc.Create(context.Background(), CreateInput{BorrowerID: borrower, BookID: bookPub, Rating: rating}); err == nil {
			t.Fatalf("rating %d must be rejected", rating)
		}
	}
}

func TestModeration(t *testing.T) {
	b := &domainBook.Book{ID: 1, BookID: bookPub}
	r := &domain.Review{ReviewID: strings.Repeat("e", 32), BookID: 1, BorrowerID: borrower, Rating: 4, Status: domain.ModerationPending}
	reviews := &reviewmock.Repo{
		GetByReviewIDFn: func(ctx context.Context, reviewID string) (*domain.Review, error) {
			if r.ReviewID != reviewID {
				return nil, gorm.ErrRecordNotFound
			}
			return r, nil
		},
	}
	uc := NewUsecase(reviews, &loanmock.Repo{}, bookRepo(b))

	dto, err := uc.Approve(context.Background(), r.ReviewID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if dto.Status != string(domain.ModerationApproved) {
		t.Fatalf("status = %s, want approved", dto.Status)
	}

	// moderation is one-shot
	if _, err := uc.Reject(context.Background(), r.ReviewID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("re-moderation err = %v, want ErrInvalidTransition", err)
	}

	if _, err := uc.Approve(context.Background(), strings.Repeat("f", 32)); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown review err = %v, want ErrNotFound", err)
	}
}

func TestListForBookFiltersUnmoderated(t *testing.T) {
	b := &domainBook.Book{ID: 1, BookID: bookPub}
	var askedStatus domain.ModerationStatus
	reviews := &reviewmock.Repo{
		ListByBookIDFn: func(ctx context.Context, bookID uint64, status domain.ModerationStatus) ([]domain.Review, error) {
			askedStatus = status
			return nil, nil
		},
	}
	uc := NewUsecase(reviews, &loanmock.Repo{}, bookRepo(b))

	if _, err := uc.ListForBook(context.Background(), bookPub, false); err != nil {
		t.Fatalf("ListForBook: %v", err)
	}
	if askedStatus != domain.ModerationApproved {
		t.Fatalf("borrower view asked for status %q, want approved only", askedStatus)
	}

	if _, err := uc.ListForBook(context.Background(), bookPub, true); err != nil {
		t.Fatalf("ListForBook manager: %v", err)
	}
	if askedStatus != "" {
		t.Fatalf("manager view asked for status %q, want all", askedStatus)
	}
}
