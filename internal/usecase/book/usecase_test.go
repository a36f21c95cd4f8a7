package book

import (
	"context"
	"errors"
	"strings"
	"testing"

	domain "library-backend/internal/domain/book"
	"library-backend/internal/testutil/bookmock"

	"gorm.io/gorm"
)

func repoWith(b *domain.Book) *bookmock.Repo {
	return &bookmock.Repo{
		GetByBookIDFn: func(ctx context.Context, bookID string) (*domain.Book, error) {
			if b == nil || b.BookID != bookID {
				return nil, gorm.ErrRecordNotFound
			}
			return b, nil
		},
	}
}

func authorRepo() *bookmock.AuthorRepo     { return &bookmock.AuthorRepo{} }
func categoryRepo() *bookmock.CategoryRepo { return &bookmock.CategoryRepo{} }

func TestCreateBookInitialisesStock(t *testing.T) {
	var stored *domain.Book
	books := &bookmock.Repo{
		CreateFn: func(ctx context.Context, b *domain.Book) error { stored = b; return nil },
	}
	uc := NewUsecase(books, authorRepo(), categoryRepo())

	dto, err := uc.Create(context.Background(), CreateBookInput{Title: "Clean Code", TotalCopies: 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if stored.AvailableCopies != 3 || dto.AvailableCopies != 3 {
		t.Fatalf("available = %d/%d, want all copies on the shelf", stored.AvailableCopies, dto.AvailableCopies)
	}
	if len(stored.BookID) != 32 {
		t.Fatalf("public id = %q, want 32-char hex", stored.BookID)
	}

	if _, err := uc.Create(context.Background(), CreateBookInput{}); err == nil {
		t.Fatal("missing title must be rejected")
	}
}

func TestUpdateBookAdjustsAvailability(t *testing.T) {
	// 5 total, 2 on loan → 3 available
	b := &domain.Book{ID: 1, BookID: strings.Repeat("c", 32), Title: "DDD", TotalCopies: 5, AvailableCopies: 3}
	uc := NewUsecase(repoWith(b), authorRepo(), categoryRepo())

	ten := 10
	dto, err := uc.Update(context.Background(), UpdateBookInput{BookID: b.BookID, TotalCopies: &ten})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if dto.TotalCopies != 10 || dto.AvailableCopies != 8 {
		t.Fatalf("stock = %d/%d, want 10 total with 8 available", dto.TotalCopies, dto.AvailableCopies)
	}

	// shrinking below the loaned-out count floors availability at zero
	one := 1
	dto, err = uc.Update(context.Background(), UpdateBookInput{BookID: b.BookID, TotalCopies: &one})
	if err != nil {
		t.Fatalf("Update shrink: %v", err)
	}
	if dto.AvailableCopies != 0 {
		t.Fatalf("available = %d, want 0", dto.AvailableCopies)
	}
}

func TestGetBookNotFound(t *testing.T) {
	uc := NewUsecase(repoWith(nil), authorRepo(), categoryRepo())
	_, err := uc.Get(context.Background(), strings.Repeat("f", 32))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
