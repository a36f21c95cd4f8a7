package favorite

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainBook "library-backend/internal/domain/book"
	domain "library-backend/internal/domain/favorite"
	"library-backend/internal/testutil/bookmock"
	"library-backend/internal/testutil/favoritemock"

	"gorm.io/gorm"
)

var (
	borrower = strings.Repeat("a", 32)
	bookPub  = strings.Repeat("c", 32)
)

func books(b *domainBook.Book) *bookmock.Repo {
	return &bookmock.Repo{
		GetByBookIDFn: func(ctx context.Context, bookID string) (*domainBook.Book, error) {
			if b == nil || b.BookID != bookID {
				return nil, gorm.ErrRecordNotFound
			}
			return b, nil
		},
	}
}

func TestAddIsIdempotent(t *testing.T) {
	b := &domainBook.Book{ID: 1, BookID: bookPub, Title: "Clean Code"}
	added := 0
	exists := false
	favs := &favoritemock.Repo{
		ExistsFn: func(ctx context.Context, borrowerID string, bookID uint64) (bool, error) {
			return exists, nil
		},
		AddFn: func(ctx context.Context, f *domain.Favorite) error {
			added++
			exists = true
			return nil
		},
	}
	uc := NewUsecase(favs, books(b))

	if err := uc.Add(context.Background(), borrower, bookPub); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := uc.Add(context.Background(), borrower, bookPub); err != nil {
		t.Fatalf("second Add: %v", err)
	}
	if added != 1 {
		t.Fatalf("rows added = %d, want 1", added)
	}

	if err := uc.Add(context.Background(), borrower, strings.Repeat("f", 32)); !errors.Is(err, domainBook.ErrNotFound) {
		t.Fatalf("unknown book err = %v, want ErrNotFound", err)
	}
}

func TestRemoveUnknownFavorite(t *testing.T) {
	b := &domainBook.Book{ID: 1, BookID: bookPub}
	favs := &favoritemock.Repo{
		RemoveFn: func(ctx context.Context, borrowerID string, bookID uint64) error {
			return domain.ErrNotFound
		},
	}
	uc := NewUsecase(favs, books(b))

	if err := uc.Remove(context.Background(), borrower, bookPub); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListJoinsBooks(t *testing.T) {
	b := &domainBook.Book{ID: 1, BookID: bookPub, Title: "Clean Code", CoverURL: "http://covers/cc.png"}
	favs := &favoritemock.Repo{
		ListByBorrowerFn: func(ctx context.Context, borrowerID string, offset, limit int) ([]domain.Favorite, int64, error) {
			return []domain.Favorite{{BorrowerID: borrowerID, BookID: 1}}, 1, nil
		},
	}
	br := books(b)
	br.GetByIDsFn = func(ctx context.Context, ids []uint64) ([]domainBook.Book, error) {
		return []domainBook.Book{*b}, nil
	}
	uc := NewUsecase(favs, br)

	page, err := uc.List(context.Background(), borrower, 1, 20)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.TotalItems != 1 || len(page.Items) != 1 {
		t.Fatalf("page = %+v", page)
	}
	if page.Items[0].Title != "Clean Code" || page.Items[0].BookID != bookPub {
		t.Fatalf("item = %+v", page.Items[0])
	}
}
