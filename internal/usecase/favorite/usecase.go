package favorite

import (
	"context"
	"errors"

	domainBook "library-backend/internal/domain/book"
	domain "library-backend/internal/domain/favorite"

	"gorm.io/gorm"
)

type Usecase struct {
	favorites domain.Repository
	books     domainBook.Repository
}

func NewUsecase(favorites domain.Repository, books domainBook.Repository) *Usecase {
	return &Usecase{favorites: favorites, books: books}
}

type PageDTO struct {
	Items      []BookRefDTO `json:"items"`
	TotalItems int64        `json:"totalItems"`
	PageSize   int          `json:"pageSize"`
	TotalPages int64        `json:"totalPages"`
}

type BookRefDTO struct {
	BookID   string `json:"book_id"`
	Title    string `json:"title"`
	CoverURL string `json:"cover_url"`
}

func (u *Usecase) Add(ctx context.Context, borrowerID, bookID string) error {
	b, err := u.books.GetByBookID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainBook.ErrNotFound
		}
		return err
	}
	exists, err := u.favorites.Exists(ctx, borrowerID, b.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil // already favorited, nothing to do
	}
	return u.favorites.Add(ctx, &domain.Favorite{BorrowerID: borrowerID, BookID: b.ID})
}

func (u *Usecase) Remove(ctx context.Context, borrowerID, bookID string) error {
	b, err := u.books.GetByBookID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainBook.ErrNotFound
		}
		return err
	}
	return u.favorites.Remove(ctx, borrowerID, b.ID)
}

func (u *Usecase) IsFavorited(ctx context.Context, borrowerID, bookID string) (bool, error) {
	b, err := u.books.GetByBookID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domainBook.ErrNotFound
		}
		return false, err
	}
	return u.favorites.Exists(ctx, borrowerID, b.ID)
}

func (u *Usecase) List(ctx context.Context, borrowerID string, page, pageSize int) (*PageDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	favs, total, err := u.favorites.ListByBorrower(ctx, borrowerID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(favs))
	for i := range favs {
		ids = append(ids, favs[i].BookID)
	}
	items := make([]BookRefDTO, 0, len(favs))
	if len(ids) > 0 {
		books, err := u.books.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		byID := make(map[uint64]*domainBook.Book, len(books))
		for i := range books {
			byID[books[i].ID] = &books[i]
		}
		for i := range favs {
			if b, ok := byID[favs[i].BookID]; ok {
				items = append(items, BookRefDTO{BookID: b.BookID, Title: b.Title, CoverURL: b.CoverURL})
			}
		}
	}
	return &PageDTO{
		Items:      items,
		TotalItems: total,
		PageSize:   pageSize,
		TotalPages: (total + int64(pageSize) - 1) / int64(pageSize),
	}, nil
}
