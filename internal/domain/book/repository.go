package book

import "context"

type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByBookID(ctx context.Context, bookID string) (*Book, error)
	GetByID(ctx context.Context, id uint64) (*Book, error)
	// GetByIDForUpdate locks the row; used inside loan transactions that
	// mutate the available-copy count.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Book, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]Book, error)
	List(ctx context.Context, search string, offset, limit int) ([]Book, int64, error)
	Save(ctx context.Context, b *Book) error
	Delete(ctx context.Context, b *Book) error
}

type AuthorRepository interface {
	Create(ctx context.Context, a *Author) error
	GetByAuthorID(ctx context.Context, authorID string) (*Author, error)
	GetByID(ctx context.Context, id uint64) (*Author, error)
	List(ctx context.Context, offset, limit int) ([]Author, int64, error)
	Save(ctx context.Context, a *Author) error
	Delete(ctx context.Context, a *Author) error
}

type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	GetByCategoryID(ctx context.Context, categoryID string) (*Category, error)
	GetByID(ctx context.Context, id uint64) (*Category, error)
	List(ctx context.Context, offset, limit int) ([]Category, int64, error)
	Save(ctx context.Context, c *Category) error
	Delete(ctx context.Context, c *Category) error
}
