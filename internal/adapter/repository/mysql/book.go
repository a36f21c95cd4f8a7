package mysql

import (
	"context"

	bookDomain "library-backend/internal/domain/book"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRepository struct{ db *gorm.DB }

func NewBookRepository(db *gorm.DB) *BookRepository { return &BookRepository{db: db} }

func (r *BookRepository) Create(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookRepository) Save(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookRepository) Delete(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Delete(b).Error
}

func (r *BookRepository) GetByBookID(ctx context.Context, bookID string) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := r.db.WithContext(ctx).Where("book_id = ?", bookID).First(&out)
	return &out, res.Error
}

func (r *BookRepository) GetByID(ctx context.Context, id uint64) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *BookRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *BookRepository) GetByIDs(ctx context.Context, ids []uint64) ([]bookDomain.Book, error) {
	var out []bookDomain.Book
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out)
	return out, res.Error
}

func (r *BookRepository) List(ctx context.Context, search string, offset, limit int) ([]bookDomain.Book, int64, error) {
	q := r.db.WithContext(ctx).Model(&bookDomain.Book{})
	if search != "" {
		q = q.Where("title LIKE ?", "%"+search+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []bookDomain.Book
	res := q.Order("title ASC, id ASC").Offset(offset).Limit(limit).Find(&out)
	return out, total, res.Error
}

// ---- authors ----

type AuthorRepository struct{ db *gorm.DB }

func NewAuthorRepository(db *gorm.DB) *AuthorRepository { return &AuthorRepository{db: db} }

func (r *AuthorRepository) Create(ctx context.Context, a *bookDomain.Author) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AuthorRepository) Save(ctx context.Context, a *bookDomain.Author) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AuthorRepository) Delete(ctx context.Context, a *bookDomain.Author) error {
	return r.db.WithContext(ctx).Delete(a).Error
}

func (r *AuthorRepository) GetByAuthorID(ctx context.Context, authorID string) (*bookDomain.Author, error) {
	var out bookDomain.Author
	res := r.db.WithContext(ctx).Where("author_id = ?", authorID).First(&out)
	return &out, res.Error
}

func (r *AuthorRepository) GetByID(ctx context.Context, id uint64) (*bookDomain.Author, error) {
	var out bookDomain.Author
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *AuthorRepository) List(ctx context.Context, offset, limit int) ([]bookDomain.Author, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&bookDomain.Author{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []bookDomain.Author
	res := r.db.WithContext(ctx).Order("name ASC").Offset(offset).Limit(limit).Find(&out)
	return out, total, res.Error
}

// ---- categories ----

type CategoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{db: db} }

func (r *CategoryRepository) Create(ctx context.Context, c *bookDomain.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) Save(ctx context.Context, c *bookDomain.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, c *bookDomain.Category) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

func (r *CategoryRepository) GetByCategoryID(ctx context.Context, categoryID string) (*bookDomain.Category, error) {
	var out bookDomain.Category
	res := r.db.WithContext(ctx).Where("category_id = ?", categoryID).First(&out)
	return &out, res.Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint64) (*bookDomain.Category, error) {
	var out bookDomain.Category
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *CategoryRepository) List(ctx context.Context, offset, limit int) ([]bookDomain.Category, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&bookDomain.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []bookDomain.Category
	res := r.db.WithContext(ctx).Order("name ASC").Offset(offset).Limit(limit).Find(&out)
	return out, total, res.Error
}
