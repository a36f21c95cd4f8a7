package book

import (
	"context"
	"errors"

	domain "library-backend/internal/domain/book"
	"library-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	books      domain.Repository
	authors    domain.AuthorRepository
	categories domain.CategoryRepository
}

func NewUsecase(books domain.Repository, authors domain.AuthorRepository, categories domain.CategoryRepository) *Usecase {
	return &Usecase{books: books, authors: authors, categories: categories}
}

func (u *Usecase) Create(ctx context.Context, in CreateBookInput) (*BookDTO, error) {
	if in.Title == "" {
		return nil, errors.New("title is required")
	}
	if in.TotalCopies < 1 {
		in.TotalCopies = 1
	}

	b := &domain.Book{
		BookID:          id.NewID32(),
		Title:           in.Title,
		Description:     in.Description,
		CoverURL:        in.CoverURL,
		TotalCopies:     in.TotalCopies,
		AvailableCopies: in.TotalCopies,
	}
	if in.AuthorID != "" {
		a, err := u.authors.GetByAuthorID(ctx, in.AuthorID)
		if err != nil {
			return nil, notFound(err)
		}
		b.AuthorID = a.ID
	}
	if in.CategoryID != "" {
		c, err := u.categories.GetByCategoryID(ctx, in.CategoryID)
		if err != nil {
			return nil, notFound(err)
		}
		b.CategoryID = c.ID
	}
	if err := u.books.Create(ctx, b); err != nil {
		return nil, err
	}
	return u.toDTO(ctx, b), nil
}

func (u *Usecase) Get(ctx context.Context, bookID string) (*BookDTO, error) {
	b, err := u.books.GetByBookID(ctx, bookID)
	if err != nil {
		return nil, notFound(err)
	}
	return u.toDTO(ctx, b), nil
}

func (u *Usecase) Update(ctx context.Context, in UpdateBookInput) (*BookDTO, error) {
	b, err := u.books.GetByBookID(ctx, in.BookID)
	if err != nil {
		return nil, notFound(err)
	}
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.CoverURL != nil {
		b.CoverURL = *in.CoverURL
	}
	if in.TotalCopies != nil && *in.TotalCopies >= 1 {
		// Growing/shrinking the stock moves the available count by the
		// same delta but never below zero (copies out on loan stay out).
		delta := *in.TotalCopies - b.TotalCopies
		b.TotalCopies = *in.TotalCopies
		if b.AvailableCopies+delta >= 0 {
			b.AvailableCopies += delta
		} else {
			b.AvailableCopies = 0
		}
	}
	if err := u.books.Save(ctx, b); err != nil {
		return nil, err
	}
	return u.toDTO(ctx, b), nil
}

func (u *Usecase) Delete(ctx context.Context, bookID string) error {
	b, err := u.books.GetByBookID(ctx, bookID)
	if err != nil {
		return notFound(err)
	}
	return u.books.Delete(ctx, b)
}

// List pages through the catalog; search matches against the title.
func (u *Usecase) List(ctx context.Context, search string, page, pageSize int) (*BookPageDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	books, total, err := u.books.List(ctx, search, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	items := make([]BookDTO, 0, len(books))
	for i := range books {
		items = append(items, *u.toDTO(ctx, &books[i]))
	}
	return &BookPageDTO{
		Items:      items,
		TotalItems: total,
		PageSize:   pageSize,
		TotalPages: (total + int64(pageSize) - 1) / int64(pageSize),
	}, nil
}

// ---- authors ----

func (u *Usecase) CreateAuthor(ctx context.Context, in AuthorInput) (*AuthorDTO, error) {
	if in.Name == "" {
		return nil, errors.New("name is required")
	}
	a := &domain.Author{AuthorID: id.NewID32(), Name: in.Name, Bio: in.Bio}
	if err := u.authors.Create(ctx, a); err != nil {
		return nil, err
	}
	return authorDTO(a), nil
}

func (u *Usecase) UpdateAuthor(ctx context.Context, authorID string, in AuthorInput) (*AuthorDTO, error) {
	a, err := u.authors.GetByAuthorID(ctx, authorID)
	if err != nil {
		return nil, notFound(err)
	}
	if in.Name != "" {
		a.Name = in.Name
	}
	a.Bio = in.Bio
	if err := u.authors.Save(ctx, a); err != nil {
		return nil, err
	}
	return authorDTO(a), nil
}

func (u *Usecase) DeleteAuthor(ctx context.Context, authorID string) error {
	a, err := u.authors.GetByAuthorID(ctx, authorID)
	if err != nil {
		return notFound(err)
	}
	return u.authors.Delete(ctx, a)
}

func (u *Usecase) ListAuthors(ctx context.Context, page, pageSize int) ([]AuthorDTO, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	as, total, err := u.authors.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]AuthorDTO, 0, len(as))
	for i := range as {
		out = append(out, *authorDTO(&as[i]))
	}
	return out, total, nil
}

// ---- categories ----

func (u *Usecase) CreateCategory(ctx context.Context, in CategoryInput) (*CategoryDTO, error) {
	if in.Name == "" {
		return nil, errors.New("name is required")
	}
	c := &domain.Category{CategoryID: id.NewID32(), Name: in.Name}
	if err := u.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return categoryDTO(c), nil
}

func (u *Usecase) UpdateCategory(ctx context.Context, categoryID string, in CategoryInput) (*CategoryDTO, error) {
	c, err := u.categories.GetByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, notFound(err)
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	if err := u.categories.Save(ctx, c); err != nil {
		return nil, err
	}
	return categoryDTO(c), nil
}

func (u *Usecase) DeleteCategory(ctx context.Context, categoryID string) error {
	c, err := u.categories.GetByCategoryID(ctx, categoryID)
	if err != nil {
		return notFound(err)
	}
	return u.categories.Delete(ctx, c)
}

func (u *Usecase) ListCategories(ctx context.Context, page, pageSize int) ([]CategoryDTO, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	cs, total, err := u.categories.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]CategoryDTO, 0, len(cs))
	for i := range cs {
		out = append(out, *categoryDTO(&cs[i]))
	}
	return out, total, nil
}

// ---- helpers ----

func (u *Usecase) toDTO(ctx context.Context, b *domain.Book) *BookDTO {
	dto := &BookDTO{
		BookID:          b.BookID,
		Title:           b.Title,
		Description:     b.Description,
		CoverURL:        b.CoverURL,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
		CreatedAt:       b.CreatedAt,
	}
	if b.AuthorID != 0 {
		if a, err := u.authors.GetByID(ctx, b.AuthorID); err == nil {
			dto.AuthorID = a.AuthorID
			dto.AuthorName = a.Name
		}
	}
	if b.CategoryID != 0 {
		if c, err := u.categories.GetByID(ctx, b.CategoryID); err == nil {
			dto.CategoryID = c.CategoryID
			dto.CategoryName = c.Name
		}
	}
	return dto
}

func authorDTO(a *domain.Author) *AuthorDTO {
	return &AuthorDTO{AuthorID: a.AuthorID, Name: a.Name, Bio: a.Bio, CreatedAt: a.CreatedAt}
}

func categoryDTO(c *domain.Category) *CategoryDTO {
	return &CategoryDTO{CategoryID: c.CategoryID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
