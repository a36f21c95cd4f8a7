package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	usecase "library-backend/internal/usecase/book"
)

type BookHandler struct {
	uc *usecase.Usecase
}

func NewBookHandler(uc *usecase.Usecase) *BookHandler { return &BookHandler{uc: uc} }

type createBookRequest struct {
	Title       string `json:"title" validate:"required"`
	AuthorID    string `json:"author_id" validate:"omitempty,hex32"`
	CategoryID  string `json:"category_id" validate:"omitempty,hex32"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url"`
	TotalCopies int    `json:"total_copies" validate:"omitempty,gte=1"`
}

type updateBookRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoverURL    *string `json:"cover_url"`
	TotalCopies *int    `json:"total_copies" validate:"omitempty,gte=1"`
}

func (h *BookHandler) Create(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateBookInput{
		Title:       req.Title,
		AuthorID:    req.AuthorID,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		if knownDomainErr(err) {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *BookHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("bookID"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BookHandler) Update(c echo.Context) error {
	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	out, err := h.uc.Update(c.Request().Context(), usecase.UpdateBookInput{
		BookID:      c.Param("bookID"),
		Title:       req.Title,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("bookID")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BookHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.QueryParam("search"), queryInt(c, "page", 1), queryInt(c, "pageSize", 20))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ---- authors ----

type authorRequest struct {
	Name string `json:"name" validate:"required"`
	Bio  string `json:"bio"`
}

func (h *BookHandler) CreateAuthor(c echo.Context) error {
	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.CreateAuthor(c.Request().Context(), usecase.AuthorInput{Name: req.Name, Bio: req.Bio})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *BookHandler) UpdateAuthor(c echo.Context) error {
	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	out, err := h.uc.UpdateAuthor(c.Request().Context(), c.Param("authorID"), usecase.AuthorInput{Name: req.Name, Bio: req.Bio})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BookHandler) DeleteAuthor(c echo.Context) error {
	if err := h.uc.DeleteAuthor(c.Request().Context(), c.Param("authorID")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BookHandler) ListAuthors(c echo.Context) error {
	pageSize := queryInt(c, "pageSize", 20)
	items, total, err := h.uc.ListAuthors(c.Request().Context(), queryInt(c, "page", 1), pageSize)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items":      items,
		"totalItems": total,
		"pageSize":   pageSize,
	})
}

// ---- categories ----

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *BookHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	out, err := h.uc.CreateCategory(c.Request().Context(), usecase.CategoryInput{Name: req.Name})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *BookHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	out, err := h.uc.UpdateCategory(c.Request().Context(), c.Param("categoryID"), usecase.CategoryInput{Name: req.Name})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BookHandler) DeleteCategory(c echo.Context) error {
	if err := h.uc.DeleteCategory(c.Request().Context(), c.Param("categoryID")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BookHandler) ListCategories(c echo.Context) error {
	pageSize := queryInt(c, "pageSize", 50)
	items, total, err := h.uc.ListCategories(c.Request().Context(), queryInt(c, "page", 1), pageSize)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items":      items,
		"totalItems": total,
		"pageSize":   pageSize,
	})
}
