package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"library-backend/internal/adapter/middleware"
	"library-backend/internal/domain/user"
	usecase "library-backend/internal/usecase/review"
)

type ReviewHandler struct {
	uc *usecase.Usecase
}

func NewReviewHandler(uc *usecase.Usecase) *ReviewHandler { return &ReviewHandler{uc: uc} }

type createReviewRequest struct {
	BookID  string `json:"book_id" validate:"required,hex32"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// Create files a review. Eligibility (a completed loan of the book) is
// enforced in the usecase; the review starts pending moderation.
func (h *ReviewHandler) Create(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateInput{
		BorrowerID: actor.ID,
		BookID:     req.BookID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		if knownDomainErr(err) {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

// CanReview lets the portal decide whether to show the review form.
func (h *ReviewHandler) CanReview(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}
	eligible, err := h.uc.CanReview(c.Request().Context(), actor.ID, c.Param("bookID"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"can_review": eligible})
}

// ListForBook shows a book's reviews; unmoderated ones only to managers.
func (h *ReviewHandler) ListForBook(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	out, err := h.uc.ListForBook(c.Request().Context(), c.Param("bookID"), actor.Role == user.RoleManager)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// List is the moderation console feed.
func (h *ReviewHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), queryInt(c, "page", 1), queryInt(c, "pageSize", 20))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) Approve(c echo.Context) error {
	out, err := h.uc.Approve(c.Request().Context(), c.Param("reviewID"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) Reject(c echo.Context) error {
	out, err := h.uc.Reject(c.Request().Context(), c.Param("reviewID"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
