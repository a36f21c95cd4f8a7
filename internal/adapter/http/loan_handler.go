package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"library-backend/internal/adapter/middleware"
	"library-backend/internal/domain/user"
	usecase "library-backend/internal/usecase/loan"
)

type LoanHandler struct {
	uc *usecase.Usecase
}

func NewLoanHandler(uc *usecase.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanRequest struct {
	BookID       string `json:"book_id" validate:"required,hex32"`
	DurationDays int    `json:"duration_days" validate:"omitempty,loandur"`
}

// Create files a borrow request; the loan starts pending until a manager
// approves it.
func (h *LoanHandler) Create(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}

	var req createLoanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	out, err := h.uc.Request(c.Request().Context(), usecase.RequestInput{
		BorrowerID:   actor.ID,
		BookID:       req.BookID,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		if knownDomainErr(err) {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *LoanHandler) Get(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}
	out, err := h.uc.Get(c.Request().Context(), c.Param("loanID"), actor.ID, actor.Role)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// List is the manager view over all loans; ?status= filters on the
// effective status, including the derived "overdue".
func (h *LoanHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), usecase.ListInput{
		BorrowerID: c.QueryParam("borrower_id"),
		Status:     c.QueryParam("status"),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ListMine is the borrower portal view of the caller's own loans.
func (h *LoanHandler) ListMine(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}
	out, err := h.uc.ListMine(c.Request().Context(), actor.ID, c.QueryParam("status"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Summary feeds the dashboard counters. Managers see the whole library;
// borrowers see their own slice.
func (h *LoanHandler) Summary(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}
	borrowerID := actor.ID
	if actor.Role == user.RoleManager {
		borrowerID = c.QueryParam("borrower_id")
	}
	out, err := h.uc.Summary(c.Request().Context(), borrowerID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Approve(c echo.Context) error {
	out, err := h.uc.Approve(c.Request().Context(), usecase.ApproveInput{LoanID: c.Param("loanID")})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Return(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}
	out, err := h.uc.Return(c.Request().Context(), usecase.ReturnInput{
		LoanID:    c.Param("loanID"),
		ActorID:   actor.ID,
		ActorRole: actor.Role,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Cancel(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}
	out, err := h.uc.Cancel(c.Request().Context(), usecase.CancelInput{
		LoanID:     c.Param("loanID"),
		BorrowerID: actor.ID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Renew(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}
	out, err := h.uc.Renew(c.Request().Context(), usecase.RenewInput{
		LoanID:    c.Param("loanID"),
		ActorID:   actor.ID,
		ActorRole: actor.Role,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) PayFine(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}
	out, err := h.uc.PayFine(c.Request().Context(), usecase.PayFineInput{
		LoanID:     c.Param("loanID"),
		BorrowerID: actor.ID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
