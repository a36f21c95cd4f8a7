package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"library-backend/internal/domain/book"
	"library-backend/internal/domain/favorite"
	"library-backend/internal/domain/loan"
	"library-backend/internal/domain/review"
	"library-backend/internal/domain/user"
)

// writeDomainError maps domain sentinels to HTTP codes. Anything not in
// the taxonomy is a backend failure: surfaced as 503, never retried here.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, book.ErrNotFound),
		errors.Is(err, review.ErrNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, favorite.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrUnavailable),
		errors.Is(err, loan.ErrInvalidTransition),
		errors.Is(err, review.ErrInvalidTransition),
		errors.Is(err, user.ErrEmailTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrNotOwner),
		errors.Is(err, review.ErrNotEligible):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, user.ErrInvalidCreds):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "backend unavailable"})
	}
}

// knownDomainErr reports whether err belongs to the domain taxonomy;
// create-style handlers treat everything else as bad input.
func knownDomainErr(err error) bool {
	for _, target := range []error{
		loan.ErrNotFound, book.ErrNotFound, review.ErrNotFound, user.ErrNotFound, favorite.ErrNotFound,
		loan.ErrUnavailable, loan.ErrInvalidTransition, review.ErrInvalidTransition,
		loan.ErrNotOwner, review.ErrNotEligible, user.ErrEmailTaken, user.ErrInvalidCreds,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func queryInt(c echo.Context, name string, def int) int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
