package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"library-backend/internal/adapter/middleware"
	usecase "library-backend/internal/usecase/favorite"
)

type FavoriteHandler struct {
	uc *usecase.Usecase
}

func NewFavoriteHandler(uc *usecase.Usecase) *FavoriteHandler { return &FavoriteHandler{uc: uc} }

// Add is idempotent: favoriting a book twice is a no-op.
func (h *FavoriteHandler) Add(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}
	if err := h.uc.Add(c.Request().Context(), actor.ID, c.Param("bookID")); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"favorited": true})
}

func (h *FavoriteHandler) Remove(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}
	if err := h.uc.Remove(c.Request().Context(), actor.ID, c.Param("bookID")); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"favorited": false})
}

func (h *FavoriteHandler) Status(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}
	fav, err := h.uc.IsFavorited(c.Request().Context(), actor.ID, c.Param("bookID"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"favorited": fav})
}

func (h *FavoriteHandler) List(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
	}
	out, err := h.uc.List(c.Request().Context(), actor.ID, queryInt(c, "page", 1), queryInt(c, "pageSize", 20))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
