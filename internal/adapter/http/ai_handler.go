package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	usecaseAI "library-backend/internal/usecase/ai"
	usecaseBook "library-backend/internal/usecase/book"
)

type AIHandler struct {
	ai    *usecaseAI.Usecase
	books *usecaseBook.Usecase
}

func NewAIHandler(ai *usecaseAI.Usecase, books *usecaseBook.Usecase) *AIHandler {
	return &AIHandler{ai: ai, books: books}
}

type summaryRequest struct {
	Style string `json:"style" validate:"omitempty,oneof=brief detailed academic"`
}

// Summarize generates (or serves from cache) a summary of the book in
// the requested style. Upstream failures degrade to a canned fallback.
func (h *AIHandler) Summarize(c echo.Context) error {
	var req summaryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	b, err := h.books.Get(c.Request().Context(), c.Param("bookID"))
	if err != nil {
		return writeDomainError(c, err)
	}

	out, err := h.ai.Summarize(c.Request().Context(), usecaseAI.SummaryInput{
		BookID: b.BookID,
		Title:  b.Title,
		Author: b.AuthorName,
		Style:  usecaseAI.Style(req.Style),
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type chatRequest struct {
	Question string              `json:"question" validate:"required"`
	History  []usecaseAI.Message `json:"history"`
}

func (h *AIHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	b, err := h.books.Get(c.Request().Context(), c.Param("bookID"))
	if err != nil {
		return writeDomainError(c, err)
	}

	out, err := h.ai.Chat(c.Request().Context(), usecaseAI.ChatInput{
		Title:    b.Title,
		Question: req.Question,
		History:  req.History,
	})
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "assistant unavailable"})
	}
	return c.JSON(http.StatusOK, out)
}
