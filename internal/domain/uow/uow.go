package uow

import (
	"context"

	"library-backend/internal/domain/book"
	"library-backend/internal/domain/loan"
	"library-backend/internal/domain/review"
)

// Repos bundles the repositories a single transaction may touch.
type Repos struct {
	Loans   loan.Repository
	Books   book.Repository
	Reviews review.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
