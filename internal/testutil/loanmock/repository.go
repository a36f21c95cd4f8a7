package loanmock

import (
	"context"
	"errors"

	domain "library-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies loan.Repository.
// Fill in the function fields a test needs; unfilled ones fail loudly.
type Repo struct {
	CreateFn                      func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn                 func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn        func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetPendingByBorrowerAndBookFn func(ctx context.Context, borrowerID string, bookID uint64) (*domain.Loan, error)
	ListFn                        func(ctx context.Context, f domain.Filter) ([]domain.Loan, error)
	HasReturnedFn                 func(ctx context.Context, borrowerID string, bookID uint64) (bool, error)
	SaveFn                        func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetPendingByBorrowerAndBook(ctx context.Context, borrowerID string, bookID uint64) (*domain.Loan, error) {
	if m.GetPendingByBorrowerAndBookFn != nil {
		return m.GetPendingByBorrowerAndBookFn(ctx, borrowerID, bookID)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, errUnimplemented
}

func (m *Repo) HasReturned(ctx context.Context, borrowerID string, bookID uint64) (bool, error) {
	if m.HasReturnedFn != nil {
		return m.HasReturnedFn(ctx, borrowerID, bookID)
	}
	return false, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
