package loan

import "context"

// Filter narrows List to stored columns only; derived-overdue filtering
// happens in the usecase so the classification rule lives in one place.
type Filter struct {
	BorrowerID string
	BookID     uint64
	Status     Status
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetPendingByBorrowerAndBook(ctx context.Context, borrowerID string, bookID uint64) (*Loan, error)
	List(ctx context.Context, f Filter) ([]Loan, error)
	// HasReturned reports whether the borrower ever completed a loan of
	// the book; gates review creation.
	HasReturned(ctx context.Context, borrowerID string, bookID uint64) (bool, error)
	Save(ctx context.Context, l *Loan) error
}
