package loan

import (
	"time"

	"library-backend/internal/domain/user"
)

type RequestInput struct {
	BorrowerID   string `json:"borrower_id"`
	BookID       string `json:"book_id"`
	DurationDays int    `json:"duration_days"`
}

type ApproveInput struct {
	LoanID string
}

type CancelInput struct {
	LoanID     string
	BorrowerID string
}

type ReturnInput struct {
	LoanID    string
	ActorID   string
	ActorRole user.Role
}

type RenewInput struct {
	LoanID    string
	ActorID   string
	ActorRole user.Role
}

type PayFineInput struct {
	LoanID     string
	BorrowerID string
}

type ListInput struct {
	BorrowerID string
	// Status filters on the effective (derived) status; "" means all.
	Status string
}

// LoanDTO is the actor-facing projection: status is the derived one and
// fine_amount reflects the stored charge for returned loans or the fine
// accruing right now for open ones.
type LoanDTO struct {
	LoanID       string     `json:"loan_id"`
	BookID       string     `json:"book_id"`
	BookTitle    string     `json:"book_title,omitempty"`
	BorrowerID   string     `json:"borrower_id"`
	DurationDays int        `json:"duration_days"`
	RequestDate  time.Time  `json:"request_date"`
	ApprovedDate *time.Time `json:"approved_date,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
	Status       string     `json:"status"`
	FineAmount   float64    `json:"fine_amount"`
	FinePaid     bool       `json:"fine_paid"`
	RenewCount   int        `json:"renew_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

// SummaryDTO feeds the dashboards: counts by effective status plus the
// sum of unpaid fines.
type SummaryDTO struct {
	Active           int     `json:"active"`
	Pending          int     `json:"pending"`
	Completed        int     `json:"completed"`
	Overdue          int     `json:"overdue"`
	OutstandingFines float64 `json:"outstanding_fines"`
}
