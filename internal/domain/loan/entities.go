package loan

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusReturned  Status = "returned"
	StatusCancelled Status = "cancelled"

	// StatusOverdue is a read-time classification, never persisted.
	// A loan is overdue when it is approved and past its due date; the
	// stored column keeps "approved" so stored and computed truth cannot
	// diverge. See EffectiveStatus.
	StatusOverdue Status = "overdue"
)

const (
	// DefaultDurationDays applies when the borrower does not pick a duration.
	DefaultDurationDays = 30
	// MaxRenewals caps how often a single loan may be renewed.
	MaxRenewals = 2
	// RenewExtensionDays is the fixed due-date extension per renewal.
	RenewExtensionDays = 14
)

// AllowedDurations is the set of loan durations a borrower may request.
var AllowedDurations = []int{7, 14, 30, 60}

func DurationAllowed(days int) bool {
	for _, d := range AllowedDurations {
		if d == days {
			return true
		}
	}
	return false
}

type Loan struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID       string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	BookID       uint64         `gorm:"column:book_id;not null;index" json:"-"`
	BorrowerID   string         `gorm:"size:32;index:idx_loans_borrower_active" json:"borrower_id"`
	DurationDays int            `gorm:"column:duration_days;not null" json:"duration_days"`
	RequestDate  time.Time      `gorm:"column:request_date;not null" json:"request_date"`
	ApprovedDate *time.Time     `gorm:"column:approved_date" json:"approved_date,omitempty"`
	DueDate      *time.Time     `gorm:"column:due_date" json:"due_date,omitempty"`
	ReturnDate   *time.Time     `gorm:"column:return_date" json:"return_date,omitempty"`
	Status       Status         `gorm:"type:enum('pending','approved','returned','cancelled');default:'pending'" json:"status"`
	FineAmount   float64        `gorm:"type:decimal(18,2);default:0" json:"fine_amount"`
	FinePaid     bool           `gorm:"column:fine_paid;default:false" json:"fine_paid"`
	FinePaidAt   *time.Time     `gorm:"column:fine_paid_at" json:"fine_paid_at,omitempty"`
	RenewCount   int            `gorm:"column:renew_count;default:0" json:"renew_count"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// EffectiveStatus maps the stored status to the one actors see: an
// approved loan past its due date reads as overdue. Every list, count and
// dashboard projection must go through this so filtering stays consistent.
func (l *Loan) EffectiveStatus(now time.Time) Status {
	if l.Status == StatusApproved && l.DueDate != nil && now.After(*l.DueDate) {
		return StatusOverdue
	}
	return l.Status
}

// AccruedFine is the fine a still-open loan would owe if returned at now.
// Once the loan is returned, FineAmount is the immutable record and this
// must not be consulted.
func (l *Loan) AccruedFine(now time.Time, dailyRate float64) float64 {
	if l.Status != StatusApproved || l.DueDate == nil {
		return 0
	}
	return ComputeFine(*l.DueDate, now, dailyRate)
}

// OutstandingFine is the unpaid fine attached to the loan: the stored
// amount for returned loans, the accrued amount for open ones.
func (l *Loan) OutstandingFine(now time.Time, dailyRate float64) float64 {
	if l.FinePaid {
		return 0
	}
	if l.Status == StatusReturned {
		return l.FineAmount
	}
	return l.AccruedFine(now, dailyRate)
}
