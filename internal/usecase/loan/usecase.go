package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainBook "library-backend/internal/domain/book"
	domain "library-backend/internal/domain/loan"
	"library-backend/internal/domain/uow"
	"library-backend/internal/domain/user"
	"library-backend/pkg/id"

	"gorm.io/gorm"
)

// Usecase owns the loan state machine. Every mutating transition runs in
// a unit-of-work with the loan row locked, so a transition rejected by a
// guard leaves the record untouched.
type Usecase struct {
	repo      domain.Repository
	books     domainBook.Repository
	uow       uow.UnitOfWork
	dailyRate float64
	now       func() time.Time
}

func NewUsecase(loans domain.Repository, books domainBook.Repository, tx uow.UnitOfWork, dailyRate float64) *Usecase {
	return &Usecase{
		repo:      loans,
		books:     books,
		uow:       tx,
		dailyRate: dailyRate,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Request creates a pending loan for the borrower. Guards: the book must
// have at least one available copy, the duration must come from the
// allowed set, and the borrower may not already have a pending request
// for the same book.
func (u *Usecase) Request(ctx context.Context, in RequestInput) (*LoanDTO, error) {
	if in.BorrowerID == "" || len(in.BorrowerID) != 32 || in.BookID == "" {
		return nil, errors.New("invalid input")
	}
	if in.DurationDays == 0 {
		in.DurationDays = domain.DefaultDurationDays
	}
	if !domain.DurationAllowed(in.DurationDays) {
		return nil, fmt.Errorf("duration %d not in allowed set %v", in.DurationDays, domain.AllowedDurations)
	}

	b, err := u.books.GetByBookID(ctx, in.BookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainBook.ErrNotFound
		}
		return nil, err
	}
	if b.AvailableCopies < 1 {
		return nil, domain.ErrUnavailable
	}

	pending, err := u.repo.GetPendingByBorrowerAndBook(ctx, in.BorrowerID, b.ID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("borrower already has a pending loan for this book: %s", pending.LoanID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	l := &domain.Loan{
		LoanID:       id.NewID32(),
		BookID:       b.ID,
		BorrowerID:   in.BorrowerID,
		DurationDays: in.DurationDays,
		RequestDate:  u.now(),
		Status:       domain.StatusPending,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return u.toDTO(l, b), nil
}

// Approve moves pending → approved: stamps the approval, sets the due
// date from the borrower-selected duration and takes one copy off the
// shelf, all inside one locked transaction.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusPending {
			return domain.ErrInvalidTransition
		}

		b, err := r.Books.GetByIDForUpdate(ctx, l.BookID)
		if err != nil {
			return err
		}
		if b.AvailableCopies < 1 {
			return domain.ErrUnavailable
		}
		b.AvailableCopies--
		if err := r.Books.Save(ctx, b); err != nil {
			return err
		}

		now := u.now()
		due := now.AddDate(0, 0, l.DurationDays)
		l.Status = domain.StatusApproved
		l.ApprovedDate = &now
		l.DueDate = &due
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = u.toDTO(l, b)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

// Cancel lets the borrower withdraw a still-pending request. Terminal.
func (u *Usecase) Cancel(ctx context.Context, in CancelInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domain.Loan) error {
		if l.BorrowerID != in.BorrowerID {
			return domain.ErrNotOwner
		}
		if l.Status != domain.StatusPending {
			return domain.ErrInvalidTransition
		}
		l.Status = domain.StatusCancelled
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = u.toDTO(l, nil)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

// Return closes an approved (or derived-overdue) loan: stamps the return
// date, fixes the final fine via the fine policy and puts the copy back.
// Managers may return any loan; borrowers only their own.
func (u *Usecase) Return(ctx context.Context, in ReturnInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domain.Loan) error {
		if in.ActorRole != user.RoleManager && l.BorrowerID != in.ActorID {
			return domain.ErrNotOwner
		}
		if l.Status != domain.StatusApproved {
			return domain.ErrInvalidTransition
		}

		now := u.now()
		l.Status = domain.StatusReturned
		l.ReturnDate = &now
		l.FineAmount = domain.ComputeFine(*l.DueDate, now, u.dailyRate)
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		b, err := r.Books.GetByIDForUpdate(ctx, l.BookID)
		if err != nil {
			return err
		}
		if b.AvailableCopies < b.TotalCopies {
			b.AvailableCopies++
		}
		if err := r.Books.Save(ctx, b); err != nil {
			return err
		}
		dto = u.toDTO(l, b)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

// Renew extends the due date by the fixed renewal period, at most
// MaxRenewals times, while the loan is still approved.
func (u *Usecase) Renew(ctx context.Context, in RenewInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domain.Loan) error {
		if in.ActorRole != user.RoleManager && l.BorrowerID != in.ActorID {
			return domain.ErrNotOwner
		}
		if l.Status != domain.StatusApproved {
			return domain.ErrInvalidTransition
		}
		if l.RenewCount >= domain.MaxRenewals {
			return domain.ErrInvalidTransition
		}
		due := l.DueDate.AddDate(0, 0, domain.RenewExtensionDays)
		l.DueDate = &due
		l.RenewCount++
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = u.toDTO(l, nil)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

// PayFine marks the charge settled on a side channel; the historical
// fine amount and the loan status never change.
func (u *Usecase) PayFine(ctx context.Context, in PayFineInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domain.Loan) error {
		if l.BorrowerID != in.BorrowerID {
			return domain.ErrNotOwner
		}
		if l.FineAmount <= 0 || l.FinePaid {
			return domain.ErrInvalidTransition
		}
		now := u.now()
		l.FinePaid = true
		l.FinePaidAt = &now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = u.toDTO(l, nil)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

// Get returns a single loan view. Borrowers only see their own.
func (u *Usecase) Get(ctx context.Context, loanID, actorID string, role user.Role) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if role != user.RoleManager && l.BorrowerID != actorID {
		return nil, domain.ErrNotOwner
	}
	b, _ := u.books.GetByID(ctx, l.BookID)
	return u.toDTO(l, b), nil
}

// List returns loan views with the derived-overdue rule applied both to
// each row's status and to the optional status filter.
func (u *Usecase) List(ctx context.Context, in ListInput) ([]LoanDTO, error) {
	loans, err := u.repo.List(ctx, domain.Filter{BorrowerID: in.BorrowerID})
	if err != nil {
		return nil, err
	}

	titles, err := u.bookTitles(ctx, loans)
	if err != nil {
		return nil, err
	}

	now := u.now()
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		eff := l.EffectiveStatus(now)
		if in.Status != "" && string(eff) != in.Status {
			continue
		}
		dto := u.toDTO(l, nil)
		dto.BookTitle = titles[l.BookID].title
		dto.BookID = titles[l.BookID].publicID
		out = append(out, *dto)
	}
	return out, nil
}

// ListMine is the borrower portal view of List.
func (u *Usecase) ListMine(ctx context.Context, borrowerID, status string) ([]LoanDTO, error) {
	return u.List(ctx, ListInput{BorrowerID: borrowerID, Status: status})
}

// Summary derives the dashboard counters. borrowerID "" means all loans
// (manager dashboard).
func (u *Usecase) Summary(ctx context.Context, borrowerID string) (*SummaryDTO, error) {
	loans, err := u.repo.List(ctx, domain.Filter{BorrowerID: borrowerID})
	if err != nil {
		return nil, err
	}
	now := u.now()
	s := &SummaryDTO{}
	for i := range loans {
		l := &loans[i]
		switch l.EffectiveStatus(now) {
		case domain.StatusPending:
			s.Pending++
		case domain.StatusApproved:
			s.Active++
		case domain.StatusOverdue:
			s.Active++
			s.Overdue++
		case domain.StatusReturned:
			s.Completed++
		}
		s.OutstandingFines += l.OutstandingFine(now, u.dailyRate)
	}
	return s, nil
}

type bookRef struct {
	publicID string
	title    string
}

func (u *Usecase) bookTitles(ctx context.Context, loans []domain.Loan) (map[uint64]bookRef, error) {
	ids := make([]uint64, 0, len(loans))
	seen := make(map[uint64]bool, len(loans))
	for i := range loans {
		if !seen[loans[i].BookID] {
			seen[loans[i].BookID] = true
			ids = append(ids, loans[i].BookID)
		}
	}
	if len(ids) == 0 {
		return map[uint64]bookRef{}, nil
	}
	books, err := u.books.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[uint64]bookRef, len(books))
	for i := range books {
		out[books[i].ID] = bookRef{publicID: books[i].BookID, title: books[i].Title}
	}
	return out, nil
}

func (u *Usecase) toDTO(l *domain.Loan, b *domainBook.Book) *LoanDTO {
	now := u.now()
	dto := &LoanDTO{
		LoanID:       l.LoanID,
		BorrowerID:   l.BorrowerID,
		DurationDays: l.DurationDays,
		RequestDate:  l.RequestDate,
		ApprovedDate: l.ApprovedDate,
		DueDate:      l.DueDate,
		ReturnDate:   l.ReturnDate,
		Status:       string(l.EffectiveStatus(now)),
		FineAmount:   l.FineAmount,
		FinePaid:     l.FinePaid,
		RenewCount:   l.RenewCount,
		CreatedAt:    l.CreatedAt,
	}
	if l.Status == domain.StatusApproved {
		dto.FineAmount = l.AccruedFine(now, u.dailyRate)
	}
	if b != nil {
		dto.BookID = b.BookID
		dto.BookTitle = b.Title
	}
	return dto
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
