package loan

import (
	"testing"
	"time"
)

func TestComputeFine(t *testing.T) {
	due := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	rate := 2.0

	cases := []struct {
		name string
		eval time.Time
		want float64
	}{
		{"day before due", due.AddDate(0, 0, -1), 0},
		{"exactly at due", due, 0},
		{"one hour late rounds up to a full day", due.Add(time.Hour), rate},
		{"one day late", due.AddDate(0, 0, 1), rate},
		{"four days late", due.AddDate(0, 0, 4), 4 * rate},
		{"four days and a minute late", due.AddDate(0, 0, 4).Add(time.Minute), 5 * rate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeFine(due, tc.eval, rate); got != tc.want {
				t.Fatalf("ComputeFine(%v) = %v, want %v", tc.eval, got, tc.want)
			}
		})
	}
}

func TestComputeFineZeroRate(t *testing.T) {
	due := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	if got := ComputeFine(due, due.AddDate(0, 0, 10), 0); got != 0 {
		t.Fatalf("zero rate should yield no fine, got %v", got)
	}
}

func TestEffectiveStatus(t *testing.T) {
	due := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	l := &Loan{Status: StatusApproved, DueDate: &due}

	if got := l.EffectiveStatus(due); got != StatusApproved {
		t.Fatalf("at the due instant status = %s, want approved", got)
	}
	if got := l.EffectiveStatus(due.Add(time.Second)); got != StatusOverdue {
		t.Fatalf("past due status = %s, want overdue", got)
	}

	// Only approved loans derive overdue.
	l.Status = StatusReturned
	if got := l.EffectiveStatus(due.AddDate(0, 0, 5)); got != StatusReturned {
		t.Fatalf("returned loan status = %s, want returned", got)
	}
}

func TestOutstandingFine(t *testing.T) {
	due := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	now := due.AddDate(0, 0, 3)

	open := &Loan{Status: StatusApproved, DueDate: &due}
	if got := open.OutstandingFine(now, 2.0); got != 6 {
		t.Fatalf("open loan outstanding = %v, want 6", got)
	}

	returned := &Loan{Status: StatusReturned, FineAmount: 8}
	if got := returned.OutstandingFine(now, 2.0); got != 8 {
		t.Fatalf("returned loan outstanding = %v, want stored 8", got)
	}

	returned.FinePaid = true
	if got := returned.OutstandingFine(now, 2.0); got != 0 {
		t.Fatalf("paid loan outstanding = %v, want 0", got)
	}
}
