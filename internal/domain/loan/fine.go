package loan

import (
	"math"
	"time"
)

// ComputeFine returns the overdue charge for a loan due at due and
// evaluated (returned or displayed) at eval. On-time or early evaluation
// costs nothing; otherwise the charge is daysLate * dailyRate with partial
// days rounded up to a whole day.
//
// Rounding rule: evaluating exactly at the due instant is on time; one
// second past it counts as a full late day. The function is pure so the
// same call serves both read-time display and the final charge at return.
func ComputeFine(due, eval time.Time, dailyRate float64) float64 {
	if !eval.After(due) {
		return 0
	}
	daysLate := math.Ceil(eval.Sub(due).Hours() / 24)
	return daysLate * dailyRate
}
