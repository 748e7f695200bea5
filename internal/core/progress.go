package core

import "time"

// MonthlyTarget is the fixed savings target for each calendar month.
var MonthlyTarget = Money{Cents: 2_000_000 * 100}

// MilestoneLadder is the fixed ascending sequence of milestone targets.
// There is no milestone beyond the last entry: once the total passes it the
// ladder caps there.
var MilestoneLadder = []Money{
	{Cents: 1_000_000 * 100},
	{Cents: 2_000_000 * 100},
	{Cents: 3_000_000 * 100},
	{Cents: 5_000_000 * 100},
	{Cents: 7_000_000 * 100},
	{Cents: 12_000_000 * 100},
	{Cents: 20_000_000 * 100},
}

// Statistics is the aggregate progress snapshot served on the dashboard.
type Statistics struct {
	MonthTotal      Money
	MonthShortfall  Money
	Total           Money
	CurrentTarget   Money
	ProgressPercent float64
}

// CurrentTarget returns the smallest ladder entry strictly greater than
// total, or the last entry when total meets or exceeds the whole ladder.
func CurrentTarget(total Money) Money {
	target := MilestoneLadder[len(MilestoneLadder)-1]
	for _, m := range MilestoneLadder {
		if total.Cents < m.Cents {
			target = m
			break
		}
	}
	return target
}

// ComputeStatistics derives the progress snapshot from the all-time and
// current-month ledger sums.
func ComputeStatistics(total, monthTotal Money) Statistics {
	shortfall := MonthlyTarget.Cents - monthTotal.Cents
	if shortfall < 0 {
		shortfall = 0
	}

	target := CurrentTarget(total)
	progress := 0.0
	if target.Cents > 0 {
		progress = float64(total.Cents) / float64(target.Cents) * 100
	}

	return Statistics{
		MonthTotal:      monthTotal,
		MonthShortfall:  Money{Cents: shortfall},
		Total:           total,
		CurrentTarget:   target,
		ProgressPercent: progress,
	}
}

// MonthWindow returns the half-open interval covering the calendar month of
// now, in now's location: [first instant of month, first instant of next month).
func MonthWindow(now time.Time) (from, to time.Time) {
	from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to = from.AddDate(0, 1, 0)
	return from, to
}
