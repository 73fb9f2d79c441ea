package utils

import "time"

// LunaBugetara returns the budget-month window containing ref: the period
// runs from the 26th of one month through the 25th of the next. time.Date
// normalizes the month offsets, so the December/January rollover needs no
// special casing and day 26/25 always exists.
func LunaBugetara(ref time.Time) (start, end time.Time) {
	y, m, d := ref.Date()
	loc := ref.Location()

	if d >= 26 {
		start = time.Date(y, m, 26, 0, 0, 0, 0, loc)
		end = time.Date(y, m+1, 25, 0, 0, 0, 0, loc)
	} else {
		end = time.Date(y, m, 25, 0, 0, 0, 0, loc)
		start = time.Date(y, m-1, 26, 0, 0, 0, 0, loc)
	}
	return start, end
}

// CheieLuna returns the "YYYY-MM" key of the budget month containing ref,
// taken from the window start.
func CheieLuna(ref time.Time) string {
	start, _ := LunaBugetara(ref)
	return start.Format("2006-01")
}

// SfarsitDeZi pushes a date to the last second of its day, for inclusive
// upper bounds on datetime columns.
func SfarsitDeZi(t time.Time) time.Time {
	return t.Add(24*time.Hour - time.Second)
}
