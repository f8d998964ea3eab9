package dates

import "time"

const Layout = "2006-01-02"

// Day truncates t to midnight UTC of its calendar date in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ElapsedDays is the number of whole days from one calendar date to another.
// Negative when to is before from.
func ElapsedDays(from, to time.Time) int64 {
	f, t := Day(from), Day(to)
	return int64(t.Sub(f).Hours() / 24)
}

func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}
