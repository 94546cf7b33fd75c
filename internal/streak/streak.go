// Package streak computes day-based activity streaks.
package streak

import (
	"fmt"
	"time"
)

// Date is a calendar date without time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// AddDays returns the date n days after d; n may be negative.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DateSet is a set of distinct calendar dates.
type DateSet map[Date]struct{}

// NewDateSet builds a set from the calendar dates of times, each converted to loc first.
func NewDateSet(loc *time.Location, times ...time.Time) DateSet {
	s := make(DateSet, len(times))
	for _, t := range times {
		s.Add(DateOf(t.In(loc)))
	}
	return s
}

func (s DateSet) Add(d Date) {
	s[d] = struct{}{}
}

func (s DateSet) Has(d Date) bool {
	_, ok := s[d]
	return ok
}

// ConsecutiveDays counts the days with activity walking back from today,
// stopping at the first day without any. A missing today yields 0.
func ConsecutiveDays(activity DateSet, today Date) int {
	count := 0
	for d := today; activity.Has(d); d = d.AddDays(-1) {
		count++
	}
	return count
}
