package stats

import (
	"math"
	"time"
)

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// sameMonth reports whether t falls in the same calendar month and year as now.
func sameMonth(t, now time.Time) bool {
	return t.Year() == now.Year() && t.Month() == now.Month()
}

// sameDay reports whether t falls on the same calendar day as now.
func sameDay(t, now time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
