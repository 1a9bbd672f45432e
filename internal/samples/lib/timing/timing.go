// Package timing shows time values, layouts and durations from the time package.
package timing

import "time"

// release is the fixed date used by the examples below.
func release() time.Time {
	return time.Date(2009, time.November, 10, 23, 4, 5, 0, time.UTC)
}

// category: formatting

// Format lays out a time with the reference date.
func Format() string {
	return release().Format("2006-01-02 15:04:05")
}

// RFC3339 uses a predefined layout.
func RFC3339() string {
	return release().Format(time.RFC3339)
}

// Parse reads a time using a layout.
func Parse() int {
	t, err := time.Parse("02 Jan 2006", "24 Aug 1959")
	if err != nil {
		return 0
	}
	return t.YearDay()
}

// category: arithmetic

// Add moves a time forward.
func Add() string {
	return release().Add(90 * time.Minute).Format(time.Kitchen)
}

// AddDate adds calendar units and normalizes.
func AddDate() string {
	return release().AddDate(0, 1, 21).Format("Jan 2")
}

// Sub returns the duration between two times.
func Sub() string {
	later := release().Add(36 * time.Hour)
	return later.Sub(release()).String()
}

// Weekday reports the day of the week.
func Weekday() string {
	return release().Weekday().String()
}

// category: durations

// ParseDuration reads a duration string.
func ParseDuration() float64 {
	d, _ := time.ParseDuration("1h15m30s")
	return d.Minutes()
}

// Truncate rounds a duration down to a multiple.
func Truncate() string {
	d := 1234567 * time.Microsecond
	return d.Truncate(time.Millisecond).String()
}
