package report

import "time"

// DateFormat is the layout of board date values and report file names.
const DateFormat = "2006-01-02"

// WindowDays is the number of dates in a report window.
const WindowDays = 8

// Window is today and the seven preceding calendar dates, oldest first.
type Window [WindowDays]string

// NewWindow builds the window ending on the calendar date of now in loc.
func NewWindow(now time.Time, loc *time.Location) Window {
	now = now.In(loc)
	y, m, d := now.Date()
	var w Window
	for i := 0; i < WindowDays; i++ {
		// Build each date from calendar fields so DST shifts cannot skip a day.
		day := time.Date(y, m, d-(WindowDays-1-i), 12, 0, 0, 0, loc)
		w[i] = day.Format(DateFormat)
	}
	return w
}

// Contains reports whether date is one of the window's dates.
func (w Window) Contains(date string) bool {
	for _, d := range w {
		if d == date {
			return true
		}
	}
	return false
}

// Today returns the last date of the window.
func (w Window) Today() string {
	return w[WindowDays-1]
}
