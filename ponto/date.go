package ponto

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Date is a calendar date in the user's local time, formatted as
// "2006-01-02". The zero-padded ISO form makes string comparison agree
// with chronological order.
type Date string

// ClockTime is a local clock time formatted as "15:04", no seconds.
type ClockTime string

func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func NewClockTime(t time.Time) ClockTime {
	return ClockTime(t.Format(TimeLayout))
}

func (d Date) Validate() error {
	if _, err := time.Parse(DateLayout, string(d)); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", string(d))
	}
	return nil
}

func (ct ClockTime) Validate() error {
	// time.Parse accepts an unpadded hour; the ledger stores and compares
	// times as strings, so the zero-padded form is mandatory.
	if _, ok := ct.Minutes(); !ok {
		return fmt.Errorf("invalid time %q, expected HH:MM", string(ct))
	}
	return nil
}

// Minutes converts the clock time to minutes since midnight. ok is false
// when the time is not in zero-padded HH:MM form.
func (ct ClockTime) Minutes() (int, bool) {
	if len(ct) != len(TimeLayout) {
		return 0, false
	}
	t, err := time.Parse(TimeLayout, string(ct))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// MinutesOfDay returns t's minute of day, seconds discarded.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatMinutes renders a minute count as a signed HH:MM duration.
func FormatMinutes(min int) string {
	sign := ""
	if min < 0 {
		sign = "-"
		min = -min
	}
	return fmt.Sprintf("%s%02d:%02d", sign, min/60, min%60)
}
