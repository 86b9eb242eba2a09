package ponto

import (
	"fmt"
	"sort"
)

type EventType string

const (
	EventIn         = EventType("IN")
	EventOut        = EventType("OUT")
	EventBreakStart = EventType("BREAK_START")
	EventBreakEnd   = EventType("BREAK_END")
)

func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case EventIn, EventOut, EventBreakStart, EventBreakEnd:
		return EventType(s), nil
	}
	return "", fmt.Errorf("invalid event type %q, expected IN, OUT, BREAK_START or BREAK_END", s)
}

func (t EventType) Label() string {
	switch t {
	case EventIn:
		return "clock in"
	case EventOut:
		return "clock out"
	case EventBreakStart:
		return "break start"
	case EventBreakEnd:
		return "break end"
	}
	return string(t)
}

// Record is a single punch event.
type Record struct {
	ID   string    `json:"id"`
	Date Date      `json:"date"`
	Time ClockTime `json:"time"`
	Type EventType `json:"type"`
	Note string    `json:"note,omitempty"`
}

// SortByDateTime returns a copy of records sorted ascending by (date, time)
// string order. The sort is stable so records sharing a date and time keep
// their insertion order.
func SortByDateTime(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Time < sorted[j].Time
	})
	return sorted
}

// FilterByDate returns the records punched on d, in input order.
func FilterByDate(records []Record, d Date) []Record {
	var day []Record
	for _, r := range records {
		if r.Date == d {
			day = append(day, r)
		}
	}
	return day
}
