package ponto

// DayTotals are a day's aggregated minutes. Both values are clamped
// non-negative even for out-of-order records produced by manual edits.
type DayTotals struct {
	NetWorkMinutes int
	BreakMinutes   int
}

// ComputeTotals folds one day's records into worked and break minutes.
// nowMinutes is the current minute of day, injected by the caller: when the
// day has no closing OUT yet, the open span (and an open break) accrues up
// to it.
//
// Work time is accumulated as the gross IN..OUT span, break time as the sum
// of BREAK_START..BREAK_END spans inside it, so net work is gross minus
// breaks. A second BREAK_START before the break ends is ignored, mirroring
// the status engine's no-op policy. Records whose time does not parse are
// skipped.
func ComputeTotals(dayRecords []Record, nowMinutes int) DayTotals {
	workMin := 0
	breakMin := 0

	lastIn := 0
	breakStart := 0
	isOpen := false
	onBreak := false

	for _, r := range SortByDateTime(dayRecords) {
		t, ok := r.Time.Minutes()
		if !ok {
			continue
		}

		switch r.Type {
		case EventIn:
			lastIn = t
			isOpen = true
			onBreak = false
		case EventBreakStart:
			if isOpen && !onBreak {
				breakStart = t
				onBreak = true
			}
		case EventBreakEnd:
			if isOpen && onBreak {
				breakMin += max(0, t-breakStart)
				onBreak = false
			}
		case EventOut:
			if isOpen {
				workMin += max(0, t-lastIn)
				isOpen = false
				onBreak = false
			}
		}
	}

	if isOpen {
		workMin += max(0, nowMinutes-lastIn)
		if onBreak {
			breakMin += max(0, nowMinutes-breakStart)
		}
	}

	return DayTotals{
		NetWorkMinutes: max(0, workMin-breakMin),
		BreakMinutes:   breakMin,
	}
}
