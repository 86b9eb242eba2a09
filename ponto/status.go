package ponto

type DayState string

const (
	StateEmpty   = DayState("EMPTY")
	StateWorking = DayState("WORKING")
	StateOnBreak = DayState("ON_BREAK")
	StateClosed  = DayState("CLOSED")
)

func (s DayState) Label() string {
	switch s {
	case StateEmpty:
		return "no records"
	case StateWorking:
		return "working"
	case StateOnBreak:
		return "on break"
	case StateClosed:
		return "day closed"
	}
	return string(s)
}

// ComputeStatus folds one day's records, sorted by (date, time), into the
// day's current state. Transitions that make no sense for the current state
// are skipped rather than reported: illegal punches are rejected up front by
// Validate, and records edited into an inconsistent order should still
// produce some usable state.
func ComputeStatus(dayRecords []Record) DayState {
	state := StateEmpty
	for _, r := range SortByDateTime(dayRecords) {
		switch r.Type {
		case EventIn:
			state = StateWorking
		case EventBreakStart:
			if state == StateWorking {
				state = StateOnBreak
			}
		case EventBreakEnd:
			if state == StateOnBreak {
				state = StateWorking
			}
		case EventOut:
			if state == StateWorking {
				state = StateClosed
			}
		}
	}
	return state
}
