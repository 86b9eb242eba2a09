package ponto

type RejectionKind string

const (
	RejectDuplicate            = RejectionKind("duplicate")
	RejectInWhileActive        = RejectionKind("in_while_active")
	RejectOutWhileEmpty        = RejectionKind("out_while_empty")
	RejectOutWhileOnBreak      = RejectionKind("out_while_on_break")
	RejectBreakStartNotWorking = RejectionKind("break_start_not_working")
	RejectBreakEndNotOnBreak   = RejectionKind("break_end_not_on_break")
)

// Rejection explains why a candidate punch was refused. It implements error
// so ledger callers can surface it directly to the user.
type Rejection struct {
	Kind RejectionKind
}

func (r *Rejection) Error() string {
	switch r.Kind {
	case RejectDuplicate:
		return "an identical event already exists at this time"
	case RejectInWhileActive:
		return "clock-in does not make sense: the day is already in progress"
	case RejectOutWhileEmpty:
		return "clock-out does not make sense: there is no open clock-in"
	case RejectOutWhileOnBreak:
		return "you are on a break: record the break end before clocking out"
	case RejectBreakStartNotWorking:
		return "a break can only start while working (after clock-in, before clock-out)"
	case RejectBreakEndNotOnBreak:
		return "break end only makes sense while a break is in progress"
	}
	return string(r.Kind)
}

// Validate checks a candidate punch against the day's existing records and
// the expected IN -> (BREAK_START -> BREAK_END)* -> OUT sequence. It returns
// nil when the candidate is acceptable, otherwise the first rule it broke.
// This is a sanity check against obvious mistakes, not a proof that the
// resulting schedule is consistent.
func Validate(candidate Record, dayRecords []Record) *Rejection {
	for _, r := range dayRecords {
		if r.Time == candidate.Time && r.Type == candidate.Type {
			return &Rejection{Kind: RejectDuplicate}
		}
	}

	state := ComputeStatus(dayRecords)

	switch candidate.Type {
	case EventIn:
		if state != StateEmpty && state != StateClosed {
			return &Rejection{Kind: RejectInWhileActive}
		}
	case EventOut:
		if state == StateEmpty || state == StateClosed {
			return &Rejection{Kind: RejectOutWhileEmpty}
		}
		if state == StateOnBreak {
			return &Rejection{Kind: RejectOutWhileOnBreak}
		}
	case EventBreakStart:
		if state != StateWorking {
			return &Rejection{Kind: RejectBreakStartNotWorking}
		}
	case EventBreakEnd:
		if state != StateOnBreak {
			return &Rejection{Kind: RejectBreakEndNotOnBreak}
		}
	}

	return nil
}
