package ponto_test

import (
	"testing"

	"ponto/ponto"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate ponto.Record
		existing  []ponto.Record
		want      ponto.RejectionKind // "" means accepted
	}{
		{
			name:      "first clock-in of the day",
			candidate: rec("09:00", ponto.EventIn),
			want:      "",
		},
		{
			name:      "clock-in after a closed day",
			candidate: rec("18:00", ponto.EventIn),
			existing: []ponto.Record{
				rec("09:00", ponto.EventIn),
				rec("17:00", ponto.EventOut),
			},
			want: "",
		},
		{
			name:      "clock-in while already working",
			candidate: rec("09:05", ponto.EventIn),
			existing:  []ponto.Record{rec("09:00", ponto.EventIn)},
			want:      ponto.RejectInWhileActive,
		},
		{
			name:      "clock-in while on break",
			candidate: rec("12:05", ponto.EventIn),
			existing: []ponto.Record{
				rec("09:00", ponto.EventIn),
				rec("12:00", ponto.EventBreakStart),
			},
			want: ponto.RejectInWhileActive,
		},
		{
			name:      "clock-out while working",
			candidate: rec("17:00", ponto.EventOut),
			existing:  []ponto.Record{rec("09:00", ponto.EventIn)},
			want:      "",
		},
		{
			name:      "clock-out with no open clock-in",
			candidate: rec("09:05", ponto.EventOut),
			want:      ponto.RejectOutWhileEmpty,
		},
		{
			name:      "clock-out after the day closed",
			candidate: rec("18:00", ponto.EventOut),
			existing: []ponto.Record{
				rec("09:00", ponto.EventIn),
				rec("17:00", ponto.EventOut),
			},
			want: ponto.RejectOutWhileEmpty,
		},
		{
			name:      "clock-out while on break",
			candidate: rec("12:30", ponto.EventOut),
			existing: []ponto.Record{
				rec("09:00", ponto.EventIn),
				rec("12:00", ponto.EventBreakStart),
			},
			want: ponto.RejectOutWhileOnBreak,
		},
		{
			name:      "break start while working",
			candidate: rec("12:00", ponto.EventBreakStart),
			existing:  []ponto.Record{rec("09:00", ponto.EventIn)},
			want:      "",
		},
		{
			name:      "break start before clocking in",
			candidate: rec("09:00", ponto.EventBreakStart),
			want:      ponto.RejectBreakStartNotWorking,
		},
		{
			name:      "break start while already on break",
			candidate: rec("09:05", ponto.EventBreakStart),
			existing: []ponto.Record{
				rec("09:00", ponto.EventIn),
				rec("09:00", ponto.EventBreakStart),
			},
			want: ponto.RejectBreakStartNotWorking,
		},
		{
			name:      "break end while on break",
			candidate: rec("12:30", ponto.EventBreakEnd),
			existing: []ponto.Record{
				rec("09:00", ponto.EventIn),
				rec("12:00", ponto.EventBreakStart),
			},
			want: "",
		},
		{
			name:      "break end with no break open",
			candidate: rec("12:30", ponto.EventBreakEnd),
			existing:  []ponto.Record{rec("09:00", ponto.EventIn)},
			want:      ponto.RejectBreakEndNotOnBreak,
		},
		{
			name:      "duplicate time and type",
			candidate: rec("09:00", ponto.EventIn),
			existing:  []ponto.Record{rec("09:00", ponto.EventIn)},
			want:      ponto.RejectDuplicate,
		},
		{
			name:      "duplicate wins over the sequence rule",
			candidate: rec("09:00", ponto.EventBreakStart),
			existing: []ponto.Record{
				rec("09:00", ponto.EventIn),
				rec("09:00", ponto.EventBreakStart),
			},
			want: ponto.RejectDuplicate,
		},
		{
			name:      "same time but different type is not a duplicate",
			candidate: rec("09:00", ponto.EventBreakStart),
			existing:  []ponto.Record{rec("09:00", ponto.EventIn)},
			want:      "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ponto.Validate(tt.candidate, tt.existing)
			if tt.want == "" {
				if got != nil {
					t.Errorf("Validate = %v, want acceptance", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Validate accepted, want rejection %v", tt.want)
			}
			if got.Kind != tt.want {
				t.Errorf("Validate kind = %v, want %v", got.Kind, tt.want)
			}
			if got.Error() == "" {
				t.Error("Validate rejection has no display text")
			}
		})
	}
}
