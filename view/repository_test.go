package view_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/alexflint/go-filemutex"
	"github.com/tidwall/buntdb"

	"ponto/ponto"
	"ponto/view"
)

func newTestLedger(t *testing.T) ponto.Ledger {
	t.Helper()
	dir := t.TempDir()

	db, err := buntdb.Open(filepath.Join(dir, "ponto.db"))
	if err != nil {
		t.Fatalf("open buntdb: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	fm, err := filemutex.New(filepath.Join(dir, "ponto.lock"))
	if err != nil {
		t.Fatalf("open filemutex: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return ponto.NewLedger(ponto.NewRecordRepository(db), logger, &ponto.NopNotificator{}, fm)
}

func seedLedger(t *testing.T, l ponto.Ledger) {
	t.Helper()
	punches := []ponto.Record{
		{Date: "2026-03-02", Time: "09:00", Type: ponto.EventIn},
		{Date: "2026-03-02", Time: "12:00", Type: ponto.EventBreakStart},
		{Date: "2026-03-02", Time: "12:30", Type: ponto.EventBreakEnd},
		{Date: "2026-03-02", Time: "17:00", Type: ponto.EventOut},
		{Date: "2026-03-03", Time: "09:00", Type: ponto.EventIn},
	}
	for _, p := range punches {
		if _, err := l.Add(p); err != nil {
			t.Fatalf("Add(%+v): %v", p, err)
		}
	}
}

func TestDaySummary(t *testing.T) {
	l := newTestLedger(t)
	seedLedger(t, l)
	repo := view.NewViewRepository(l)

	s, err := repo.DaySummary("2026-03-02", 0)
	if err != nil {
		t.Fatalf("DaySummary: %v", err)
	}
	if s.State != ponto.StateClosed {
		t.Errorf("state = %v, want %v", s.State, ponto.StateClosed)
	}
	if s.Totals != (ponto.DayTotals{NetWorkMinutes: 450, BreakMinutes: 30}) {
		t.Errorf("totals = %+v", s.Totals)
	}
	if len(s.Records) != 4 {
		t.Errorf("records = %d, want 4", len(s.Records))
	}
}

func TestDaySummaryOpenDayUsesNow(t *testing.T) {
	l := newTestLedger(t)
	seedLedger(t, l)
	repo := view.NewViewRepository(l)

	s, err := repo.DaySummary("2026-03-03", 10*60)
	if err != nil {
		t.Fatalf("DaySummary: %v", err)
	}
	if s.State != ponto.StateWorking {
		t.Errorf("state = %v, want %v", s.State, ponto.StateWorking)
	}
	if s.Totals.NetWorkMinutes != 60 {
		t.Errorf("net work = %d, want 60", s.Totals.NetWorkMinutes)
	}
}

func TestAllDays(t *testing.T) {
	l := newTestLedger(t)
	seedLedger(t, l)
	repo := view.NewViewRepository(l)

	days, err := repo.AllDays(10 * 60)
	if err != nil {
		t.Fatalf("AllDays: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("AllDays = %d days, want 2", len(days))
	}
	if days[0].Date != "2026-03-02" || days[1].Date != "2026-03-03" {
		t.Errorf("AllDays dates = %s, %s", days[0].Date, days[1].Date)
	}
	if days[0].State != ponto.StateClosed || days[1].State != ponto.StateWorking {
		t.Errorf("AllDays states = %v, %v", days[0].State, days[1].State)
	}
}

func TestDaySummaryEmptyDay(t *testing.T) {
	l := newTestLedger(t)
	repo := view.NewViewRepository(l)

	s, err := repo.DaySummary("2026-03-02", 10*60)
	if err != nil {
		t.Fatalf("DaySummary: %v", err)
	}
	if s.State != ponto.StateEmpty {
		t.Errorf("state = %v, want %v", s.State, ponto.StateEmpty)
	}
	if s.Totals != (ponto.DayTotals{}) {
		t.Errorf("totals = %+v, want zero", s.Totals)
	}
}
