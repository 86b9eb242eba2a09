package ponto

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alexflint/go-filemutex"
	"github.com/google/uuid"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrNoRecords      = errors.New("there are no records to export")
)

// Ledger is the single entry point for every operation on the punch
// collection. Each call locks the file mutex, loads the whole collection,
// computes, and saves the whole collection back before returning, so
// concurrent invocations of the CLI never interleave partial updates.
type Ledger interface {
	Punch(t EventType, note string, now time.Time) (Record, error)
	Add(candidate Record) (Record, error)
	Edit(id string, date Date, tm ClockTime, t EventType, note string) error
	Delete(id string) error
	Clear() error
	AllRecords() ([]Record, error)
	DayRecords(d Date) ([]Record, error)
	ExportCSV(w io.Writer) error
}

func NewLedger(repo RecordRepository, logger *slog.Logger, notificator Notificator, fm *filemutex.FileMutex) Ledger {
	return &ledger{
		repo:        repo,
		mux:         fm,
		notificator: notificator,
		logger:      logger,
	}
}

type ledger struct {
	repo        RecordRepository
	mux         *filemutex.FileMutex
	notificator Notificator
	logger      *slog.Logger
}

// Punch appends an event stamped with the wall clock.
func (l *ledger) Punch(t EventType, note string, now time.Time) (Record, error) {
	return l.Add(Record{
		Date: NewDate(now),
		Time: NewClockTime(now),
		Type: t,
		Note: note,
	})
}

// Add validates the candidate's format and sequence legality against the
// day's existing records and, on acceptance, persists it with a fresh ID.
// A sequence violation is returned as *Rejection; stored state is left
// untouched on any failure.
func (l *ledger) Add(candidate Record) (Record, error) {
	l.mux.Lock()
	defer l.mux.Unlock()

	if err := checkFormat(candidate.Date, candidate.Time); err != nil {
		return Record{}, err
	}
	candidate.Note = strings.TrimSpace(candidate.Note)

	records, err := l.repo.LoadAll()
	if err != nil {
		return Record{}, err
	}

	if rej := Validate(candidate, FilterByDate(records, candidate.Date)); rej != nil {
		l.logger.Debug("punch rejected",
			slog.String("kind", string(rej.Kind)),
			slog.String("type", string(candidate.Type)),
			slog.String("date", string(candidate.Date)),
			slog.String("time", string(candidate.Time)))
		return Record{}, rej
	}

	candidate.ID = uuid.NewString()
	if err := l.repo.SaveAll(append(records, candidate)); err != nil {
		return Record{}, err
	}

	l.logger.Debug("punch recorded",
		slog.String("id", candidate.ID),
		slog.String("type", string(candidate.Type)),
		slog.String("date", string(candidate.Date)),
		slog.String("time", string(candidate.Time)))
	if err := l.notificator.Notify(candidate.Type.Label(), fmt.Sprintf("%s at %s", candidate.Type.Label(), candidate.Time)); err != nil {
		l.logger.Error("notify failed", slog.String("err", err.Error()))
	}
	return candidate, nil
}

// Edit replaces all four fields of an existing record. Only the format is
// re-checked: sequence legality is deliberately not re-run, so an edit can
// fix (or introduce) an inconsistent day. The aggregators tolerate both.
func (l *ledger) Edit(id string, date Date, tm ClockTime, t EventType, note string) error {
	l.mux.Lock()
	defer l.mux.Unlock()

	if err := checkFormat(date, tm); err != nil {
		return err
	}
	if _, err := ParseEventType(string(t)); err != nil {
		return err
	}

	records, err := l.repo.LoadAll()
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}
		records[i].Date = date
		records[i].Time = tm
		records[i].Type = t
		records[i].Note = strings.TrimSpace(note)
		l.logger.Debug("record edited", slog.String("id", id))
		return l.repo.SaveAll(records)
	}
	return fmt.Errorf("editing %s: %w", id, ErrRecordNotFound)
}

func (l *ledger) Delete(id string) error {
	l.mux.Lock()
	defer l.mux.Unlock()

	records, err := l.repo.LoadAll()
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return fmt.Errorf("deleting %s: %w", id, ErrRecordNotFound)
	}
	l.logger.Debug("record deleted", slog.String("id", id))
	return l.repo.SaveAll(kept)
}

func (l *ledger) Clear() error {
	l.mux.Lock()
	defer l.mux.Unlock()

	l.logger.Debug("collection cleared")
	return l.repo.SaveAll(nil)
}

func (l *ledger) AllRecords() ([]Record, error) {
	l.mux.Lock()
	defer l.mux.Unlock()

	records, err := l.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	return SortByDateTime(records), nil
}

func (l *ledger) DayRecords(d Date) ([]Record, error) {
	l.mux.Lock()
	defer l.mux.Unlock()

	records, err := l.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	return SortByDateTime(FilterByDate(records, d)), nil
}

func (l *ledger) ExportCSV(w io.Writer) error {
	l.mux.Lock()
	defer l.mux.Unlock()

	records, err := l.repo.LoadAll()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return ErrNoRecords
	}
	return WriteCSV(w, records)
}

func checkFormat(d Date, tm ClockTime) error {
	if d == "" || tm == "" {
		return errors.New("date and time are required")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	return tm.Validate()
}
