package view

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"ponto/ponto"
)

type Viewer interface {
	Do(date ponto.Date, nowMinutes int) error
}

// NewTableViewer renders punch records as a table on w: one day when a date
// is given, the whole ledger otherwise.
func NewTableViewer(repo ViewRepository, w io.Writer) Viewer {
	return &tableViewer{repo: repo, w: w}
}

type tableViewer struct {
	repo ViewRepository
	w    io.Writer
}

func (t *tableViewer) Do(date ponto.Date, nowMinutes int) error {
	if date != "" {
		s, err := t.repo.DaySummary(date, nowMinutes)
		if err != nil {
			return err
		}
		buildDayTable(t.w, s).Render()
		return nil
	}

	days, err := t.repo.AllDays(nowMinutes)
	if err != nil {
		return err
	}
	buildLedgerTable(t.w, days).Render()
	return nil
}

func buildDayTable(w io.Writer, s DaySummary) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(string(s.Date))
	t.AppendHeader(table.Row{"Time", "Event", "Note", "ID"})
	for _, r := range s.Records {
		t.AppendRow(table.Row{r.Time, r.Type.Label(), r.Note, r.ID})
	}
	t.AppendFooter(table.Row{"", "status", s.State.Label(), ""})
	t.AppendFooter(table.Row{"", "break", ponto.FormatMinutes(s.Totals.BreakMinutes), ""})
	t.AppendFooter(table.Row{"", "net work", ponto.FormatMinutes(s.Totals.NetWorkMinutes), ""})
	t.SetStyle(table.StyleRounded)
	return t
}

func buildLedgerTable(w io.Writer, days []DaySummary) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Time", "Event", "Note", "Net work", "Break"})

	totalNet := 0
	for _, day := range days {
		totalNet += day.Totals.NetWorkMinutes
		for _, r := range day.Records {
			t.AppendRow(table.Row{
				day.Date,
				r.Time,
				r.Type.Label(),
				r.Note,
				ponto.FormatMinutes(day.Totals.NetWorkMinutes),
				ponto.FormatMinutes(day.Totals.BreakMinutes),
			})
		}
	}
	t.AppendFooter(table.Row{"", "", "", "total net work", ponto.FormatMinutes(totalNet), ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 5, AutoMerge: true},
		{Number: 6, AutoMerge: true},
	})
	t.SetStyle(table.StyleRounded)
	return t
}
