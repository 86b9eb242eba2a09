package view

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rivo/tview"

	"ponto/ponto"
)

// NewTUI returns the interactive editor for one day's records: a selectable
// table, with a form to replace all four fields of the selected record or
// delete it. Edits are format-checked only; the sequence rules are not
// re-applied, so a mistaken punch can always be corrected.
func NewTUI(ledger ponto.Ledger, repo ViewRepository, logger *slog.Logger) Viewer {
	return &tui{
		ledger: ledger,
		repo:   repo,
		logger: logger,
	}
}

type tui struct {
	ledger ponto.Ledger
	repo   ViewRepository

	logger *slog.Logger

	app *tview.Application
}

func (t *tui) Do(date ponto.Date, nowMinutes int) error {
	s, err := t.repo.DaySummary(date, nowMinutes)
	if err != nil {
		return err
	}

	if t.app != nil {
		t.app.Stop()
	}

	t.app = tview.NewApplication()

	table := newRecordTable(s)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(table, 0, 1, true)

	rowOffset := 1
	table.Select(rowOffset, 0).SetFixed(1, 0).SetSelectable(true, false).SetSelectedFunc(func(row int, column int) {
		idx := row - rowOffset
		if idx < 0 || idx >= len(s.Records) {
			return
		}
		rec := s.Records[idx]

		form := t.newRecordForm(rec, func(form *tview.Form) func() {
			return func() {
				t.app.SetFocus(table)
				flex.RemoveItem(form)
			}
		}, date, nowMinutes)
		flex.AddItem(form, 0, 1, true)
		t.app.SetFocus(form)
	}).SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			t.app.Stop()
		}
	})

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewTextView().SetText(fmt.Sprintf("%s — %s", date, s.State.Label())), 1, 1, false).
		AddItem(flex, 0, 1, true)
	return t.app.SetRoot(root, true).Run()
}

func newRecordTable(s DaySummary) *tview.Table {
	table := tview.NewTable().SetBorders(true)

	table.SetCell(0, 0, tview.NewTableCell("Time").SetAlign(tview.AlignCenter).SetSelectable(false))
	table.SetCell(0, 1, tview.NewTableCell("Event").SetAlign(tview.AlignCenter).SetSelectable(false))
	table.SetCell(0, 2, tview.NewTableCell("Note").SetAlign(tview.AlignCenter).SetSelectable(false))

	for i, r := range s.Records {
		table.SetCell(i+1, 0, tview.NewTableCell(" "+string(r.Time)+" ").SetAlign(tview.AlignCenter))
		table.SetCell(i+1, 1, tview.NewTableCell(" "+r.Type.Label()+" ").SetAlign(tview.AlignCenter))
		table.SetCell(i+1, 2, tview.NewTableCell(" "+r.Note+" "))
	}

	kpiRow := len(s.Records) + 1
	table.SetCell(kpiRow, 0, tview.NewTableCell("net work").SetAlign(tview.AlignCenter).SetSelectable(false))
	table.SetCell(kpiRow, 1, tview.NewTableCell(ponto.FormatMinutes(s.Totals.NetWorkMinutes)).SetAlign(tview.AlignCenter).SetSelectable(false))
	table.SetCell(kpiRow, 2, tview.NewTableCell("break "+ponto.FormatMinutes(s.Totals.BreakMinutes)).SetAlign(tview.AlignCenter).SetSelectable(false))
	return table
}

func (t *tui) newRecordForm(rec ponto.Record, handleClose func(form *tview.Form) func(), viewDate ponto.Date, nowMinutes int) *tview.Form {
	date := string(rec.Date)
	clock := string(rec.Time)
	kind := string(rec.Type)
	note := rec.Note

	form := tview.NewForm().
		AddInputField("Date (YYYY-MM-DD)", date, 0, nil, func(text string) {
			date = text
		}).
		AddInputField("Time (HH:MM)", clock, 0, nil, func(text string) {
			clock = text
		}).
		AddInputField("Type (IN, BREAK_START, BREAK_END, OUT)", kind, 0, nil, func(text string) {
			kind = text
		}).
		AddInputField("Note", note, 0, nil, func(text string) {
			note = text
		}).
		AddTextView("", "", 0, 0, false, false)
	form.
		AddButton("Save", func() {
			if err := t.ledger.Edit(rec.ID, ponto.Date(date), ponto.ClockTime(clock), ponto.EventType(kind), note); err != nil {
				form.GetFormItem(4).(*tview.TextView).
					SetLabel("Error").
					SetText(err.Error())
				return
			}
			if err := t.Do(viewDate, nowMinutes); err != nil {
				t.logger.Error("failed to refresh after edit", slog.String("err", err.Error()))
			}
		}).
		AddButton("Delete", func() {
			if err := t.ledger.Delete(rec.ID); err != nil {
				form.GetFormItem(4).(*tview.TextView).
					SetLabel("Error").
					SetText(err.Error())
				return
			}
			if err := t.Do(viewDate, nowMinutes); err != nil {
				t.logger.Error("failed to refresh after delete", slog.String("err", err.Error()))
			}
		}).
		AddButton("Cancel", func() {
			handleClose(form)()
		})
	form.SetBorder(true).SetTitle("Edit record").SetTitleAlign(tview.AlignLeft)
	return form
}
