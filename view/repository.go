package view

import (
	"ponto/ponto"
)

// DaySummary bundles one day's sorted records with the derived state and
// totals the KPI row shows.
type DaySummary struct {
	Date    ponto.Date
	Records []ponto.Record
	State   ponto.DayState
	Totals  ponto.DayTotals
}

type ViewRepository interface {
	DaySummary(d ponto.Date, nowMinutes int) (DaySummary, error)
	AllDays(nowMinutes int) ([]DaySummary, error)
}

func NewViewRepository(ledger ponto.Ledger) ViewRepository {
	return &viewRepository{ledger: ledger}
}

type viewRepository struct {
	ledger ponto.Ledger
}

func (r *viewRepository) DaySummary(d ponto.Date, nowMinutes int) (DaySummary, error) {
	records, err := r.ledger.DayRecords(d)
	if err != nil {
		return DaySummary{}, err
	}
	return summarize(d, records, nowMinutes), nil
}

// AllDays groups the whole collection into per-day summaries, dates
// ascending. Records arrive already sorted by (date, time).
func (r *viewRepository) AllDays(nowMinutes int) ([]DaySummary, error) {
	records, err := r.ledger.AllRecords()
	if err != nil {
		return nil, err
	}

	var days []DaySummary
	for _, rec := range records {
		if len(days) == 0 || days[len(days)-1].Date != rec.Date {
			days = append(days, DaySummary{Date: rec.Date})
		}
		days[len(days)-1].Records = append(days[len(days)-1].Records, rec)
	}
	for i := range days {
		days[i] = summarize(days[i].Date, days[i].Records, nowMinutes)
	}
	return days, nil
}

func summarize(d ponto.Date, records []ponto.Record, nowMinutes int) DaySummary {
	return DaySummary{
		Date:    d,
		Records: records,
		State:   ponto.ComputeStatus(records),
		Totals:  ponto.ComputeTotals(records, nowMinutes),
	}
}
