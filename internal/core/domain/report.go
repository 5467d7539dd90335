package domain

import "time"

// ReportPeriod selects the span covered by a downloadable report.
type ReportPeriod string

const (
	ReportMonthly ReportPeriod = "monthly"
	ReportYearly  ReportPeriod = "yearly"
)

func (p ReportPeriod) Valid() bool {
	return p == ReportMonthly || p == ReportYearly
}

// Bounds returns the [from, to) span of the period containing now.
func (p ReportPeriod) Bounds(now time.Time) (Date, Date) {
	if p == ReportYearly {
		return NewDate(now.Year(), time.January, 1), NewDate(now.Year()+1, time.January, 1)
	}
	first := NewDate(now.Year(), now.Month(), 1)
	return first, DateOf(first.Time().AddDate(0, 1, 0))
}

// Report is a rendered report payload.
type Report struct {
	Period      ReportPeriod
	ContentType string
	Body        []byte
}
