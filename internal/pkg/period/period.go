package period

import (
	"fmt"
	"time"
)

// Period identifies one calendar month, the unit of payroll generation and
// financial reconciliation. The wire format is "YYYY-MM".
type Period struct {
	Year  int
	Month time.Month
}

const layout = "2006-01"

// Parse converts a "YYYY-MM" string into a Period.
func Parse(s string) (Period, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: must be YYYY-MM", s)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// Of returns the period containing t.
func Of(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Start returns the first instant of the month in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the following calendar month.
func (p Period) Next() Period {
	return Of(p.Start().AddDate(0, 1, 0))
}

// Contains reports whether t falls within the calendar month.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}
