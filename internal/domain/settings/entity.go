package settings

import "time"

// CompanyProfile is a singleton row, created on first save.
type CompanyProfile struct {
	ID          string
	CompanyName string
	Address     *string
	PhoneNumber *string
	Email       *string
	LogoURL     *string
	UpdatedAt   time.Time
}

// FinancialSettings is a singleton row holding the accounting conventions
// the rest of the system reads: the financial year start month drives the
// leave accounting window and document numbering.
type FinancialSettings struct {
	ID                  string
	CurrencyCode        string
	FinancialYearStart  int // month, 1..12
	InvoiceNumberPrefix string
	UpdatedAt           time.Time
}

// YearWindow returns the accounting-year window [from, to) containing the
// given date under this settings' financial year start month.
func (s *FinancialSettings) YearWindow(at time.Time) (time.Time, time.Time) {
	year := at.Year()
	start := time.Date(year, time.Month(s.FinancialYearStart), 1, 0, 0, 0, 0, at.Location())
	if at.Before(start) {
		start = start.AddDate(-1, 0, 0)
	}
	return start, start.AddDate(1, 0, 0)
}
