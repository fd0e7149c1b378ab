package pardna

import (
	"time"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

func fixedDefaults() Defaults {
	d := StandardDefaults()
	d.Now = func() time.Time { return fixedNow }
	return d
}

func money(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func intPtr(v int) *int { return &v }

// validRecord returns a record that passes every rule.
func validRecord() Record {
	return Record{
		Name:               "Summer pot",
		StartDate:          fixedNow,
		Duration:           intPtr(12),
		ContributionAmount: money("25.50"),
		BankerFee:          money("10"),
		PaymentFrequency:   Monthly,
		Participants: []Participant{
			{Name: "Ada", Email: "ada@example.com"},
			{Name: "Grace", Email: "grace@example.org"},
		},
	}
}
