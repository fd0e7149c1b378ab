package pardna

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Payload is the create request. ContributionAmount is in minor currency
// units (pence); everything else is passed through from the Record.
type Payload struct {
	Name               string          `json:"name"`
	StartDate          time.Time       `json:"startDate"`
	Duration           int             `json:"duration"`
	ContributionAmount int64           `json:"contributionAmount"`
	BankerFee          decimal.Decimal `json:"bankerFee"`
	PaymentFrequency   Frequency       `json:"paymentFrequency"`
	Participants       []Participant   `json:"participants"`
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// FitsMinorUnits reports whether amount converts to minor units without
// overflowing an int64.
func FitsMinorUnits(amount decimal.Decimal) bool {
	return !amount.Shift(2).Round(0).Abs().GreaterThan(maxMinorUnits)
}

// MinorUnits converts a currency amount to whole minor units (×100),
// rounding half away from zero. amount must satisfy FitsMinorUnits.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// FromMinorUnits converts minor units back to a currency amount.
func FromMinorUnits(units int64) decimal.Decimal {
	return decimal.New(units, -2)
}

// NewPayload validates r and projects it into a create request.
func NewPayload(r Record) (Payload, error) {
	if errs := Validate(r); len(errs) > 0 {
		return Payload{}, &InvalidRecordError{Errors: errs}
	}
	participants := make([]Participant, len(r.Participants))
	copy(participants, r.Participants)
	return Payload{
		Name:               r.Name,
		StartDate:          r.StartDate,
		Duration:           *r.Duration,
		ContributionAmount: MinorUnits(r.ContributionAmount.Decimal),
		BankerFee:          r.BankerFee.Decimal,
		PaymentFrequency:   r.PaymentFrequency,
		Participants:       participants,
	}, nil
}
