package pardna

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vango-dev/pardna/internal/errors"
	"github.com/vango-dev/pardna/pkg/features/form"
)

// Frequency is how often participants pay in.
type Frequency string

const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
)

// Frequencies returns the supported payment frequencies in display order.
func Frequencies() []Frequency {
	return []Frequency{Daily, Weekly, Monthly}
}

// Valid reports whether f is one of the supported frequencies.
func (f Frequency) Valid() bool {
	return slices.Contains(Frequencies(), f)
}

// Label returns the human-readable name ("Daily", "Weekly", "Monthly").
func (f Frequency) Label() string {
	switch f {
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	default:
		return string(f)
	}
}

// ParseFrequency parses a frequency name case-insensitively.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToUpper(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", errors.New("P101").WithDetail("got " + s)
	}
	return f, nil
}

// Participant is one member of the group.
type Participant struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Record is the state of one create form. Optional numbers are nil/invalid
// until the user enters them.
type Record struct {
	Name               string
	StartDate          time.Time
	Duration           *int
	ContributionAmount decimal.NullDecimal
	BankerFee          decimal.NullDecimal
	PaymentFrequency   Frequency
	Participants       []Participant
}

// Clone returns a copy that shares no memory with r.
func (r Record) Clone() Record {
	if r.Duration != nil {
		d := *r.Duration
		r.Duration = &d
	}
	r.Participants = slices.Clone(r.Participants)
	return r
}

// Field accessors for the form holder.
var (
	NameField               = form.NewField("name", func(r *Record) *string { return &r.Name })
	StartDateField          = form.NewField("startDate", func(r *Record) *time.Time { return &r.StartDate })
	DurationField           = form.NewField("duration", func(r *Record) **int { return &r.Duration })
	ContributionAmountField = form.NewField("contributionAmount", func(r *Record) *decimal.NullDecimal { return &r.ContributionAmount })
	BankerFeeField          = form.NewField("bankerFee", func(r *Record) *decimal.NullDecimal { return &r.BankerFee })
	PaymentFrequencyField   = form.NewField("paymentFrequency", func(r *Record) *Frequency { return &r.PaymentFrequency })

	ParticipantsList = form.NewList("participants", func(r *Record) *[]Participant { return &r.Participants })
)

// ParticipantName addresses participants[i].name.
func ParticipantName(i int) form.Field[Record, string] {
	return form.Item(ParticipantsList, i, "name", func(p *Participant) *string { return &p.Name })
}

// ParticipantEmail addresses participants[i].email.
func ParticipantEmail(i int) form.Field[Record, string] {
	return form.Item(ParticipantsList, i, "email", func(p *Participant) *string { return &p.Email })
}

// Defaults holds the initial values of a new form.
type Defaults struct {
	Duration           int
	ContributionAmount decimal.Decimal
	BankerFee          decimal.Decimal
	PaymentFrequency   Frequency

	// Now supplies the default start date. Defaults to time.Now.
	Now func() time.Time
}

// StandardDefaults returns the stock initial values: 12 periods, 10 per
// contribution, 10% banker fee, monthly, starting now.
func StandardDefaults() Defaults {
	return Defaults{
		Duration:           12,
		ContributionAmount: decimal.NewFromInt(10),
		BankerFee:          decimal.NewFromInt(10),
		PaymentFrequency:   Monthly,
		Now:                time.Now,
	}
}

// Record builds a fresh initial record.
func (d Defaults) Record() Record {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	duration := d.Duration
	return Record{
		StartDate:          now(),
		Duration:           &duration,
		ContributionAmount: decimal.NullDecimal{Decimal: d.ContributionAmount, Valid: true},
		BankerFee:          decimal.NullDecimal{Decimal: d.BankerFee, Valid: true},
		PaymentFrequency:   d.PaymentFrequency,
		Participants:       []Participant{},
	}
}

// NewForm creates a form holder seeded from d and validated by Schema.
func NewForm(d Defaults) *form.Form[Record] {
	return form.NewFunc(d.Record, form.WithSchema[Record](Schema))
}
