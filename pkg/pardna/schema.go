package pardna

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vango-dev/pardna/internal/errors"
	"github.com/vango-dev/pardna/pkg/features/form"
)

// Limits enforced on the record.
const (
	MaxDuration              = 52
	MaxBankerFee             = 40
	MaxParticipantNameLength = 100
)

var frequencyNames = func() []string {
	names := make([]string, 0, 3)
	for _, f := range Frequencies() {
		names = append(names, string(f))
	}
	return names
}()

// Schema validates a Record for the form holder.
var Schema = form.SchemaFunc[Record](Validate)

// Validate checks r against the create rules and returns every failing path.
// It never panics; malformed values produce an entry for their path.
func Validate(r Record) form.Errors {
	errs := form.Errors{}

	errs.Check(StartDateField.Path(), r.StartDate,
		form.Required("Start date is required"))

	errs.Check(DurationField.Path(), optionalInt(r.Duration),
		form.Required("Duration is required"),
		form.Numeric("Duration must be a number"),
		form.Between(0, MaxDuration, "Duration must be between 0 and 52"))

	errs.Check(ContributionAmountField.Path(), optionalDecimal(r.ContributionAmount),
		form.Required("Contribution amount is required"),
		form.Numeric("Contribution amount must be a number"),
		form.NonNegative("Contribution amount must not be negative"),
		form.Custom(contributionFits))

	errs.Check(BankerFeeField.Path(), optionalDecimal(r.BankerFee),
		form.Required("Banker fee is required"),
		form.Numeric("Banker fee must be a number"),
		form.Between(0, MaxBankerFee, "Banker fee must be between 0 and 40%"))

	errs.Check(PaymentFrequencyField.Path(), string(r.PaymentFrequency),
		form.Required("Payment frequency is required"),
		form.OneOf(frequencyNames, "Payment frequency must be one of "+strings.Join(frequencyNames, ", ")))

	for i, p := range r.Participants {
		errs.Check(ParticipantName(i).Path(), p.Name,
			form.Required("Participant name is required"),
			form.MaxLength(MaxParticipantNameLength, "Participant name must be at most 100 characters"))
		errs.Check(ParticipantEmail(i).Path(), p.Email,
			form.Required("Participant email is required"),
			form.Email("Participant email is invalid"))
	}

	return errs
}

// contributionFits rejects amounts whose minor units overflow the payload.
func contributionFits(value any) error {
	if d, ok := value.(decimal.Decimal); ok && !FitsMinorUnits(d) {
		return form.ValidationError{Message: "Contribution amount is too large"}
	}
	return nil
}

func optionalInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func optionalDecimal(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal
}

// InvalidRecordError carries the failing paths of a rejected record.
type InvalidRecordError struct {
	Errors form.Errors
}

func (e *InvalidRecordError) Error() string {
	var b strings.Builder
	b.WriteString(errors.New("P100").Error())
	for i, path := range e.Errors.Paths() {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(path)
		b.WriteString(": ")
		b.WriteString(e.Errors[path])
	}
	return b.String()
}

// Unwrap exposes the P100 code to errors.Is.
func (e *InvalidRecordError) Unwrap() error {
	return errors.New("P100")
}
