package pardna

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol prefixes money amounts in labels.
const DefaultCurrencySymbol = "£"

var hundred = decimal.NewFromInt(100)

// FeeAmount returns the banker fee charged per contribution:
// contribution * feePercent / 100.
func FeeAmount(contribution, feePercent decimal.Decimal) decimal.Decimal {
	return contribution.Mul(feePercent).Div(hundred)
}

// RecordFeeAmount computes FeeAmount from the record's current values.
// Missing inputs count as zero.
func RecordFeeAmount(r Record) decimal.Decimal {
	return FeeAmount(r.ContributionAmount.Decimal, r.BankerFee.Decimal)
}

// DurationUnitLabel names the period counted by the duration field.
// Unknown frequencies fall back to "months".
func DurationUnitLabel(f Frequency) string {
	switch f {
	case Daily:
		return "days"
	case Weekly:
		return "weeks"
	case Monthly:
		return "months"
	default:
		return "months"
	}
}

// DurationLabel renders the duration with its unit, e.g. "12 months".
func DurationLabel(r Record) string {
	unit := DurationUnitLabel(r.PaymentFrequency)
	if r.Duration == nil {
		return unit
	}
	return strconv.Itoa(*r.Duration) + " " + unit
}

// FormatMoney renders d with two decimals behind symbol.
func FormatMoney(symbol string, d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + symbol + d.Neg().StringFixed(2)
	}
	return symbol + d.StringFixed(2)
}

// FeeLabel is the banker fee field title with the derived amount.
func FeeLabel(symbol string, r Record) string {
	return "Banker fee per contribution (" + FormatMoney(symbol, RecordFeeAmount(r)) + ")"
}

// SubmitLabel is the submit button text.
func SubmitLabel(submitting bool) string {
	if submitting {
		return "Creating"
	}
	return "Create"
}

// FrequencyOption is one entry of the payment frequency picker.
type FrequencyOption struct {
	Label string
	Value Frequency
}

// FrequencyOptions returns the picker entries in display order.
func FrequencyOptions() []FrequencyOption {
	opts := make([]FrequencyOption, 0, 3)
	for _, f := range Frequencies() {
		opts = append(opts, FrequencyOption{Label: f.Label(), Value: f})
	}
	return opts
}
