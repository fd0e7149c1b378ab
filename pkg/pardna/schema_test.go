package pardna

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/vango-dev/pardna/internal/errors"
	"github.com/vango-dev/pardna/pkg/features/form"
)

func TestValidateValidRecord(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"complete", func(*Record) {}},
		{"no name", func(r *Record) { r.Name = "" }},
		{"no participants", func(r *Record) { r.Participants = nil }},
		{"zero duration", func(r *Record) { r.Duration = intPtr(0) }},
		{"max duration", func(r *Record) { r.Duration = intPtr(52) }},
		{"zero contribution", func(r *Record) { r.ContributionAmount = money("0") }},
		{"largest contribution", func(r *Record) { r.ContributionAmount = money("92233720368547758.07") }},
		{"long participant name", func(r *Record) { r.Participants[0].Name = strings.Repeat("a", 100) }},
		{"max fee", func(r *Record) { r.BankerFee = money("40") }},
		{"daily", func(r *Record) { r.PaymentFrequency = Daily }},
		{"weekly", func(r *Record) { r.PaymentFrequency = Weekly }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)
			if errs := Validate(r); len(errs) != 0 {
				t.Errorf("Validate() = %v, want no errors", errs)
			}
		})
	}
}

func TestValidateMissingStartDateOnlyFlagsStartDate(t *testing.T) {
	r := validRecord()
	r.StartDate = time.Time{}

	want := form.Errors{"startDate": "Start date is required"}
	if diff := cmp.Diff(want, Validate(r)); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
		path   string
		msg    string
	}{
		{"duration missing", func(r *Record) { r.Duration = nil }, "duration", "Duration is required"},
		{"duration too long", func(r *Record) { r.Duration = intPtr(53) }, "duration", "Duration must be between 0 and 52"},
		{"duration negative", func(r *Record) { r.Duration = intPtr(-1) }, "duration", "Duration must be between 0 and 52"},
		{"contribution missing", func(r *Record) { r.ContributionAmount = decimal.NullDecimal{} }, "contributionAmount", "Contribution amount is required"},
		{"contribution negative", func(r *Record) { r.ContributionAmount = money("-0.01") }, "contributionAmount", "Contribution amount must not be negative"},
		{"contribution overflows minor units", func(r *Record) { r.ContributionAmount = money("100000000000000000000") }, "contributionAmount", "Contribution amount is too large"},
		{"contribution rounds past minor units", func(r *Record) { r.ContributionAmount = money("92233720368547758.075") }, "contributionAmount", "Contribution amount is too large"},
		{"fee missing", func(r *Record) { r.BankerFee = decimal.NullDecimal{} }, "bankerFee", "Banker fee is required"},
		{"fee too high", func(r *Record) { r.BankerFee = money("40.01") }, "bankerFee", "Banker fee must be between 0 and 40%"},
		{"frequency missing", func(r *Record) { r.PaymentFrequency = "" }, "paymentFrequency", "Payment frequency is required"},
		{"frequency unknown", func(r *Record) { r.PaymentFrequency = "YEARLY" }, "paymentFrequency", "Payment frequency must be one of DAILY, WEEKLY, MONTHLY"},
		{"participant name missing", func(r *Record) { r.Participants[1].Name = " " }, "participants[1].name", "Participant name is required"},
		{"participant name too long", func(r *Record) { r.Participants[0].Name = strings.Repeat("a", 101) }, "participants[0].name", "Participant name must be at most 100 characters"},
		{"participant email missing", func(r *Record) { r.Participants[0].Email = "" }, "participants[0].email", "Participant email is required"},
		{"participant email malformed", func(r *Record) { r.Participants[1].Email = "grace@" }, "participants[1].email", "Participant email is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)
			want := form.Errors{tt.path: tt.msg}
			if diff := cmp.Diff(want, Validate(r)); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateEmptyRecordIsTotal(t *testing.T) {
	errs := Validate(Record{Participants: []Participant{{}}})

	want := []string{
		"bankerFee",
		"contributionAmount",
		"duration",
		"participants[0].email",
		"participants[0].name",
		"paymentFrequency",
		"startDate",
	}
	if diff := cmp.Diff(want, errs.Paths()); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidRecordError(t *testing.T) {
	err := &InvalidRecordError{Errors: form.Errors{
		"startDate": "Start date is required",
		"duration":  "Duration is required",
	}}

	want := "P100: Pardna record is invalid: duration: Duration is required; startDate: Start date is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, "P100") {
		t.Error("InvalidRecordError should carry code P100")
	}
}

func TestParseFrequency(t *testing.T) {
	for in, want := range map[string]Frequency{"daily": Daily, " Weekly ": Weekly, "MONTHLY": Monthly} {
		got, err := ParseFrequency(in)
		if err != nil || got != want {
			t.Errorf("ParseFrequency(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseFrequency("yearly"); !errors.Is(err, "P101") {
		t.Errorf("ParseFrequency(yearly) error = %v, want P101", err)
	}
}

func TestDefaultsRecord(t *testing.T) {
	r := fixedDefaults().Record()

	if !r.StartDate.Equal(fixedNow) {
		t.Errorf("StartDate = %v, want %v", r.StartDate, fixedNow)
	}
	if r.Duration == nil || *r.Duration != 12 {
		t.Errorf("Duration = %v, want 12", r.Duration)
	}
	if !r.ContributionAmount.Valid || !r.ContributionAmount.Decimal.Equal(decimal.NewFromInt(10)) {
		t.Errorf("ContributionAmount = %v, want 10", r.ContributionAmount)
	}
	if !r.BankerFee.Valid || !r.BankerFee.Decimal.Equal(decimal.NewFromInt(10)) {
		t.Errorf("BankerFee = %v, want 10", r.BankerFee)
	}
	if r.PaymentFrequency != Monthly {
		t.Errorf("PaymentFrequency = %q, want MONTHLY", r.PaymentFrequency)
	}
	if r.Name != "" || len(r.Participants) != 0 {
		t.Errorf("Name/Participants should start empty: %+v", r)
	}
	if errs := Validate(r); len(errs) != 0 {
		t.Errorf("default record should be valid, got %v", errs)
	}
}

func TestRecordClone(t *testing.T) {
	r := validRecord()
	c := r.Clone()

	*c.Duration = 1
	c.Participants[0].Name = "changed"

	if *r.Duration != 12 || r.Participants[0].Name != "Ada" {
		t.Errorf("Clone shares memory with original: %+v", r)
	}
}
