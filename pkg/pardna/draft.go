package pardna

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/pardna/internal/errors"
)

// Draft is the file form of a Record, read by `pardna create --file`.
// Omitted numbers stay missing so validation can report them.
type Draft struct {
	Name               string              `json:"name" yaml:"name"`
	StartDate          time.Time           `json:"startDate" yaml:"startDate"`
	Duration           *int                `json:"duration" yaml:"duration"`
	ContributionAmount decimal.NullDecimal `json:"contributionAmount" yaml:"contributionAmount"`
	BankerFee          decimal.NullDecimal `json:"bankerFee" yaml:"bankerFee"`
	PaymentFrequency   string              `json:"paymentFrequency" yaml:"paymentFrequency"`
	Participants       []Participant       `json:"participants" yaml:"participants"`
}

// ParseDraft decodes a YAML or JSON document. YAML is a superset of JSON,
// but JSON input is decoded with encoding/json for its stricter errors.
func ParseDraft(data []byte, format string) (Draft, error) {
	var d Draft
	var err error
	switch format {
	case "json":
		err = json.Unmarshal(data, &d)
	default:
		err = yaml.Unmarshal(data, &d)
	}
	if err != nil {
		return Draft{}, errors.New("P140").Wrap(err)
	}
	return d, nil
}

// Record converts the draft to a Record. Fields the draft leaves out are
// left missing rather than defaulted.
func (d Draft) Record() Record {
	r := Record{
		Name:               d.Name,
		StartDate:          d.StartDate,
		ContributionAmount: d.ContributionAmount,
		BankerFee:          d.BankerFee,
		PaymentFrequency:   Frequency(d.PaymentFrequency),
		Participants:       append([]Participant{}, d.Participants...),
	}
	if d.Duration != nil {
		v := *d.Duration
		r.Duration = &v
	}
	if f, err := ParseFrequency(d.PaymentFrequency); err == nil {
		r.PaymentFrequency = f
	}
	return r
}
