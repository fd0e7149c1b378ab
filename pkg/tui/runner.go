package tui

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vango-dev/pardna/internal/errors"
	"github.com/vango-dev/pardna/pkg/features/form"
	"github.com/vango-dev/pardna/pkg/pardna"
)

const dateLayout = "2006-01-02"

// Participant row actions, in the order they are offered.
const (
	rowNext = iota
	rowInsertAfter
	rowRemove
)

var rowActions = []string{"Next", "Add a participant after this one", "Remove this participant"}

// Option configures a Runner.
type Option func(*Runner)

// WithCurrencySymbol sets the symbol shown before money amounts.
func WithCurrencySymbol(symbol string) Option {
	return func(r *Runner) {
		r.symbol = symbol
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// Runner drives one create pardna session in the terminal.
type Runner struct {
	ctrl   *pardna.Controller
	form   *form.Form[pardna.Record]
	driver PromptDriver
	symbol string
	logger *slog.Logger
}

// NewRunner creates a runner for ctrl's form.
func NewRunner(ctrl *pardna.Controller, driver PromptDriver, opts ...Option) *Runner {
	r := &Runner{
		ctrl:   ctrl,
		form:   ctrl.Form(),
		driver: driver,
		symbol: pardna.DefaultCurrencySymbol,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Run fills the form and submits it, returning the created id. Declining to
// fix invalid input or to retry ends the session with P141 or the last
// submission error respectively.
func (r *Runner) Run(ctx context.Context) (string, error) {
	edit := true
	for {
		if edit {
			if err := r.EditFields(ctx); err != nil {
				return "", err
			}
			if err := r.EditParticipants(ctx); err != nil {
				return "", err
			}
		}

		if err := r.driver.Info(ctx, r.Summary()); err != nil {
			return "", err
		}
		if !r.form.IsValid() {
			_ = r.driver.Info(ctx, "Some fields still need attention.")
		}
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{Message: pardna.SubmitLabel(false) + " this pardna?", Default: true})
		if err != nil {
			return "", err
		}
		if !ok {
			return "", errors.New("P141").WithDetail("submission declined")
		}

		_ = r.driver.Info(ctx, pardna.SubmitLabel(true)+"...")
		id, err := r.ctrl.Submit(ctx)
		if err == nil {
			_ = r.driver.Info(ctx, "Created pardna "+id)
			return id, nil
		}

		var invalid *pardna.InvalidRecordError
		if stderrors.As(err, &invalid) {
			for _, path := range invalid.Errors.Paths() {
				_ = r.driver.Info(ctx, fmt.Sprintf("  %s: %s", path, invalid.Errors[path]))
			}
			again, cerr := r.driver.Confirm(ctx, ConfirmConfig{Message: "Fix these and try again?", Default: true})
			if cerr != nil {
				return "", cerr
			}
			if !again {
				return "", err
			}
			edit = true
			continue
		}

		r.logger.DebugContext(ctx, "submit failed", slog.Any("error", err))
		_ = r.driver.Info(ctx, err.Error())
		retry, cerr := r.driver.Confirm(ctx, ConfirmConfig{Message: "Retry?", Default: true})
		if cerr != nil {
			return "", cerr
		}
		if !retry {
			return "", err
		}
		edit = false
	}
}

// EditFields prompts for every scalar field in form order.
func (r *Runner) EditFields(ctx context.Context) error {
	rec := r.form.Values()

	name, err := r.driver.Input(ctx, InputConfig{Message: "Name", Default: rec.Name})
	if err != nil {
		return err
	}
	form.Set(r.form, pardna.NameField, strings.TrimSpace(name))

	options := pardna.FrequencyOptions()
	labels := make([]string, len(options))
	current := 0
	for i, o := range options {
		labels[i] = o.Label
		if o.Value == rec.PaymentFrequency {
			current = i
		}
	}
	idx, err := r.driver.Select(ctx, SelectConfig{Message: "Payment frequency", Options: labels, DefaultIndex: current})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(options) {
		form.Set(r.form, pardna.PaymentFrequencyField, options[idx].Value)
	}
	r.blur(ctx, pardna.PaymentFrequencyField.Path())

	start, err := ask(ctx, r.driver, InputConfig{Message: "Start date (YYYY-MM-DD)", Default: formatDate(rec.StartDate)}, parseDate)
	if err != nil {
		return err
	}
	form.Set(r.form, pardna.StartDateField, start)
	r.blur(ctx, pardna.StartDateField.Path())

	unit := pardna.DurationUnitLabel(form.Get(r.form, pardna.PaymentFrequencyField))
	duration, err := ask(ctx, r.driver, InputConfig{Message: "Duration (" + unit + ")", Default: formatInt(rec.Duration)}, parseDuration)
	if err != nil {
		return err
	}
	form.Set(r.form, pardna.DurationField, &duration)
	r.blur(ctx, pardna.DurationField.Path())

	contribution, err := ask(ctx, r.driver, InputConfig{Message: "Contribution amount (" + r.symbol + ")", Default: formatDecimal(rec.ContributionAmount, 2)}, r.parseMoney)
	if err != nil {
		return err
	}
	form.Set(r.form, pardna.ContributionAmountField, decimal.NullDecimal{Decimal: contribution, Valid: true})
	r.blur(ctx, pardna.ContributionAmountField.Path())

	fee, err := ask(ctx, r.driver, InputConfig{Message: pardna.FeeLabel(r.symbol, r.form.Values()) + " %", Default: formatDecimal(rec.BankerFee, -1)}, parsePercent)
	if err != nil {
		return err
	}
	form.Set(r.form, pardna.BankerFeeField, decimal.NullDecimal{Decimal: fee, Valid: true})
	r.blur(ctx, pardna.BankerFeeField.Path())

	return nil
}

// EditParticipants walks the participant rows. Each row can be kept, have a
// blank row inserted after it, or be removed. An empty list offers to add
// the first participant.
func (r *Runner) EditParticipants(ctx context.Context) error {
	editor := pardna.Participants(r.form)

	for {
		for i := 0; i < editor.Len(); {
			p := editor.At(i)
			label := fmt.Sprintf("Participant %d", i+1)

			name, err := r.driver.Input(ctx, InputConfig{Message: label + " name", Default: p.Name})
			if err != nil {
				return err
			}
			editor.SetName(i, strings.TrimSpace(name))
			r.blur(ctx, pardna.ParticipantName(i).Path())

			email, err := r.driver.Input(ctx, InputConfig{Message: label + " email", Default: p.Email})
			if err != nil {
				return err
			}
			editor.SetEmail(i, strings.TrimSpace(email))
			r.blur(ctx, pardna.ParticipantEmail(i).Path())

			action, err := r.driver.Select(ctx, SelectConfig{Message: label, Options: rowActions})
			if err != nil {
				return err
			}
			switch action {
			case rowInsertAfter:
				editor.InsertEmptyAfter(i)
				i++
			case rowRemove:
				editor.RemoveAt(i)
			default:
				i++
			}
		}

		if !editor.ShowAddAffordance() {
			return nil
		}
		add, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Add a participant?", Default: true})
		if err != nil {
			return err
		}
		if !add {
			return nil
		}
		editor.AddEmpty()
	}
}

// blur validates one field and shows its error, like leaving an input.
func (r *Runner) blur(ctx context.Context, path string) {
	if r.form.ValidateField(path) {
		return
	}
	_ = r.driver.Info(ctx, "  "+r.form.FieldError(path))
}

// Summary renders the current record for confirmation.
func (r *Runner) Summary() string {
	rec := r.form.Values()
	var b strings.Builder
	fmt.Fprintf(&b, "Name:               %s\n", rec.Name)
	fmt.Fprintf(&b, "Payment frequency:  %s\n", rec.PaymentFrequency.Label())
	fmt.Fprintf(&b, "Start date:         %s\n", formatDate(rec.StartDate))
	fmt.Fprintf(&b, "Duration:           %s\n", pardna.DurationLabel(rec))
	if rec.ContributionAmount.Valid {
		fmt.Fprintf(&b, "Contribution:       %s\n", pardna.FormatMoney(r.symbol, rec.ContributionAmount.Decimal))
	}
	if rec.BankerFee.Valid {
		fmt.Fprintf(&b, "Banker fee:         %s%% (%s per contribution)\n",
			rec.BankerFee.Decimal.String(), pardna.FormatMoney(r.symbol, pardna.RecordFeeAmount(rec)))
	}
	fmt.Fprintf(&b, "Participants:       %d", len(rec.Participants))
	for _, p := range rec.Participants {
		fmt.Fprintf(&b, "\n  - %s <%s>", p.Name, p.Email)
	}
	return b.String()
}

// ask prompts until parse accepts the answer.
func ask[V any](ctx context.Context, d PromptDriver, cfg InputConfig, parse func(string) (V, error)) (V, error) {
	cfg.Validator = func(s string) error {
		_, err := parse(s)
		return err
	}
	for {
		s, err := d.Input(ctx, cfg)
		if err != nil {
			var zero V
			return zero, err
		}
		v, perr := parse(s)
		if perr == nil {
			return v, nil
		}
		if err := d.Info(ctx, "  "+perr.Error()); err != nil {
			var zero V
			return zero, err
		}
	}
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("enter a date as YYYY-MM-DD")
}

func parseDuration(s string) (int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("enter a whole number")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("enter a whole number")
	}
	return n, nil
}

func (r *Runner) parseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, r.symbol)
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("enter an amount such as 10.00")
	}
	return d, nil
}

func parsePercent(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("enter a percentage such as 10")
	}
	return d, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// formatDecimal renders d with places decimals, or as-is when places < 0.
func formatDecimal(d decimal.NullDecimal, places int32) string {
	if !d.Valid {
		return ""
	}
	if places < 0 {
		return d.Decimal.String()
	}
	return d.Decimal.StringFixed(places)
}
