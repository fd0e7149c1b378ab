package tui

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/vango-dev/pardna/internal/errors"
	"github.com/vango-dev/pardna/pkg/features/form"
	"github.com/vango-dev/pardna/pkg/navigation"
	"github.com/vango-dev/pardna/pkg/pardna"
)

type stubDriver struct {
	inputs    []string
	selectIdx []int
	confirm   []bool

	inputPos   int
	selectPos  int
	confirmPos int

	prompts []string
	infos   []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", stderrors.New("no input scripted for " + cfg.Message)
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, stderrors.New("no confirm scripted for " + cfg.Message)
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, stderrors.New("no select scripted for " + cfg.Message)
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func (s *stubDriver) sawInfo(substr string) bool {
	for _, m := range s.infos {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func (s *stubDriver) sawPrompt(substr string) bool {
	for _, m := range s.prompts {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

type recordingCreator struct {
	payloads []pardna.Payload
	errs     []error
}

func (c *recordingCreator) CreatePardna(_ context.Context, p pardna.Payload) (string, error) {
	c.payloads = append(c.payloads, p)
	if n := len(c.payloads) - 1; n < len(c.errs) && c.errs[n] != nil {
		return "", c.errs[n]
	}
	return "p-42", nil
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newSession(creator pardna.Creator) (*pardna.Controller, *navigation.Stack) {
	d := pardna.StandardDefaults()
	d.Now = func() time.Time { return time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC) }
	stack := navigation.NewStack("CreatePardna")
	ctrl := pardna.NewController(pardna.NewForm(d), creator, stack,
		pardna.LogReporter{Logger: quiet}, pardna.WithLogger(quiet))
	return ctrl, stack
}

func TestRunHappyPath(t *testing.T) {
	creator := &recordingCreator{}
	ctrl, stack := newSession(creator)
	driver := &stubDriver{
		inputs:    []string{"Street pardna", "2026-11-01", "6", "£25.50", "12.5", "Ada", "ada@example.com"},
		selectIdx: []int{1, rowNext},
		confirm:   []bool{true, true},
	}

	id, err := NewRunner(ctrl, driver, WithLogger(quiet)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if id != "p-42" {
		t.Errorf("id = %q", id)
	}

	if len(creator.payloads) != 1 {
		t.Fatalf("creator called %d times, want 1", len(creator.payloads))
	}
	got := creator.payloads[0]
	want := pardna.Payload{
		Name:               "Street pardna",
		StartDate:          time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		Duration:           6,
		ContributionAmount: 2550,
		BankerFee:          decimal.RequireFromString("12.5"),
		PaymentFrequency:   pardna.Weekly,
		Participants:       []pardna.Participant{{Name: "Ada", Email: "ada@example.com"}},
	}
	opt := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(want, got, opt); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}

	if !driver.sawPrompt("Duration (weeks)") {
		t.Errorf("duration prompt should use the chosen frequency's unit; prompts = %q", driver.prompts)
	}
	if !driver.sawPrompt("Banker fee per contribution (£2.55)") {
		t.Errorf("fee prompt should show the derived amount; prompts = %q", driver.prompts)
	}
	if !driver.sawInfo("Creating") || !driver.sawInfo("Created pardna p-42") {
		t.Errorf("infos = %q", driver.infos)
	}
	if driver.sawInfo("need attention") {
		t.Errorf("valid form flagged as needing attention; infos = %q", driver.infos)
	}
	if cur := stack.Current(); cur.Screen != pardna.PardnaScreen || cur.Params["id"] != "p-42" {
		t.Errorf("navigated to %+v", cur)
	}
}

func TestRunValidationSendsUserBack(t *testing.T) {
	creator := &recordingCreator{}
	ctrl, _ := newSession(creator)
	driver := &stubDriver{
		inputs: []string{
			"", "2026-11-01", "12", "10", "10", "Ada", "not-an-email",
			"", "2026-11-01", "12", "10", "10", "Ada", "ada@example.com",
		},
		selectIdx: []int{2, rowNext, 2, rowNext},
		confirm:   []bool{true, true, true, true},
	}

	if _, err := NewRunner(ctrl, driver).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(creator.payloads) != 1 {
		t.Fatalf("creator called %d times, want 1", len(creator.payloads))
	}
	if !driver.sawInfo("participants[0].email: Participant email is invalid") {
		t.Errorf("validation errors not shown; infos = %q", driver.infos)
	}
	if !driver.sawInfo("  Participant email is invalid") {
		t.Errorf("field error not shown on blur; infos = %q", driver.infos)
	}
	if !driver.sawInfo("Some fields still need attention.") {
		t.Errorf("summary did not flag outstanding errors; infos = %q", driver.infos)
	}
}

func TestRunValidationDeclined(t *testing.T) {
	creator := &recordingCreator{}
	ctrl, _ := newSession(creator)
	driver := &stubDriver{
		inputs:    []string{"", "2026-11-01", "12", "10", "10", "", ""},
		selectIdx: []int{2, rowNext},
		confirm:   []bool{true, true, false},
	}

	_, err := NewRunner(ctrl, driver).Run(context.Background())
	var invalid *pardna.InvalidRecordError
	if !stderrors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidRecordError", err)
	}
	if len(creator.payloads) != 0 {
		t.Error("creator must not be called for an invalid record")
	}
}

func TestRunRetryAfterFailure(t *testing.T) {
	creator := &recordingCreator{errs: []error{stderrors.New("network down")}}
	ctrl, _ := newSession(creator)
	driver := &stubDriver{
		inputs:    []string{"Retry pot", "2026-11-01", "12", "10", "10"},
		selectIdx: []int{2},
		confirm:   []bool{false, true, true, true},
	}

	id, err := NewRunner(ctrl, driver).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if id != "p-42" {
		t.Errorf("id = %q", id)
	}
	if len(creator.payloads) != 2 {
		t.Fatalf("creator called %d times, want 2", len(creator.payloads))
	}
	if creator.payloads[1].Name != "Retry pot" {
		t.Errorf("retry should resend the kept form, got %q", creator.payloads[1].Name)
	}
	if !driver.sawInfo("network down") {
		t.Errorf("failure not surfaced; infos = %q", driver.infos)
	}
}

func TestRunFailureNotRetried(t *testing.T) {
	creator := &recordingCreator{errs: []error{stderrors.New("network down")}}
	ctrl, _ := newSession(creator)
	driver := &stubDriver{
		inputs:    []string{"", "2026-11-01", "12", "10", "10"},
		selectIdx: []int{2},
		confirm:   []bool{false, true, false},
	}

	_, err := NewRunner(ctrl, driver).Run(context.Background())
	if !errors.Is(err, "P200") {
		t.Fatalf("error = %v, want P200", err)
	}
	if ctrl.State() != pardna.Failed {
		t.Errorf("state = %v, want Failed", ctrl.State())
	}
}

func TestRunSubmitDeclined(t *testing.T) {
	ctrl, _ := newSession(&recordingCreator{})
	driver := &stubDriver{
		inputs:    []string{"", "2026-11-01", "12", "10", "10"},
		selectIdx: []int{2},
		confirm:   []bool{false, false},
	}

	if _, err := NewRunner(ctrl, driver).Run(context.Background()); !errors.Is(err, "P141") {
		t.Fatalf("error = %v, want P141", err)
	}
}

func TestEditParticipantsRowActions(t *testing.T) {
	ctrl, _ := newSession(&recordingCreator{})
	driver := &stubDriver{
		inputs:    []string{"Ada", "ada@example.com", "Bob", "bob@example.com", "Cy", "cy@example.com"},
		selectIdx: []int{rowInsertAfter, rowRemove, rowNext},
		confirm:   []bool{true},
	}

	if err := NewRunner(ctrl, driver).EditParticipants(context.Background()); err != nil {
		t.Fatalf("EditParticipants() error = %v", err)
	}

	want := []pardna.Participant{{Name: "Ada", Email: "ada@example.com"}}
	got := pardna.Participants(ctrl.Form()).All()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("participants mismatch (-want +got):\n%s", diff)
	}
}

func TestEditParticipantsRemoveLastOffersAdd(t *testing.T) {
	ctrl, _ := newSession(&recordingCreator{})
	driver := &stubDriver{
		inputs:    []string{"Ada", "ada@example.com"},
		selectIdx: []int{rowRemove},
		confirm:   []bool{true, false},
	}

	if err := NewRunner(ctrl, driver).EditParticipants(context.Background()); err != nil {
		t.Fatalf("EditParticipants() error = %v", err)
	}
	if n := pardna.Participants(ctrl.Form()).Len(); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
	if driver.confirmPos != 2 {
		t.Errorf("add affordance offered %d times, want 2", driver.confirmPos)
	}
}

func TestAskRepromptsOnParseError(t *testing.T) {
	driver := &stubDriver{inputs: []string{"soon", "6 weeks"}}

	got, err := ask(context.Background(), driver, InputConfig{Message: "Duration"}, parseDuration)
	if err != nil {
		t.Fatalf("ask() error = %v", err)
	}
	if got != 6 {
		t.Errorf("ask() = %d, want 6", got)
	}
	if !driver.sawInfo("enter a whole number") {
		t.Errorf("infos = %q", driver.infos)
	}
}

func TestParsers(t *testing.T) {
	r := &Runner{symbol: "£"}
	if d, err := r.parseMoney("£1,250.50"); err != nil || !d.Equal(decimal.RequireFromString("1250.5")) {
		t.Errorf("parseMoney = %s, %v", d, err)
	}
	if _, err := r.parseMoney("lots"); err == nil {
		t.Error("parseMoney(lots) should fail")
	}
	if d, err := parsePercent("12.5 %"); err != nil || !d.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("parsePercent = %s, %v", d, err)
	}
	if d, err := parseDate("2026-11-01"); err != nil || d.Day() != 1 {
		t.Errorf("parseDate = %v, %v", d, err)
	}
	if _, err := parseDate("01/11/2026"); err == nil {
		t.Error("parseDate should reject other layouts")
	}
}

func TestSummary(t *testing.T) {
	ctrl, _ := newSession(&recordingCreator{})
	form.Set(ctrl.Form(), pardna.NameField, "Summer pot")

	s := NewRunner(ctrl, &stubDriver{}).Summary()
	for _, want := range []string{"Summer pot", "Monthly", "12 months", "£10.00", "10% (£1.00 per contribution)", "Participants:       0"} {
		if !strings.Contains(s, want) {
			t.Errorf("Summary() missing %q:\n%s", want, s)
		}
	}
}
