package pardna

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vango-dev/pardna/internal/errors"
	"github.com/vango-dev/pardna/pkg/features/form"
)

// State is the submission state of a Controller.
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Controller validates, submits and resets one form session. At most one
// create call is outstanding at a time.
type Controller struct {
	form      *form.Form[Record]
	creator   Creator
	navigator Navigator
	reporter  Reporter
	logger    *slog.Logger
	screen    string

	mu      sync.Mutex
	state   State
	lastErr error
	lastID  string
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger for submission events.
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithTargetScreen overrides the screen navigated to after a create.
func WithTargetScreen(screen string) ControllerOption {
	return func(c *Controller) {
		c.screen = screen
	}
}

// NewController wires a form to its collaborators. reporter may be nil, in
// which case failures are reported through the controller's logger.
func NewController(f *form.Form[Record], creator Creator, navigator Navigator, reporter Reporter, opts ...ControllerOption) *Controller {
	c := &Controller{
		form:      f,
		creator:   creator,
		navigator: navigator,
		reporter:  reporter,
		logger:    slog.Default(),
		screen:    PardnaScreen,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.reporter == nil {
		c.reporter = LogReporter{Logger: c.logger}
	}
	return c
}

// Form returns the form this controller submits.
func (c *Controller) Form() *form.Form[Record] {
	return c.form
}

// State returns the current submission state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError returns the error of the most recent failed submission, or nil.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// LastID returns the id created by the most recent successful submission.
func (c *Controller) LastID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastID
}

// SubmitLabel returns the submit button text for the current state.
func (c *Controller) SubmitLabel() string {
	return SubmitLabel(c.State() == Submitting)
}

// Submit validates the form and, if it is valid, creates the Pardna.
//
// Validation failures leave the controller Idle and return an
// *InvalidRecordError; the errors are also stored on the form. A failed
// create leaves the form untouched, moves to Failed and returns a P200 error.
// A successful create resets the form, navigates to the Pardna screen and
// returns the new id. Calling Submit while a create is outstanding returns
// P203 without side effects.
func (c *Controller) Submit(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		return "", errors.New("P203")
	}

	if !c.form.Validate() {
		c.state = Idle
		c.mu.Unlock()
		errs := c.form.Errors()
		c.logger.DebugContext(ctx, "pardna form invalid", slog.Int("errors", len(errs)))
		return "", &InvalidRecordError{Errors: errs}
	}

	payload, err := NewPayload(c.form.Values())
	if err != nil {
		c.state = Idle
		c.mu.Unlock()
		return "", err
	}

	c.state = Submitting
	c.form.SetSubmitting(true)
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "creating pardna",
		slog.String("name", payload.Name),
		slog.Int("participants", len(payload.Participants)),
	)

	id, err := c.creator.CreatePardna(ctx, payload)
	c.form.SetSubmitting(false)

	if err != nil {
		wrapped := errors.New("P200").Wrap(err)
		c.mu.Lock()
		c.state = Failed
		c.lastErr = wrapped
		c.mu.Unlock()

		c.reporter.Report(ctx, err)
		return "", wrapped
	}

	c.mu.Lock()
	c.state = Succeeded
	c.lastErr = nil
	c.lastID = id
	c.form.Reset()
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "pardna created", slog.String("id", id))
	if c.navigator != nil {
		c.navigator.Navigate(c.screen, map[string]string{"id": id})
	}
	return id, nil
}
