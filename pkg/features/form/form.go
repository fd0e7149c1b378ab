package form

import (
	"maps"
	"sort"
	"sync"
)

// Errors maps a field path to its validation message. A path has at most one
// message.
type Errors map[string]string

// Check runs validators against value in order and records the first failure
// under path. It reports whether value passed.
func (e Errors) Check(path string, value any, validators ...Validator) bool {
	for _, v := range validators {
		if err := v.Validate(value); err != nil {
			e[path] = err.Error()
			return false
		}
	}
	return true
}

// Paths returns the paths with errors in sorted order.
func (e Errors) Paths() []string {
	paths := make([]string, 0, len(e))
	for p := range e {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Schema validates a whole record.
type Schema[T any] interface {
	Validate(values T) Errors
}

// SchemaFunc adapts a function to Schema.
type SchemaFunc[T any] func(values T) Errors

// Validate implements Schema.
func (fn SchemaFunc[T]) Validate(values T) Errors {
	return fn(values)
}

// Cloner is implemented by records holding slices or maps so snapshots do not
// alias the form's state.
type Cloner[T any] interface {
	Clone() T
}

// Form is a type-safe form handler with validation support. It owns the
// current values, validation errors, touched/dirty flags and the submitting
// flag for one editing session.
type Form[T any] struct {
	initial    func() T
	values     T
	errors     Errors
	touched    map[string]bool
	dirty      bool
	submitting bool
	schema     Schema[T]

	mu sync.RWMutex
}

// Option configures a Form.
type Option[T any] func(*Form[T])

// WithSchema sets the schema used by Validate and ValidateField.
func WithSchema[T any](schema Schema[T]) Option[T] {
	return func(f *Form[T]) {
		f.schema = schema
	}
}

// New creates a Form whose initial and reset value is initial.
func New[T any](initial T, opts ...Option[T]) *Form[T] {
	snapshot := clone(initial)
	return NewFunc(func() T { return clone(snapshot) }, opts...)
}

// NewFunc creates a Form whose initial value is produced by fn. fn is called
// again on every Reset, so defaults such as "today" stay current.
func NewFunc[T any](fn func() T, opts ...Option[T]) *Form[T] {
	f := &Form[T]{
		initial: fn,
		values:  fn(),
		errors:  make(Errors),
		touched: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// clone copies v through Cloner when T implements it.
func clone[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// Values returns a copy of the current form values.
func (f *Form[T]) Values() T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return clone(f.values)
}

// SetValues replaces all form values and marks the form dirty.
func (f *Form[T]) SetValues(values T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = clone(values)
	f.dirty = true
}

// Reset restores the form to its initial values and clears errors and flags.
func (f *Form[T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = f.initial()
	f.errors = make(Errors)
	f.touched = make(map[string]bool)
	f.dirty = false
	f.submitting = false
}

// Validate runs the schema over the current values, stores the resulting
// errors and returns true if there are none.
func (f *Form[T]) Validate() bool {
	errs := f.Check()
	f.mu.Lock()
	f.errors = errs
	f.mu.Unlock()
	return len(errs) == 0
}

// Check runs the schema without storing the result.
func (f *Form[T]) Check() Errors {
	f.mu.RLock()
	values := clone(f.values)
	schema := f.schema
	f.mu.RUnlock()

	if schema == nil {
		return make(Errors)
	}
	errs := schema.Validate(values)
	if errs == nil {
		errs = make(Errors)
	}
	return errs
}

// ValidateField validates a single path, marks it touched and returns true
// if it is valid. Errors on other paths are left as they were.
func (f *Form[T]) ValidateField(path string) bool {
	errs := f.Check()

	f.mu.Lock()
	defer f.mu.Unlock()
	if msg, ok := errs[path]; ok {
		f.errors[path] = msg
	} else {
		delete(f.errors, path)
	}
	f.touched[path] = true
	_, failed := errs[path]
	return !failed
}

// Errors returns a copy of all validation errors keyed by path.
func (f *Form[T]) Errors() Errors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return maps.Clone(f.errors)
}

// FieldError returns the validation message for path, or "".
func (f *Form[T]) FieldError(path string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.errors[path]
}

// HasError returns true if the path has a validation error.
func (f *Form[T]) HasError(path string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.errors[path]
	return ok
}

// IsValid returns true if there are no stored validation errors.
func (f *Form[T]) IsValid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.errors) == 0
}

// Touch marks a path as interacted with.
func (f *Form[T]) Touch(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched[path] = true
}

// IsTouched returns true if the path has been interacted with.
func (f *Form[T]) IsTouched(path string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.touched[path]
}

// IsDirty returns true if any field has been modified.
func (f *Form[T]) IsDirty() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.dirty
}

// IsSubmitting returns true if the form is currently being submitted.
func (f *Form[T]) IsSubmitting() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.submitting
}

// SetSubmitting sets the submitting state.
func (f *Form[T]) SetSubmitting(submitting bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = submitting
}
