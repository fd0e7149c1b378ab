package form

// Field is a typed accessor for one value inside a record of type T.
type Field[T, V any] struct {
	path string
	ref  func(*T) *V
}

// NewField creates a field accessor. ref must return a pointer into the given
// record; it is only ever called on the form's own copy.
func NewField[T, V any](path string, ref func(*T) *V) Field[T, V] {
	return Field[T, V]{path: path, ref: ref}
}

// Path returns the path that keys this field's errors and flags.
func (fd Field[T, V]) Path() string {
	return fd.path
}

// Get returns the current value of the field.
func (fd Field[T, V]) Get(f *Form[T]) V {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return *fd.ref(&f.values)
}

// Set replaces the value of the field and marks it dirty.
func (fd Field[T, V]) Set(f *Form[T], value V) {
	fd.Update(f, func(V) V { return value })
}

// Update computes the next value from the previous one and stores it.
func (fd Field[T, V]) Update(f *Form[T], fn func(prev V) V) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := fd.ref(&f.values)
	*p = fn(*p)
	f.dirty = true
}

// Get returns the value of field in f.
func Get[T, V any](f *Form[T], field Field[T, V]) V {
	return field.Get(f)
}

// Set stores value in field.
func Set[T, V any](f *Form[T], field Field[T, V], value V) {
	field.Set(f, value)
}

// Update replaces the value of field with fn(previous).
func Update[T, V any](f *Form[T], field Field[T, V], fn func(prev V) V) {
	field.Update(f, fn)
}
