package form

import (
	"slices"
	"strconv"
	"strings"

	"github.com/vango-dev/pardna/internal/errors"
)

// List is a typed accessor for a slice of E inside a record of type T.
// Row paths are written "path[i]" and row field paths "path[i].name".
type List[T, E any] struct {
	path string
	ref  func(*T) *[]E
}

// NewList creates a list accessor.
func NewList[T, E any](path string, ref func(*T) *[]E) List[T, E] {
	return List[T, E]{path: path, ref: ref}
}

// Path returns the list's own path.
func (l List[T, E]) Path() string {
	return l.path
}

// ItemPath returns the path of row i.
func (l List[T, E]) ItemPath(i int) string {
	return l.path + "[" + strconv.Itoa(i) + "]"
}

// Item returns a field accessor for a value inside row i. The accessor panics
// if row i no longer exists when it is used.
func Item[T, E, V any](l List[T, E], i int, name string, ref func(*E) *V) Field[T, V] {
	return NewField(l.ItemPath(i)+"."+name, func(t *T) *V {
		items := *l.ref(t)
		checkIndex(i, len(items))
		return ref(&items[i])
	})
}

// Len returns the number of rows.
func (l List[T, E]) Len(f *Form[T]) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(*l.ref(&f.values))
}

// Items returns a copy of the rows.
func (l List[T, E]) Items(f *Form[T]) []E {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(*l.ref(&f.values))
}

// At returns row i.
func (l List[T, E]) At(f *Form[T], i int) E {
	f.mu.RLock()
	defer f.mu.RUnlock()
	items := *l.ref(&f.values)
	checkIndex(i, len(items))
	return items[i]
}

// Append adds a row to the end of the list.
func (l List[T, E]) Append(f *Form[T], item E) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := l.ref(&f.values)
	*p = append(slices.Clip(*p), item)
	f.dirty = true
}

// Insert places item at index i, shifting rows i.. one to the right.
// i must be in [0, len].
func (l List[T, E]) Insert(f *Form[T], i int, item E) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := l.ref(&f.values)
	checkIndex(i, len(*p)+1)
	*p = slices.Insert(slices.Clip(*p), i, item)

	shift := func(idx int) (int, bool) {
		if idx >= i {
			return idx + 1, true
		}
		return idx, true
	}
	rekey(map[string]string(f.errors), l.path, shift)
	rekey(f.touched, l.path, shift)
	f.dirty = true
}

// RemoveAt deletes row i, shifting later rows one to the left. Errors and
// flags of the removed row are dropped.
func (l List[T, E]) RemoveAt(f *Form[T], i int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := l.ref(&f.values)
	checkIndex(i, len(*p))
	*p = slices.Delete(slices.Clone(*p), i, i+1)

	shift := func(idx int) (int, bool) {
		switch {
		case idx == i:
			return 0, false
		case idx > i:
			return idx - 1, true
		default:
			return idx, true
		}
	}
	rekey(map[string]string(f.errors), l.path, shift)
	rekey(f.touched, l.path, shift)
	f.dirty = true
}

// rekey rewrites keys of the form "path[idx]..." in m through fn. Keys for
// which fn returns false are dropped.
func rekey[V any](m map[string]V, path string, fn func(idx int) (int, bool)) {
	prefix := path + "["
	moved := make(map[string]V)
	for k, v := range m {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		end := strings.IndexByte(k[len(prefix):], ']')
		if end < 0 {
			continue
		}
		idx, err := strconv.Atoi(k[len(prefix) : len(prefix)+end])
		if err != nil {
			continue
		}
		delete(m, k)
		if next, keep := fn(idx); keep {
			moved[prefix+strconv.Itoa(next)+k[len(prefix)+end:]] = v
		}
	}
	for k, v := range moved {
		m[k] = v
	}
}

// checkIndex panics with an invariant violation unless 0 <= i < n.
func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(errors.New("P300").WithDetail(
			"index " + strconv.Itoa(i) + " is outside [0, " + strconv.Itoa(n-1) + "]"))
	}
}
