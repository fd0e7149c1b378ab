package navigation

import (
	"maps"
	"sync"
)

// Route is one screen in the history with its parameters.
type Route struct {
	Screen string
	Params map[string]string
}

// NavigateOptions configures navigation behavior.
type NavigateOptions struct {
	// Replace replaces the current history entry instead of pushing.
	Replace bool
}

// NavigateOption is a functional option for NavigateWith.
type NavigateOption func(*NavigateOptions)

// WithReplace replaces the current history entry instead of pushing.
func WithReplace() NavigateOption {
	return func(o *NavigateOptions) {
		o.Replace = true
	}
}

// Stack is a back/forward screen history. It satisfies pardna.Navigator.
type Stack struct {
	mu        sync.Mutex
	routes    []Route
	pos       int
	listeners map[int]func(Route)
	nextID    int
}

// NewStack creates a history positioned on the initial screen.
func NewStack(initial string) *Stack {
	return &Stack{
		routes:    []Route{{Screen: initial}},
		listeners: make(map[int]func(Route)),
	}
}

// Navigate pushes screen onto the history.
func (s *Stack) Navigate(screen string, params map[string]string) {
	s.NavigateWith(screen, params)
}

// NavigateWith pushes or replaces the current entry and notifies listeners.
// Pushing discards any forward history.
func (s *Stack) NavigateWith(screen string, params map[string]string, opts ...NavigateOption) {
	var options NavigateOptions
	for _, opt := range opts {
		opt(&options)
	}

	route := Route{Screen: screen, Params: maps.Clone(params)}

	s.mu.Lock()
	if options.Replace {
		s.routes[s.pos] = route
	} else {
		s.routes = append(s.routes[:s.pos+1], route)
		s.pos++
	}
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(route)
	}
}

// Back moves one entry back. It returns false at the start of the history.
func (s *Stack) Back() (Route, bool) {
	return s.move(-1)
}

// Forward moves one entry forward. It returns false at the end of the history.
func (s *Stack) Forward() (Route, bool) {
	return s.move(1)
}

func (s *Stack) move(delta int) (Route, bool) {
	s.mu.Lock()
	next := s.pos + delta
	if next < 0 || next >= len(s.routes) {
		r := s.routes[s.pos]
		s.mu.Unlock()
		return r, false
	}
	s.pos = next
	route := s.routes[next]
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(route)
	}
	return route, true
}

// Current returns the active route.
func (s *Stack) Current() Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routes[s.pos]
}

// History returns every route up to and including the current one.
func (s *Stack) History() []Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Route, s.pos+1)
	copy(out, s.routes[:s.pos+1])
	return out
}

// OnNavigate registers fn to run after every navigation. The returned
// function unregisters it.
func (s *Stack) OnNavigate(fn func(Route)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// snapshotListeners must be called with s.mu held.
func (s *Stack) snapshotListeners() []func(Route) {
	out := make([]func(Route), 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
