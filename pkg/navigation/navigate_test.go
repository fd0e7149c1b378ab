package navigation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStackNavigate(t *testing.T) {
	s := NewStack("CreatePardna")

	s.Navigate("Pardna", map[string]string{"id": "p1"})

	want := Route{Screen: "Pardna", Params: map[string]string{"id": "p1"}}
	if diff := cmp.Diff(want, s.Current()); diff != "" {
		t.Errorf("Current mismatch (-want +got):\n%s", diff)
	}
	if got := len(s.History()); got != 2 {
		t.Errorf("History len = %d, want 2", got)
	}
}

func TestStackParamsAreCopied(t *testing.T) {
	s := NewStack("A")
	params := map[string]string{"id": "p1"}
	s.Navigate("B", params)
	params["id"] = "changed"

	if got := s.Current().Params["id"]; got != "p1" {
		t.Errorf("params aliased caller map: %q", got)
	}
}

func TestStackBackForward(t *testing.T) {
	s := NewStack("A")
	s.Navigate("B", nil)
	s.Navigate("C", nil)

	if r, ok := s.Back(); !ok || r.Screen != "B" {
		t.Fatalf("Back() = %v, %v", r, ok)
	}
	if r, ok := s.Forward(); !ok || r.Screen != "C" {
		t.Fatalf("Forward() = %v, %v", r, ok)
	}
	if _, ok := s.Forward(); ok {
		t.Error("Forward() at end should report false")
	}

	s.Back()
	s.Back()
	if r, ok := s.Back(); ok || r.Screen != "A" {
		t.Errorf("Back() at start = %v, %v", r, ok)
	}
}

func TestStackPushDropsForwardHistory(t *testing.T) {
	s := NewStack("A")
	s.Navigate("B", nil)
	s.Back()
	s.Navigate("C", nil)

	if _, ok := s.Forward(); ok {
		t.Error("forward history should be discarded after a push")
	}
	var screens []string
	for _, r := range s.History() {
		screens = append(screens, r.Screen)
	}
	if diff := cmp.Diff([]string{"A", "C"}, screens); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
}

func TestStackReplace(t *testing.T) {
	s := NewStack("A")
	s.NavigateWith("B", nil, WithReplace())

	if got := len(s.History()); got != 1 {
		t.Errorf("History len = %d, want 1", got)
	}
	if s.Current().Screen != "B" {
		t.Errorf("Current = %q, want B", s.Current().Screen)
	}
}

func TestStackOnNavigate(t *testing.T) {
	s := NewStack("A")
	var seen []string
	unsubscribe := s.OnNavigate(func(r Route) { seen = append(seen, r.Screen) })

	s.Navigate("B", nil)
	s.Back()
	unsubscribe()
	s.Navigate("C", nil)

	if diff := cmp.Diff([]string{"B", "A"}, seen); diff != "" {
		t.Errorf("listener calls mismatch (-want +got):\n%s", diff)
	}
}

func TestStackListenerMayNavigate(t *testing.T) {
	s := NewStack("A")
	s.OnNavigate(func(r Route) {
		if r.Screen == "B" {
			s.NavigateWith("C", nil, WithReplace())
		}
	})

	s.Navigate("B", nil)
	if s.Current().Screen != "C" {
		t.Errorf("Current = %q, want C", s.Current().Screen)
	}
}
