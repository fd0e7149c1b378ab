package pardna

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/pardna/internal/errors"
)

func expectP300(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, "P300") {
			t.Fatalf("recovered %v, want P300 invariant violation", r)
		}
	}()
	fn()
}

func TestParticipantEditorLifecycle(t *testing.T) {
	f := NewForm(fixedDefaults())
	parts := Participants(f)

	if !parts.ShowAddAffordance() {
		t.Fatal("empty list should show the add affordance")
	}

	if !parts.AddEmpty() {
		t.Fatal("AddEmpty on empty list should add a row")
	}
	if diff := cmp.Diff([]Participant{{Name: "", Email: ""}}, parts.All()); diff != "" {
		t.Fatalf("after AddEmpty (-want +got):\n%s", diff)
	}

	p := Participant{Name: "Grace", Email: "grace@example.org"}
	parts.InsertAfter(0, p)
	if parts.Len() != 2 || parts.At(1) != p {
		t.Fatalf("after InsertAfter(0): %+v", parts.All())
	}

	parts.RemoveAt(0)
	if diff := cmp.Diff([]Participant{p}, parts.All()); diff != "" {
		t.Fatalf("after RemoveAt(0) (-want +got):\n%s", diff)
	}

	parts.RemoveAt(0)
	if parts.Len() != 0 || !parts.ShowAddAffordance() {
		t.Fatalf("removing the last row should leave an empty list, got %+v", parts.All())
	}
}

func TestParticipantAddEmptyOnlyWhenEmpty(t *testing.T) {
	f := NewForm(fixedDefaults())
	parts := Participants(f)
	parts.AddEmpty()

	if parts.AddEmpty() {
		t.Error("AddEmpty should refuse when rows exist")
	}
	if parts.Len() != 1 {
		t.Errorf("Len = %d, want 1", parts.Len())
	}
}

func TestParticipantInsertAfterMiddle(t *testing.T) {
	f := NewForm(fixedDefaults())
	parts := Participants(f)
	parts.AddEmpty()
	parts.SetName(0, "a")
	parts.InsertAfter(0, Participant{Name: "c"})
	parts.InsertAfter(0, Participant{Name: "b"})
	parts.InsertEmptyAfter(2)

	var names []string
	for _, p := range parts.All() {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", ""}, names); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestParticipantFieldEdits(t *testing.T) {
	f := NewForm(fixedDefaults())
	parts := Participants(f)
	parts.AddEmpty()

	parts.SetName(0, "Ada")
	parts.SetEmail(0, "ada@example.com")

	if got := ParticipantEmail(0).Get(f); got != "ada@example.com" {
		t.Errorf("email = %q", got)
	}
	if got := ParticipantName(0).Get(f); got != "Ada" {
		t.Errorf("name = %q", got)
	}
	if !f.IsDirty() {
		t.Error("form should be dirty after participant edits")
	}
}

func TestParticipantEditsDoNotValidate(t *testing.T) {
	f := NewForm(fixedDefaults())
	parts := Participants(f)
	parts.AddEmpty()
	parts.SetEmail(0, "not an email")
	parts.InsertEmptyAfter(0)
	parts.RemoveAt(1)

	if !f.IsValid() {
		t.Errorf("list edits must not validate, got %v", f.Errors())
	}
}

func TestParticipantRemoveShiftsErrors(t *testing.T) {
	f := NewForm(fixedDefaults())
	parts := Participants(f)
	parts.AddEmpty()
	parts.InsertAfter(0, Participant{Name: "ok", Email: "ok@example.com"})
	parts.InsertEmptyAfter(1)

	f.Validate()
	if !f.HasError("participants[2].name") {
		t.Fatalf("expected errors on row 2, got %v", f.Errors())
	}

	parts.RemoveAt(0)

	want := []string{"participants[1].email", "participants[1].name"}
	if diff := cmp.Diff(want, f.Errors().Paths()); diff != "" {
		t.Errorf("error paths mismatch (-want +got):\n%s", diff)
	}
}

func TestParticipantIndexOutOfRange(t *testing.T) {
	f := NewForm(fixedDefaults())
	parts := Participants(f)

	expectP300(t, func() { parts.InsertAfter(0, Participant{}) })
	expectP300(t, func() { parts.RemoveAt(0) })

	parts.AddEmpty()
	expectP300(t, func() { parts.InsertAfter(1, Participant{}) })
	expectP300(t, func() { parts.InsertAfter(-1, Participant{}) })
	expectP300(t, func() { parts.RemoveAt(1) })
	expectP300(t, func() { parts.SetName(3, "x") })
	expectP300(t, func() { parts.SetEmail(-1, "x") })
	expectP300(t, func() { parts.At(2) })

	if parts.Len() != 1 {
		t.Errorf("failed operations changed the list: %+v", parts.All())
	}
}
