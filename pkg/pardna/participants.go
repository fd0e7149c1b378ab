package pardna

import (
	"strconv"

	"github.com/vango-dev/pardna/internal/errors"
	"github.com/vango-dev/pardna/pkg/features/form"
)

// ParticipantEditor edits the participant rows of a form. It never
// validates; call Validate or ValidateField on the form for that.
type ParticipantEditor struct {
	form *form.Form[Record]
}

// Participants returns the participant editor for f.
func Participants(f *form.Form[Record]) ParticipantEditor {
	return ParticipantEditor{form: f}
}

// Len returns the number of participants.
func (e ParticipantEditor) Len() int {
	return ParticipantsList.Len(e.form)
}

// All returns a copy of the participant rows.
func (e ParticipantEditor) All() []Participant {
	return ParticipantsList.Items(e.form)
}

// At returns participant i.
func (e ParticipantEditor) At(i int) Participant {
	return ParticipantsList.At(e.form, i)
}

// ShowAddAffordance reports whether the "Add a participant" action applies,
// which is only when the list is empty.
func (e ParticipantEditor) ShowAddAffordance() bool {
	return e.Len() == 0
}

// AddEmpty appends a blank participant when the list is empty and reports
// whether it did.
func (e ParticipantEditor) AddEmpty() bool {
	if !e.ShowAddAffordance() {
		return false
	}
	ParticipantsList.Append(e.form, Participant{})
	return true
}

// InsertAfter inserts p directly after row i. i must be an existing row.
func (e ParticipantEditor) InsertAfter(i int, p Participant) {
	e.mustExist(i)
	ParticipantsList.Insert(e.form, i+1, p)
}

// InsertEmptyAfter inserts a blank participant after row i.
func (e ParticipantEditor) InsertEmptyAfter(i int) {
	e.InsertAfter(i, Participant{})
}

// RemoveAt deletes row i. Removing the last row leaves an empty list.
func (e ParticipantEditor) RemoveAt(i int) {
	ParticipantsList.RemoveAt(e.form, i)
}

// SetName sets the name of row i.
func (e ParticipantEditor) SetName(i int, name string) {
	e.mustExist(i)
	ParticipantName(i).Set(e.form, name)
}

// SetEmail sets the email of row i.
func (e ParticipantEditor) SetEmail(i int, email string) {
	e.mustExist(i)
	ParticipantEmail(i).Set(e.form, email)
}

func (e ParticipantEditor) mustExist(i int) {
	if n := e.Len(); i < 0 || i >= n {
		panic(errors.New("P300").WithDetail(
			"participant " + strconv.Itoa(i) + " does not exist (have " + strconv.Itoa(n) + ")"))
	}
}
