// Package pardna implements the "create a Pardna" form session: the record
// and its schema, the participant list editor, the derived banker-fee display
// and the submission controller.
//
// A Pardna is a rotating savings group. The form collects its name, start
// date, duration, per-period contribution, banker fee percentage, payment
// frequency and participants, validates them, and submits them through an
// injected Creator. On success the form is reset and the Navigator is sent
// to the "Pardna" screen with the new id.
//
//	f := pardna.NewForm(pardna.StandardDefaults())
//	pardna.NameField.Set(f, "Summer savings")
//	parts := pardna.Participants(f)
//	parts.AddEmpty()
//	parts.SetName(0, "Ada")
//	parts.SetEmail(0, "ada@example.com")
//
//	ctl := pardna.NewController(f, client, nav, pardna.LogReporter{Logger: logger})
//	id, err := ctl.Submit(ctx)
package pardna
