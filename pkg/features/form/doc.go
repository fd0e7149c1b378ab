// Package form provides type-safe form state with validation.
//
// # Overview
//
// Form[T] owns the current value of a record of type T together with its
// validation errors, touched and dirty flags, and a submitting flag. Fields are
// addressed through typed accessors rather than string paths, so reading or
// writing a field never parses a path at runtime:
//
//	type Contact struct {
//	    Name  string
//	    Email string
//	}
//
//	var (
//	    ContactName  = form.NewField("name", func(c *Contact) *string { return &c.Name })
//	    ContactEmail = form.NewField("email", func(c *Contact) *string { return &c.Email })
//	)
//
//	f := form.New(Contact{}, form.WithSchema(form.SchemaFunc[Contact](validateContact)))
//	ContactName.Set(f, "Alice")
//	ContactEmail.Update(f, strings.TrimSpace)
//	if !f.Validate() {
//	    fmt.Println(f.Errors())
//	}
//
// Each field still carries its path string ("email", "participants[2].email"),
// which keys the error and touched maps.
//
// # Validation
//
// Validation is explicit: Set never validates. A Schema maps a record to an
// Errors set. The package includes validators for common patterns:
//
//   - Required: Non-empty value
//   - MaxLength: String length limit
//   - Email: Valid email format
//   - Numeric: Numbers or numeric strings
//   - Min/Max/Between/NonNegative: Numeric range constraints
//   - OneOf: Enumerations
//   - Custom: User-defined validation logic
//
// # Lists
//
// List[T, E] addresses a slice field. Append, Insert and RemoveAt keep the
// error and touched maps aligned with the shifted rows. Out-of-range
// indexes panic with a P300 invariant violation.
//
//	Items := form.NewList("items", func(o *Order) *[]Item { return &o.Items })
//	Items.Insert(f, 1, Item{})
//	Items.RemoveAt(f, 0)
package form
