// Package errors provides coded, structured errors for pardna.
//
// Every failure a form session can produce has a registered code that maps to
// a category, a short message and a longer explanation:
//   - validation: the record failed its schema (P100-P119)
//   - config: pardna.json / pardna.yaml could not be loaded (P120-P139)
//   - cli: bad command-line input (P140-P159)
//   - submission: the create call failed (P200-P299)
//   - invariant: a programming defect such as an out-of-range list index (P300+)
//
// # Usage
//
//	err := errors.New("P200").
//	    Wrap(cause).
//	    WithSuggestion("Check the GraphQL endpoint in pardna.json")
//
//	if errors.Is(err, "P200") {
//	    fmt.Fprint(os.Stderr, err.Format())
//	}
package errors
