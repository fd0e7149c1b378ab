// Package tui is the terminal front end for the create pardna form.
//
// A Runner walks the form field by field with survey prompts, edits the
// participant list row by row, and submits through a pardna.Controller.
// Validation errors send the user back through the form; a failed create
// can be retried without re-entering anything.
//
// Prompts go through the PromptDriver interface so the flow can be tested
// with a scripted driver.
package tui
