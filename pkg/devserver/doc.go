// Package devserver is an in-memory Pardna GraphQL backend for local
// development and end-to-end tests of the CLI.
//
// It understands the CreatePardna mutation and the Pardnas query sent by
// pkg/graphql, validates records with the same rules as the form, and mints
// ids with google/uuid. Nothing is persisted.
//
//	srv := devserver.New(devserver.Config{Address: "127.0.0.1:4000"})
//	err := srv.Run(ctx) // returns when ctx is done
package devserver
