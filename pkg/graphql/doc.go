// Package graphql is the HTTP client for the Pardna GraphQL API.
//
// Client implements pardna.Creator with the createPardna mutation and, by
// default, refetches the pardnas query after every successful create so
// callers reading Cached see the new record.
//
//	client := graphql.New("http://localhost:4000/graphql",
//	    graphql.WithTimeout(10*time.Second),
//	)
//	id, err := client.CreatePardna(ctx, payload)
package graphql
