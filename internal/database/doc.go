// Package database provides the document store abstraction for NextHire.
//
// This package defines the Database interface that abstracts SurrealDB
// operations, keeping data access separate from business logic and allowing
// test doubles to stand in for the store.
//
// # Interface Design
//
// The Database interface provides two query methods:
//   - Query: Returns multiple results (for SELECT and CREATE statements)
//   - QueryOne: Returns a single result (for SELECT by record id)
//
// There is deliberately no transaction support: the jobs and applications
// collections are only ever touched with independent single-collection
// queries, and the system makes no atomicity guarantees across them.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// # Usage Example
//
//	db := database.NewSurrealDB(cfg)
//	db.Connect(ctx)
//	defer db.Close()
//
//	result, err := db.QueryOne(ctx, "SELECT * FROM type::record($id)", map[string]interface{}{"id": jobID})
package database
