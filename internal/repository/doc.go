// Package repository implements data access for the job and application
// collections on top of the database abstraction.
//
// Repositories issue single-collection SurrealQL queries with bound
// variables and parse the driver's wrapped results back into model types.
// Record ids are normalized to their string form (table:id) before
// decoding, since that string is also what applications store in their
// jobId weak reference.
//
// Inserts accept open documents (map[string]interface{}) without
// validation, mirroring the write contract of the HTTP surface.
package repository
