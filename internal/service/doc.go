// Package service implements the business logic between the HTTP handlers
// and the repositories.
//
// AuthService issues and verifies identity tokens from open claim
// payloads. JobService and ApplicationService compose the two
// repositories to produce the read-time enrichments the API exposes: a
// derived applicationCount per job, and denormalized job metadata per
// application. Both enrichments are recomputed on every request with one
// sequential query per item.
//
// Services return sentinel errors from errors.go; handlers translate them
// to HTTP responses via the error mapper.
package service
