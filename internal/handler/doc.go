// Package handler provides HTTP request handlers for the NextHire API.
//
// Each handler struct encapsulates the service it serves requests for
// (auth, jobs, applications) behind a small interface declared in the
// handler file itself.
//
// # Handler Pattern
//
//   - Constructor function (NewXxxHandler) accepts the service dependency
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output
//   - Service errors are mapped centrally by MapServiceError
//
// # Response Format
//
// Success bodies are written raw: collections as JSON arrays, documents
// as JSON objects, inserts as an InsertResult. Errors are written as
// {"message": ...} bodies with the appropriate status code. The two auth
// failure bodies are fixed strings the frontend matches on.
//
// # Authentication
//
// Authorization is enforced before the handlers run, by the middleware
// package. Handlers trust that any email query parameter they read has
// already been vetted against the authenticated identity.
package handler
