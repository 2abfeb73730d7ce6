// Package middleware provides the HTTP request interceptor pipeline.
//
// Middlewares are plain func(http.Handler) http.Handler wrappers composed
// with Chain. Each one either continues with an (optionally extended)
// request context or short-circuits with a response.
//
// The global chain (RequestID, Logger, Recovery, CORS) wraps every route.
// Auth and OwnershipGuard are applied per route: authorization here is
// route-specific, not global. Auth reads the token cookie and places the
// decoded claims in the context; OwnershipGuard compares the requested
// target email against the authenticated one.
package middleware
