// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as authentication (static API token), request logging,
// CORS, request correlation, tracing, and panic recovery.
package middleware
