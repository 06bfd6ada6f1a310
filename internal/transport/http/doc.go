// Package http provides HTTP transport decorators used by the API client:
// a debug-level request/response logger and an injector that stamps every
// outgoing request with the simulated mobile device header set.
package http
