// Package hinge implements a typed client for the reverse-engineered Hinge
// mobile API endpoints used by the authentication handshake: install
// registration, SMS code initiation and verification, and email code
// verification. Every request carries the simulated iOS device header set of
// the client the endpoints were captured from.
package hinge
