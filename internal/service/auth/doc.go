// Package auth orchestrates the interactive authentication handshake:
// install registration, SMS code request and verification, the email
// challenge, and bearer token issuance. Console input is validated locally
// before a request is spent on it.
package auth
