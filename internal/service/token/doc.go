// Package token decodes stored bearer tokens for display. JWT claims are
// read without signature verification, since the signing key belongs to the
// issuing service.
package token
