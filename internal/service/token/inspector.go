package token

//go:generate $MOCKGEN -source=inspector.go -destination=mocks/inspector_mock.go

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/golang-jwt/jwt/v5"

	"github.com/okonenko/hinge-auth/internal/logger"
	"github.com/okonenko/hinge-auth/internal/utils"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyToken indicates there is no token to inspect.
	ErrEmptyToken = errors.New("no token to inspect")
	// ErrMalformedToken indicates the token could not be decoded as a JWT.
	ErrMalformedToken = errors.New("token is not a decodable JWT")
)

// Inspection is the decoded view of a bearer token.
type Inspection struct {
	// Algorithm is the signing algorithm declared in the token header.
	Algorithm string
	// Subject is the "sub" claim, usually the account identifier.
	Subject string
	// Issuer is the "iss" claim.
	Issuer string
	// IssuedAt is the "iat" claim, zero when absent.
	IssuedAt time.Time
	// ExpiresAt is the "exp" claim, zero when absent.
	ExpiresAt time.Time
	// Claims holds every claim from the token payload.
	Claims map[string]any
}

// Expired reports whether the token's expiry claim is in the past.
// A token without an expiry claim never expires.
func (i *Inspection) Expired() bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(time.Now())
}

// Inspector decodes bearer tokens.
type Inspector interface {
	// Inspect decodes the token's claims without verifying its signature.
	Inspect(ctx context.Context, rawToken string) (*Inspection, error)
}

// InspectorImpl implements the Inspector interface.
type InspectorImpl struct {
	// parser decodes JWT segments.
	parser *jwt.Parser
}

// NewInspector creates a token inspector instance.
func NewInspector() Inspector {
	return &InspectorImpl{
		parser: jwt.NewParser(),
	}
}

// Inspect decodes the token's claims without verifying its signature.
func (i *InspectorImpl) Inspect(ctx context.Context, rawToken string) (*Inspection, error) {
	if rawToken == "" {
		return nil, ErrEmptyToken
	}

	logger.Debugf(ctx, "Decoding token %s", utils.MaskToken(rawToken))

	claims := jwt.MapClaims{}

	parsed, _, err := i.parser.ParseUnverified(rawToken, claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	inspection := &Inspection{
		Algorithm: parsed.Method.Alg(),
		Claims:    claims,
	}

	if subject, subErr := claims.GetSubject(); subErr == nil {
		inspection.Subject = subject
	}

	if issuer, issErr := claims.GetIssuer(); issErr == nil {
		inspection.Issuer = issuer
	}

	if issuedAt, iatErr := claims.GetIssuedAt(); iatErr == nil && issuedAt != nil {
		inspection.IssuedAt = issuedAt.Time
	}

	if expiresAt, expErr := claims.GetExpirationTime(); expErr == nil && expiresAt != nil {
		inspection.ExpiresAt = expiresAt.Time
	}

	return inspection, nil
}

// Describe renders the inspection as human-readable lines, claims sorted by name.
func (i *Inspection) Describe() []string {
	lines := []string{
		fmt.Sprintf("Algorithm: %s", i.Algorithm),
	}

	if i.Subject != "" {
		lines = append(lines, fmt.Sprintf("Subject: %s", i.Subject))
	}

	if i.Issuer != "" {
		lines = append(lines, fmt.Sprintf("Issuer: %s", i.Issuer))
	}

	if !i.IssuedAt.IsZero() {
		lines = append(lines, fmt.Sprintf("Issued: %s (%s)",
			i.IssuedAt.Format(time.RFC3339), humanize.Time(i.IssuedAt)))
	}

	switch {
	case i.ExpiresAt.IsZero():
		lines = append(lines, "Expires: never")
	case i.Expired():
		lines = append(lines, fmt.Sprintf("Expires: %s (expired %s)",
			i.ExpiresAt.Format(time.RFC3339), humanize.Time(i.ExpiresAt)))
	default:
		lines = append(lines, fmt.Sprintf("Expires: %s (%s)",
			i.ExpiresAt.Format(time.RFC3339), humanize.Time(i.ExpiresAt)))
	}

	claimNames := make([]string, 0, len(i.Claims))
	for name := range i.Claims {
		claimNames = append(claimNames, name)
	}

	sort.Strings(claimNames)

	for _, name := range claimNames {
		lines = append(lines, fmt.Sprintf("Claim %s: %v", name, i.Claims[name]))
	}

	return lines
}
