// Package jwt signs the service token presented to the consent gateway and
// verifies bearer tokens on inbound requests, both patient and gateway.
package jwt

import (
	"context"
	"time"
)

// Options configures an HMAC token manager.
type Options struct {
	// Secret is the shared HMAC key, at least 32 bytes.
	Secret []byte

	// Algorithm is "HS256" (default), "HS384" or "HS512".
	Algorithm string

	// Issuer is stamped on signed tokens and, when set, required on verified ones.
	Issuer string

	// Audience is stamped on signed tokens and, when set, one of them is
	// required on verified ones.
	Audience []string

	// TTL determines the "exp" claim of signed tokens. Zero means no expiry.
	TTL time.Duration
}

// Claims is the subset of token claims the service relies on.
type Claims struct {
	// Subject is the patient id for patient tokens and the client id for
	// service tokens.
	Subject   string
	Issuer    string
	Audience  []string
	ExpiresAt time.Time
	IssuedAt  time.Time
	ID        string

	// ClientID names the calling system on gateway tokens.
	ClientID string
}

type Signer interface {
	Sign(ctx context.Context, claims Claims) (string, error)
}

type Verifier interface {
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

type TokenManager interface {
	Signer
	Verifier
}
