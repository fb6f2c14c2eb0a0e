package jwt

import (
	"context"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var _ TokenManager = (*hmacManager)(nil)

type tokenClaims struct {
	jwtlib.RegisteredClaims
	ClientID string `json:"clientId,omitempty"`
}

type hmacManager struct {
	secret   []byte
	method   jwtlib.SigningMethod
	issuer   string
	audience []string
	ttl      time.Duration
	parser   *jwtlib.Parser
}

// NewHMAC creates an HMAC TokenManager. The secret must be at least 32 bytes.
func NewHMAC(opts Options) (TokenManager, error) {
	if len(opts.Secret) < 32 {
		return nil, fmt.Errorf("jwt: HMAC secret must be at least 32 bytes, got %d", len(opts.Secret))
	}

	method, err := resolveHMACMethod(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	parserOptions := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{method.Alg()}),
		jwtlib.WithIssuedAt(),
	}
	if opts.Issuer != "" {
		parserOptions = append(parserOptions, jwtlib.WithIssuer(opts.Issuer))
	}
	if len(opts.Audience) > 0 {
		parserOptions = append(parserOptions, jwtlib.WithAudience(opts.Audience[0]))
	}

	return &hmacManager{
		secret:   opts.Secret,
		method:   method,
		issuer:   opts.Issuer,
		audience: opts.Audience,
		ttl:      opts.TTL,
		parser:   jwtlib.NewParser(parserOptions...),
	}, nil
}

func resolveHMACMethod(alg string) (jwtlib.SigningMethod, error) {
	switch alg {
	case "", "HS256":
		return jwtlib.SigningMethodHS256, nil
	case "HS384":
		return jwtlib.SigningMethodHS384, nil
	case "HS512":
		return jwtlib.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("jwt: unsupported HMAC algorithm %q", alg)
	}
}

func (m *hmacManager) Sign(_ context.Context, claims Claims) (string, error) {
	now := time.Now()

	registered := jwtlib.RegisteredClaims{
		Subject: claims.Subject,
		ID:      claims.ID,
		Issuer:  m.issuer,
	}
	if claims.Issuer != "" {
		registered.Issuer = claims.Issuer
	}

	if claims.Audience != nil {
		registered.Audience = jwtlib.ClaimStrings(claims.Audience)
	} else if m.audience != nil {
		registered.Audience = jwtlib.ClaimStrings(m.audience)
	}

	issuedAt := now
	if !claims.IssuedAt.IsZero() {
		issuedAt = claims.IssuedAt
	}
	registered.IssuedAt = jwtlib.NewNumericDate(issuedAt)

	if !claims.ExpiresAt.IsZero() {
		registered.ExpiresAt = jwtlib.NewNumericDate(claims.ExpiresAt)
	} else if m.ttl > 0 {
		registered.ExpiresAt = jwtlib.NewNumericDate(issuedAt.Add(m.ttl))
	}

	token := jwtlib.NewWithClaims(m.method, tokenClaims{RegisteredClaims: registered, ClientID: claims.ClientID})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *hmacManager) Verify(_ context.Context, tokenString string) (*Claims, error) {
	parsed := &tokenClaims{}
	_, err := m.parser.ParseWithClaims(tokenString, parsed, func(*jwtlib.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt: token validation failed: %w", err)
	}

	claims := &Claims{
		Subject:  parsed.Subject,
		Issuer:   parsed.Issuer,
		Audience: []string(parsed.Audience),
		ID:       parsed.ID,
		ClientID: parsed.ClientID,
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	return claims, nil
}
