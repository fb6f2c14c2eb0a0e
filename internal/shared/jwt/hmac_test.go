package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewHMAC_TableDriven(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{name: "short secret", opts: Options{Secret: []byte("short")}, wantErr: "at least 32 bytes"},
		{name: "unknown algorithm", opts: Options{Secret: testSecret, Algorithm: "RS256"}, wantErr: "unsupported HMAC algorithm"},
		{name: "defaults to HS256", opts: Options{Secret: testSecret}},
		{name: "HS512", opts: Options{Secret: testSecret, Algorithm: "HS512"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			manager, err := NewHMAC(tc.opts)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, manager)
		})
	}
}

func TestSignThenVerify_RoundTripsClaims(t *testing.T) {
	manager, err := NewHMAC(Options{
		Secret:   testSecret,
		Issuer:   "gateway",
		Audience: []string{"consent-bridge"},
		TTL:      time.Minute,
	})
	require.NoError(t, err)

	token, err := manager.Sign(context.Background(), Claims{Subject: "patient@ncg", ClientID: "hiu-1", ID: "jti-1"})
	require.NoError(t, err)

	claims, err := manager.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "patient@ncg", claims.Subject)
	assert.Equal(t, "hiu-1", claims.ClientID)
	assert.Equal(t, "gateway", claims.Issuer)
	assert.Equal(t, []string{"consent-bridge"}, claims.Audience)
	assert.Equal(t, "jti-1", claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt, 2*time.Second)
}

func TestVerify_Rejections(t *testing.T) {
	verifier, err := NewHMAC(Options{Secret: testSecret, Issuer: "gateway", Audience: []string{"consent-bridge"}})
	require.NoError(t, err)

	otherSecret, err := NewHMAC(Options{Secret: []byte("fedcba9876543210fedcba9876543210"), Issuer: "gateway", Audience: []string{"consent-bridge"}})
	require.NoError(t, err)
	otherIssuer, err := NewHMAC(Options{Secret: testSecret, Issuer: "someone-else", Audience: []string{"consent-bridge"}})
	require.NoError(t, err)
	otherAlgorithm, err := NewHMAC(Options{Secret: testSecret, Algorithm: "HS384", Issuer: "gateway", Audience: []string{"consent-bridge"}})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token func() string
	}{
		{name: "garbage", token: func() string { return "not-a-token" }},
		{name: "wrong secret", token: func() string {
			token, _ := otherSecret.Sign(context.Background(), Claims{Subject: "p"})
			return token
		}},
		{name: "wrong issuer", token: func() string {
			token, _ := otherIssuer.Sign(context.Background(), Claims{Subject: "p"})
			return token
		}},
		{name: "wrong audience", token: func() string {
			token, _ := verifier.Sign(context.Background(), Claims{Subject: "p", Audience: []string{"other"}})
			return token
		}},
		{name: "wrong algorithm", token: func() string {
			token, _ := otherAlgorithm.Sign(context.Background(), Claims{Subject: "p"})
			return token
		}},
		{name: "expired", token: func() string {
			token, _ := verifier.Sign(context.Background(), Claims{Subject: "p", IssuedAt: time.Now().Add(-time.Hour), ExpiresAt: time.Now().Add(-time.Minute)})
			return token
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := verifier.Verify(context.Background(), tc.token())
			assert.ErrorContains(t, err, "token validation failed")
		})
	}
}
