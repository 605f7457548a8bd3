package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skillmatch-backend/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func hsToken(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func TestVerifyHS256(t *testing.T) {
	v := auth.NewTokenVerifier(nil, auth.VerifierConfig{HMACSecret: secret})
	ctx := context.Background()
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("Should return subject for valid token", func(t *testing.T) {
		uid, err := v.Verify(ctx, hsToken(t, jwt.MapClaims{"sub": "user-1", "exp": exp}, secret))
		require.NoError(t, err)
		assert.Equal(t, "user-1", uid)
	})

	t.Run("Should reject bad signature", func(t *testing.T) {
		_, err := v.Verify(ctx, hsToken(t, jwt.MapClaims{"sub": "user-1", "exp": exp}, "other"))
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Should reject expired or non-expiring tokens", func(t *testing.T) {
		_, err := v.Verify(ctx, hsToken(t, jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(-time.Minute).Unix()}, secret))
		assert.ErrorIs(t, err, auth.ErrInvalidToken)

		_, err = v.Verify(ctx, hsToken(t, jwt.MapClaims{"sub": "user-1"}, secret))
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Should reject missing subject", func(t *testing.T) {
		_, err := v.Verify(ctx, hsToken(t, jwt.MapClaims{"exp": exp}, secret))
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		_, err := v.Verify(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		_, err = v.Verify(ctx, "")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Should reject HS256 when no secret is configured", func(t *testing.T) {
		strict := auth.NewTokenVerifier(nil, auth.VerifierConfig{})
		_, err := strict.Verify(ctx, hsToken(t, jwt.MapClaims{"sub": "user-1", "exp": exp}, secret))
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestVerifyRS256WithJWKS(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	jwks := auth.JWKS{Keys: []auth.JSONWebKey{{
		Kid: "k1",
		Kty: "RSA",
		Alg: "RS256",
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
	}}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(jwks)
	}))
	defer srv.Close()

	v := auth.NewTokenVerifier(auth.NewProvider(srv.URL), auth.VerifierConfig{ProjectID: "demo-project"})
	sign := func(claims jwt.MapClaims) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
		tok.Header["kid"] = "k1"
		s, err := tok.SignedString(key)
		require.NoError(t, err)
		return s
	}
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("Should accept Firebase ID token", func(t *testing.T) {
		uid, err := v.Verify(context.Background(), sign(jwt.MapClaims{
			"sub": "firebase-uid",
			"iss": "https://securetoken.google.com/demo-project",
			"aud": "demo-project",
			"exp": exp,
		}))
		require.NoError(t, err)
		assert.Equal(t, "firebase-uid", uid)
	})

	t.Run("Should reject tokens for another project", func(t *testing.T) {
		_, err := v.Verify(context.Background(), sign(jwt.MapClaims{
			"sub": "firebase-uid",
			"iss": "https://securetoken.google.com/other",
			"aud": "other",
			"exp": exp,
		}))
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Should reject RS256 tokens when no project is configured", func(t *testing.T) {
		unbound := auth.NewTokenVerifier(auth.NewProvider(srv.URL), auth.VerifierConfig{HMACSecret: secret})
		uid, err := unbound.Verify(context.Background(), sign(jwt.MapClaims{
			"sub": "victim-uid",
			"iss": "https://securetoken.google.com/attacker-project",
			"aud": "attacker-project",
			"exp": exp,
		}))
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Empty(t, uid)

		unbound = auth.NewTokenVerifier(auth.NewProvider(srv.URL), auth.VerifierConfig{})
		_, err = unbound.Verify(context.Background(), sign(jwt.MapClaims{
			"sub": "victim-uid",
			"iss": "https://securetoken.google.com/attacker-project",
			"aud": "attacker-project",
			"exp": exp,
		}))
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
