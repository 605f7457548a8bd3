package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type VerifierConfig struct {
	// ProjectID binds RS256 tokens to one Firebase project. Without it RS256
	// tokens are rejected, since the JWKS is shared by every project.
	ProjectID string
	// HMACSecret accepts HS256 tokens signed with a shared secret (local development).
	HMACSecret string
}

// TokenVerifier validates bearer tokens and returns their subject as the user id.
type TokenVerifier struct {
	keys *Provider
	cfg  VerifierConfig
}

func NewTokenVerifier(keys *Provider, cfg VerifierConfig) *TokenVerifier {
	return &TokenVerifier{keys: keys, cfg: cfg}
}

func (v *TokenVerifier) Verify(_ context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrInvalidToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256", "HS256"}),
		jwt.WithExpirationRequired(),
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.keyFunc, opts...)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if _, isRSA := token.Method.(*jwt.SigningMethodRSA); isRSA {
		if err := v.checkFirebaseClaims(claims); err != nil {
			return "", err
		}
	}

	sub, _ := claims.GetSubject()
	if sub == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return sub, nil
}

func (v *TokenVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
		if v.cfg.HMACSecret == "" {
			return nil, fmt.Errorf("HS256 token received but AUTH_JWT_SECRET is not configured")
		}
		return []byte(v.cfg.HMACSecret), nil
	}

	if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
		if v.cfg.ProjectID == "" {
			return nil, fmt.Errorf("RS256 token received but FIREBASE_PROJECT_ID is not configured")
		}
		if v.keys == nil {
			return nil, fmt.Errorf("RS256 token received but no JWKS provider is configured")
		}
		return v.keys.KeyFunc(token)
	}

	return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
}

func (v *TokenVerifier) checkFirebaseClaims(claims jwt.MapClaims) error {
	if v.cfg.ProjectID == "" {
		return fmt.Errorf("%w: no project configured", ErrInvalidToken)
	}
	iss, _ := claims.GetIssuer()
	if iss != "https://securetoken.google.com/"+v.cfg.ProjectID {
		return fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, iss)
	}
	aud, _ := claims.GetAudience()
	for _, a := range aud {
		if a == v.cfg.ProjectID {
			return nil
		}
	}
	return fmt.Errorf("%w: unexpected audience", ErrInvalidToken)
}
