// Package auth verifies bearer tokens and resolves a user's permissions.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification
var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified subject of a token
type Identity struct {
	UID   string
	Email string
}

// TokenVerifier turns a raw bearer token into an Identity
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// JWTVerifier verifies HS256 tokens signed with a shared secret
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier creates a verifier. When issuer is non-empty the iss claim
// must match it.
func NewJWTVerifier(secret, issuer string) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &JWTVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}
}

func (v *JWTVerifier) Verify(ctx context.Context, raw string) (*Identity, error) {
	claims := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	email, _ := claims["email"].(string)
	return &Identity{UID: sub, Email: email}, nil
}
