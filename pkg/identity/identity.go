// Package identity turns bearer tokens issued by the hosted auth provider
// into a Principal. Tokens are HS256 JWTs whose subject is the user id and
// whose user_metadata carries the profile attributes set at sign-up.
package identity

import (
	"context"
	"errors"
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Principal is the authenticated caller. UserID is the ownership key for
// every provider-scoped query.
type Principal struct {
	UserID       uuid.UUID
	Email        string
	DisplayName  string
	Role         string
	BusinessName string
	State        string
}

type UserMetadata struct {
	DisplayName  string `json:"display_name,omitempty"`
	Role         string `json:"role,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
	State        string `json:"state,omitempty"`
}

type Claims struct {
	Email        string       `json:"email,omitempty"`
	UserMetadata UserMetadata `json:"user_metadata"`
	jwtlib.RegisteredClaims
}

// Verifier validates a token and resolves it to a Principal.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

type JWTVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

func NewJWTVerifier(secret, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenStr string) (*Principal, error) {
	opts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwtlib.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwtlib.WithAudience(v.audience))
	}

	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}

	return &Principal{
		UserID:       userID,
		Email:        claims.Email,
		DisplayName:  claims.UserMetadata.DisplayName,
		Role:         claims.UserMetadata.Role,
		BusinessName: claims.UserMetadata.BusinessName,
		State:        claims.UserMetadata.State,
	}, nil
}
