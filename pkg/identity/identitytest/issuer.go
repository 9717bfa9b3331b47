// Package identitytest mints bearer tokens for tests that exercise the
// verifier and the auth middleware.
package identitytest

import (
	"time"

	"pilgrim-provider/pkg/identity"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Issuer signs tokens with the claim layout identity.JWTVerifier expects.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
}

func NewIssuer(secret, issuer, audience string) *Issuer {
	return &Issuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

func (i *Issuer) Issue(p identity.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := identity.Claims{
		Email: p.Email,
		UserMetadata: identity.UserMetadata{
			DisplayName:  p.DisplayName,
			Role:         p.Role,
			BusinessName: p.BusinessName,
			State:        p.State,
		},
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   p.UserID.String(),
			Issuer:    i.issuer,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}
	if i.audience != "" {
		claims.Audience = jwtlib.ClaimStrings{i.audience}
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}
