package middleware

import (
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"pilgrim-provider/pkg/identity"
	"pilgrim-provider/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

// Auth resolves the bearer token to a Principal and stores it on the
// request context. Requests without a valid token get 401.
func Auth(verifier identity.Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				logger.Debug("Missing or malformed authorization header", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w)
				return
			}

			principal, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, identity.ErrInvalidToken) {
					logger.Warn("Rejected bearer token",
						zap.String("token_fingerprint", TokenFingerprint(token)),
						zap.Error(err),
					)
					utils.ResponseUnauthorized(w)
					return
				}
				logger.Error("Failed to verify bearer token",
					zap.String("token_fingerprint", TokenFingerprint(token)),
					zap.Error(err),
				)
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := utils.SetPrincipalContext(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole lets through only principals whose profile role matches.
// An empty role disables the check.
func RequireRole(role string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if role == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := utils.GetPrincipalFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w)
				return
			}

			if principal.Role != role {
				logger.Warn("Role check: access attempt with wrong role",
					zap.String("user_id", principal.UserID.String()),
					zap.String("role", principal.Role),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Provider access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// TokenFingerprint is a short, non-reversible tag for correlating a token
// across log lines without logging the token.
func TokenFingerprint(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:6])
}
