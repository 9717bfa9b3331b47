package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pilgrim-provider/pkg/identity"
	"pilgrim-provider/pkg/identity/identitytest"
	"pilgrim-provider/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret-123"

func signToken(t *testing.T, p identity.Principal) string {
	t.Helper()
	token, err := identitytest.NewIssuer(testSecret, "", "authenticated").Issue(p, time.Hour)
	require.NoError(t, err)
	return token
}

func authRouter(verifier identity.Verifier, final http.HandlerFunc) http.Handler {
	return Auth(verifier, zap.NewNop())(final)
}

func TestAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, identity.Principal{UserID: userID, Role: "provider"})

	handler := authRouter(identity.NewJWTVerifier(testSecret, "", "authenticated"), func(w http.ResponseWriter, r *http.Request) {
		got, ok := utils.GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, userID, got)
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_Rejects(t *testing.T) {
	verifier := identity.NewJWTVerifier(testSecret, "", "authenticated")
	other, err := identitytest.NewIssuer("wrong-secret", "", "authenticated").Issue(identity.Principal{UserID: uuid.New()}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer invalid-jwt-here"},
		{"wrong secret", "Bearer " + other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := authRouter(verifier, func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler should not be reached")
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
		})
	}
}

type failingVerifier struct{}

func (failingVerifier) Verify(context.Context, string) (*identity.Principal, error) {
	return nil, errors.New("identity provider unreachable")
}

func TestAuth_VerifierFailureIsInternal(t *testing.T) {
	handler := authRouter(failingVerifier{}, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer something")
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	serve := func(role string, principal *identity.Principal) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if principal != nil {
			req = req.WithContext(utils.SetPrincipalContext(req.Context(), principal))
		}
		RequireRole(role, zap.NewNop())(ok).ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, serve("", nil))
	assert.Equal(t, http.StatusOK, serve("provider", &identity.Principal{Role: "provider"}))
	assert.Equal(t, http.StatusForbidden, serve("provider", &identity.Principal{Role: "traveler"}))
	assert.Equal(t, http.StatusUnauthorized, serve("provider", nil))
}

func TestTokenFingerprint(t *testing.T) {
	a := TokenFingerprint("token-a")
	assert.Len(t, a, 12)
	assert.Equal(t, a, TokenFingerprint("token-a"))
	assert.NotEqual(t, a, TokenFingerprint("token-b"))
	assert.NotContains(t, a, "token")
}
