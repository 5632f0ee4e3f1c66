// AngelaMos | 2026
// auth_test.go

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/bizcard-api/internal/core"
	"github.com/carterperez-dev/bizcard-api/internal/middleware"
)

type stubVerifier struct {
	identity *middleware.Identity
	err      error
}

func (s *stubVerifier) VerifyToken(
	_ context.Context,
	_ string,
) (*middleware.Identity, error) {
	return s.identity, s.err
}

func okHandler(captured **middleware.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			*captured = middleware.GetIdentity(r.Context())
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticator_MissingToken(t *testing.T) {
	verifier := &stubVerifier{}
	handler := middleware.Authenticator(verifier)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "token not found")
}

func TestAuthenticator_ValidToken(t *testing.T) {
	verifier := &stubVerifier{
		identity: &middleware.Identity{ID: "u1", IsBusiness: true},
	}

	var captured *middleware.Identity
	handler := middleware.Authenticator(verifier)(okHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(middleware.TokenHeader, "some-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	require.Equal(t, "u1", captured.ID)
	require.True(t, captured.IsBusiness)
}

func TestAuthenticator_ExpiredToken(t *testing.T) {
	verifier := &stubVerifier{err: core.ErrTokenExpired}
	handler := middleware.Authenticator(verifier)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(middleware.TokenHeader, "stale-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		identity *middleware.Identity
		status   int
	}{
		{
			name:     "no identity",
			identity: nil,
			status:   http.StatusUnauthorized,
		},
		{
			name:     "non-admin",
			identity: &middleware.Identity{ID: "u1"},
			status:   http.StatusForbidden,
		},
		{
			name:     "admin",
			identity: &middleware.Identity{ID: "u1", IsAdmin: true},
			status:   http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var handler http.Handler = middleware.RequireAdmin(okHandler(nil))
			if tt.identity != nil {
				verifier := &stubVerifier{identity: tt.identity}
				handler = middleware.Authenticator(verifier)(handler)
			}

			req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
			if tt.identity != nil {
				req.Header.Set(middleware.TokenHeader, "some-token")
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestOptionalAuth_PassesThroughWithoutToken(t *testing.T) {
	verifier := &stubVerifier{err: core.ErrTokenInvalid}

	var captured *middleware.Identity
	handler := middleware.OptionalAuth(verifier)(okHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, captured)
}
