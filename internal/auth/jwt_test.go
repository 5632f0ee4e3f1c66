// AngelaMos | 2026
// jwt_test.go

package auth_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/bizcard-api/internal/auth"
	"github.com/carterperez-dev/bizcard-api/internal/config"
	"github.com/carterperez-dev/bizcard-api/internal/core"
)

func newTestManager(t *testing.T, expire time.Duration) *auth.JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	require.NoError(t, auth.GenerateKeyPair(privatePath, publicPath))

	manager, err := auth.NewJWTManager(config.JWTConfig{
		PrivateKeyPath: privatePath,
		PublicKeyPath:  publicPath,
		TokenExpire:    expire,
		Issuer:         "bizcard-api",
		Audience:       "bizcard-clients",
	})
	require.NoError(t, err)

	return manager
}

func TestJWTManager_CreateAndVerifyToken(t *testing.T) {
	manager := newTestManager(t, time.Hour)

	token, err := manager.CreateToken(auth.Claims{
		UserID:     "u1",
		IsAdmin:    true,
		IsBusiness: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := manager.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "u1", identity.ID)
	require.True(t, identity.IsAdmin)
	require.True(t, identity.IsBusiness)
}

func TestJWTManager_VerifyToken_Garbage(t *testing.T) {
	manager := newTestManager(t, time.Hour)

	_, err := manager.VerifyToken(context.Background(), "not-a-token")
	require.Error(t, err)
}

func TestJWTManager_VerifyToken_WrongKey(t *testing.T) {
	issuing := newTestManager(t, time.Hour)
	verifying := newTestManager(t, time.Hour)

	token, err := issuing.CreateToken(auth.Claims{UserID: "u1"})
	require.NoError(t, err)

	_, err = verifying.VerifyToken(context.Background(), token)
	require.Error(t, err)
}

func TestJWTManager_VerifyToken_Expired(t *testing.T) {
	manager := newTestManager(t, -time.Minute)

	token, err := manager.CreateToken(auth.Claims{UserID: "u1"})
	require.NoError(t, err)

	_, err = manager.VerifyToken(context.Background(), token)
	require.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestJWTManager_KeyID(t *testing.T) {
	manager := newTestManager(t, time.Hour)

	require.NotEmpty(t, manager.GetKeyID())
	require.NotNil(t, manager.GetPublicKey())
}
