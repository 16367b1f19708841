package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func newTestService() Service {
	return NewJWTService(testSecret, "1h", "168h")
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()
	deptID := "dept-1"

	tokenStr, expiresAt, err := svc.GenerateAccessToken("user-1", "ana@example.com", &deptID, user.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenStr)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "ana@example.com", claims["email"])
	assert.Equal(t, "dept-1", claims["department_id"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_NilDepartment(t *testing.T) {
	svc := newTestService()

	tokenStr, _, err := svc.GenerateAccessToken("user-1", "ana@example.com", nil, user.RoleSuperadmin)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenStr)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claims["department_id"])
}

func TestGenerateRefreshToken_Type(t *testing.T) {
	svc := newTestService()

	tokenStr, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenStr)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "user-1", claims["user_id"])
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	tokenStr, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenStr))
	svc.RevokeToken(tokenStr)
	assert.True(t, svc.IsTokenRevoked(tokenStr))
}

func TestSSEToken_RoundTrip(t *testing.T) {
	svc := newTestService()

	tokenStr, expiresIn, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateSSEToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateSSEToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService()

	tokenStr, _, err := svc.GenerateAccessToken("user-1", "ana@example.com", nil, user.RoleMember)
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(tokenStr)
	assert.Error(t, err)
}
