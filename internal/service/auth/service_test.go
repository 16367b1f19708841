package auth

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/teampulse/standup-backend-go/internal/domain/auth"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
	"github.com/teampulse/standup-backend-go/internal/pkg/jwt"
	"github.com/teampulse/standup-backend-go/internal/repository/postgresql"
)

var testAuthDB *database.DB

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

func requireAuthTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	if testAuthDB == nil {
		var err error
		testAuthDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err)
	}
	return testAuthDB
}

func truncateAuthTables(t *testing.T, ctx context.Context, db *database.DB) {
	for _, table := range []string{"daily_standups", "leave_requests", "users", "departments"} {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createAuthTestUser(t *testing.T, ctx context.Context, db *database.DB, email string, active bool) string {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	var userID string
	err := db.QueryRow(ctx, `
		INSERT INTO users (email, name, password_hash, role, preferred_method, is_active)
		VALUES ($1, 'Test Member', $2, 'member', 'text', $3)
		RETURNING id
	`, email, string(hashedPassword), active).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func newTestAuthService(db *database.DB) (auth.AuthService, jwt.Service) {
	userRepo := postgresql.NewUserRepository(db)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(db, userRepo, jwtService), jwtService
}

func TestAuthService_Login_Success(t *testing.T) {
	db := requireAuthTestDB(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx, db)

	email := fmt.Sprintf("login-%d@example.com", time.Now().UnixNano())
	createAuthTestUser(t, ctx, db, email, true)
	authService, _ := newTestAuthService(db)

	result, err := authService.Login(ctx, auth.LoginRequest{Email: email, Password: "password123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Greater(t, result.AccessTokenExpiresIn, int64(0))
	assert.Greater(t, result.RefreshTokenExpiresIn, int64(0))
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	db := requireAuthTestDB(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx, db)

	email := fmt.Sprintf("login-%d@example.com", time.Now().UnixNano())
	createAuthTestUser(t, ctx, db, email, true)
	authService, _ := newTestAuthService(db)

	_, err := authService.Login(ctx, auth.LoginRequest{Email: email, Password: "wrong-password"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	db := requireAuthTestDB(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx, db)

	authService, _ := newTestAuthService(db)

	_, err := authService.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	db := requireAuthTestDB(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx, db)

	email := fmt.Sprintf("login-%d@example.com", time.Now().UnixNano())
	createAuthTestUser(t, ctx, db, email, false)
	authService, _ := newTestAuthService(db)

	_, err := authService.Login(ctx, auth.LoginRequest{Email: email, Password: "password123"})

	assert.ErrorIs(t, err, auth.ErrAccountDeactivated)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	db := requireAuthTestDB(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx, db)

	email := fmt.Sprintf("refresh-%d@example.com", time.Now().UnixNano())
	createAuthTestUser(t, ctx, db, email, true)
	authService, _ := newTestAuthService(db)

	loginResult, err := authService.Login(ctx, auth.LoginRequest{Email: email, Password: "password123"})
	require.NoError(t, err)

	result, err := authService.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: loginResult.RefreshToken})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	db := requireAuthTestDB(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx, db)

	email := fmt.Sprintf("refresh-%d@example.com", time.Now().UnixNano())
	createAuthTestUser(t, ctx, db, email, true)
	authService, _ := newTestAuthService(db)

	loginResult, err := authService.Login(ctx, auth.LoginRequest{Email: email, Password: "password123"})
	require.NoError(t, err)

	_, err = authService.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: loginResult.AccessToken})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesRefreshToken(t *testing.T) {
	db := requireAuthTestDB(t)
	ctx := context.Background()
	truncateAuthTables(t, ctx, db)

	email := fmt.Sprintf("logout-%d@example.com", time.Now().UnixNano())
	createAuthTestUser(t, ctx, db, email, true)
	authService, jwtService := newTestAuthService(db)

	loginResult, err := authService.Login(ctx, auth.LoginRequest{Email: email, Password: "password123"})
	require.NoError(t, err)

	err = authService.Logout(ctx, loginResult.RefreshToken)
	assert.NoError(t, err)
	assert.True(t, jwtService.IsTokenRevoked(loginResult.RefreshToken))

	_, err = authService.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: loginResult.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
