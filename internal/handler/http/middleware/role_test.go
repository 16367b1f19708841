package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
)

func requestWithRole(t *testing.T, ja *jwtauth.JWTAuth, role string) *http.Request {
	t.Helper()

	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    role,
		"type":    "access",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/deliverables/report", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	return req
}

func serveWithPermission(t *testing.T, ja *jwtauth.JWTAuth, permission user.Permission, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	var reached bool
	handler := jwtauth.Verifier(ja)(RequirePermission(permission)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		require.True(t, reached)
	}
	return rec
}

func TestRequirePermission_AllowsGrantedRole(t *testing.T) {
	t.Parallel()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)

	for _, role := range []string{"manager", "superadmin"} {
		req := requestWithRole(t, ja, role)
		rec := serveWithPermission(t, ja, user.PermissionDeliverableReport, req)
		assert.Equal(t, http.StatusOK, rec.Code, "role %s should reach the handler", role)
	}
}

func TestRequirePermission_ForbidsMemberFromReports(t *testing.T) {
	t.Parallel()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)

	req := requestWithRole(t, ja, "member")
	rec := serveWithPermission(t, ja, user.PermissionDeliverableReport, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePermission_ForbidsMissingToken(t *testing.T) {
	t.Parallel()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)

	req := httptest.NewRequest(http.MethodGet, "/deliverables/report", nil)
	rec := serveWithPermission(t, ja, user.PermissionDashboardView, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
