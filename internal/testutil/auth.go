package testutil

import (
	"testing"
	"time"

	"catalog-backend/internal/shared"
	"catalog-backend/pkg/jwt"
)

const TestJWTSecret = "test-secret-key"

func NewJWTManager() *jwt.Manager {
	return jwt.NewManager(TestJWTSecret, time.Hour)
}

// BearerToken returns an Authorization header value for a caller with role.
func BearerToken(t testing.TB, m *jwt.Manager, role string) string {
	t.Helper()

	token, err := m.GenerateAccessToken("1", role+"@bookapi.com", role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

func AdminToken(t testing.TB, m *jwt.Manager) string {
	return BearerToken(t, m, shared.RoleAdmin)
}

func UserToken(t testing.TB, m *jwt.Manager) string {
	return BearerToken(t, m, shared.RoleUser)
}
