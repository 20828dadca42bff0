//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"sandwich-storefront/internal/domain/user"
	"sandwich-storefront/internal/pkg/clock"
	"sandwich-storefront/internal/pkg/config"
	"sandwich-storefront/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service(t *testing.T) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock())
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.Service(t).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs with a clock set well before the token lifetime.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	past := clock.NewMockClock(time.Now().Add(-2 * duration))
	token, err := jwt.NewService(h.cfg.Secret, duration, past).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
