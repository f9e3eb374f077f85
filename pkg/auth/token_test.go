package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/angelmondragon/zencrm-backend/pkg/config"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "zencrm",
		ExpirationMinutes: 30,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	now := time.Now()

	token, err := MintAccessToken(cfg, now, AccessTokenPayload{
		UserID: userID,
		Email:  "ada@example.com",
		Role:   enums.UserRoleUser,
	})
	require.NoError(t, err)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, enums.UserRoleUser, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	issued := time.Now()

	token, err := MintAccessToken(cfg, issued, AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "ada@example.com",
		Role:   enums.UserRoleUser,
	})
	require.NoError(t, err)

	_, err = ParseAccessTokenAt(cfg, token, issued.Add(31*time.Minute))
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))

	_, err = ParseAccessTokenAt(cfg, token, issued.Add(29*time.Minute))
	require.NoError(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "ada@example.com",
		Role:   enums.UserRoleAdmin,
	})
	require.NoError(t, err)

	other := cfg
	other.Secret = "different-secret"
	_, err = ParseAccessToken(other, token)
	require.Error(t, err)
}

func TestMintValidatesInputs(t *testing.T) {
	cfg := testJWTConfig()

	_, err := MintAccessToken(config.JWTConfig{Issuer: "zencrm", ExpirationMinutes: 30}, time.Now(), AccessTokenPayload{Role: enums.UserRoleUser})
	require.Error(t, err)

	_, err = MintAccessToken(cfg, time.Now(), AccessTokenPayload{Role: enums.UserRole("root")})
	require.Error(t, err)
}
