package auth_test

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/dongwonkwak/boardly-sub002/internal/auth"
	"github.com/dongwonkwak/boardly-sub002/internal/config"
)

func TestGenerateAndParseToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key")
	os.Setenv("JWT_EXPIRY_HOURS", "24")

	userID := "test-user-id"
	token, err := auth.GenerateToken(userID)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedUserID, err := auth.ParseToken(token)

	assert.NoError(t, err)
	assert.Equal(t, userID, parsedUserID)
}

func TestParseToken_InvalidToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key")

	_, err := auth.ParseToken("invalid-token")

	assert.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func TestParseToken_ExpiredToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key")

	claims := jwt.MapClaims{
		"user_id": "test-user-id",
		"exp":     time.Now().Add(-1 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	expiredToken, _ := token.SignedString([]byte("test-secret-key"))

	_, err := auth.ParseToken(expiredToken)

	assert.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func TestParseToken_MissingClaims(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key")

	claims := jwt.MapClaims{
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenWithoutUserID, _ := token.SignedString([]byte("test-secret-key"))

	_, err := auth.ParseToken(tokenWithoutUserID)

	assert.Error(t, err)
	assert.Equal(t, "invalid claims", err.Error())
}

func TestGenerateToken_UnsetSecretUsesSharedDefault(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	token, err := auth.GenerateToken("test-user-id")

	assert.NoError(t, err)

	// With no env set, issuing and verification fall back to the same
	// key the config layer defaults to.
	parsed, parseErr := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(config.DefaultJWTSecret), nil
	})
	assert.NoError(t, parseErr)
	assert.True(t, parsed.Valid)

	userID, err := auth.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "test-user-id", userID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key")

	claims := jwt.MapClaims{
		"user_id": "test-user-id",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	forged, _ := token.SignedString([]byte("another-secret"))

	_, err := auth.ParseToken(forged)

	assert.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}
