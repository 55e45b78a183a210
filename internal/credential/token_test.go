package credential

import (
	"bytes"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return signed
}

func TestClaims_Summary(t *testing.T) {
	issued := time.Now().Truncate(time.Second)
	expiry := issued.Add(time.Hour)

	token := Token{
		AccessToken: signedToken(t, jwt.RegisteredClaims{
			Subject:   "node-operator",
			Issuer:    "https://node-a.example:2428",
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expiry),
		}),
	}

	summary, err := token.Claims()
	require.NoError(t, err)

	assert.Equal(t, "node-operator", summary.Subject)
	assert.Equal(t, "https://node-a.example:2428", summary.Issuer)
	assert.True(t, summary.IssuedAt.Equal(issued))
	assert.True(t, summary.Expiry.Equal(expiry))
}

func TestClaims_ExpiredTokenStillReadable(t *testing.T) {
	// the cache is not the authority on validity: claims of an expired token
	// must still be readable for display
	token := Token{
		AccessToken: signedToken(t, jwt.RegisteredClaims{
			Subject:   "node-operator",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}),
	}

	summary, err := token.Claims()
	require.NoError(t, err)
	assert.Equal(t, "node-operator", summary.Subject)
}

func TestClaims_NotAJWT(t *testing.T) {
	token := Token{AccessToken: "opaque-bearer-value"}

	_, err := token.Claims()
	assert.Error(t, err)
}

func TestIsZero(t *testing.T) {
	assert.True(t, Token{}.IsZero())
	assert.True(t, Token{ExpiresAt: 12345}.IsZero())
	assert.False(t, Token{AccessToken: "a"}.IsZero())
	assert.False(t, Token{RefreshToken: "r"}.IsZero())
}

func TestMarshalZerologObject_Redacts(t *testing.T) {
	token := Token{
		AccessToken:  "access-token-material",
		RefreshToken: "refresh-token-material",
		ExpiresAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Unix(),
	}

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Info().Object("record", token).Msg("saved")

	logged := buf.String()
	assert.NotContains(t, logged, "access-token-material")
	assert.NotContains(t, logged, "refresh-token-material")
	assert.Contains(t, logged, `"has_access_token":true`)
	assert.Contains(t, logged, `"has_refresh_token":true`)
}
