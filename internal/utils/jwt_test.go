package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/resume-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPrincipal = models.Principal{ID: "01928f3e-0000-7000-8000-000000000001", Username: "alice", Email: "a@x.com"}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testPrincipal, time.Hour, "secret-key")

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)

	claims, ok := token.Token.Claims.(*models.Claims)
	require.True(t, ok, "could not cast claims to *models.Claims")
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, testPrincipal.ID, claims.Subject)
	assert.Equal(t, testPrincipal, claims.Principal())
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		principal models.Principal
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", testPrincipal, time.Hour, "key"},
		{"zero duration", "iss", testPrincipal, 0, "key"},
		{"empty key", "iss", testPrincipal, time.Hour, ""},
		{"empty principal", "iss", models.Principal{}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.principal, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", testPrincipal, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")

	require.NoError(t, err)
	assert.Equal(t, testPrincipal, parsed.Claims.Principal())
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", testPrincipal, time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", testPrincipal, -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", testPrincipal, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_MissingID verifies that a correctly signed
// token without the id claim is rejected.
func TestValidateAndParseJWTToken_MissingID(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongAlgorithm(t *testing.T) {
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   testPrincipal.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: testPrincipal.ID,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer abc", "abc", false},
		{"  Bearer   abc  ", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			assert.Error(t, err, tt.header)
			continue
		}
		require.NoError(t, err, tt.header)
		assert.Equal(t, tt.want, got)
	}
}
