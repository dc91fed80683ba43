package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyroom/config"
	"studyroom/infras/jwt"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "studyroom"
	cfg.Session.Secret = secret
	cfg.Session.MaxAgeMin = 60

	return cfg
}

func TestSignAndParse(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	signer := jwt.NewWithClock(testConfig("s3cret"), func() time.Time { return now })

	token, err := signer.Sign("session-1", "desk")
	require.NoError(t, err)

	claims, err := signer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, "desk", claims.Username)
}

func TestSignRejectsEmptyClaims(t *testing.T) {
	signer := jwt.New(testConfig("s3cret"))

	_, err := signer.Sign("", "desk")
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestParse(t *testing.T) {
	issued := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	signer := jwt.NewWithClock(testConfig("s3cret"), func() time.Time { return issued })

	token, err := signer.Sign("session-1", "desk")
	require.NoError(t, err)

	noneToken, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"sid": "x", "username": "desk", "iss": "studyroom"}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name        string
		signer      jwt.JWT
		token       string
		expectedErr error
	}{
		{
			name:        "expired",
			signer:      jwt.NewWithClock(testConfig("s3cret"), func() time.Time { return issued.Add(2 * time.Hour) }),
			token:       token,
			expectedErr: jwt.ErrExpiredToken,
		},
		{
			name:        "wrong secret",
			signer:      jwt.NewWithClock(testConfig("other"), func() time.Time { return issued }),
			token:       token,
			expectedErr: jwt.ErrInvalidToken,
		},
		{
			name:        "unsigned token",
			signer:      signer,
			token:       noneToken,
			expectedErr: jwt.ErrInvalidToken,
		},
		{
			name:        "garbage",
			signer:      signer,
			token:       "not.a.token",
			expectedErr: jwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.signer.Parse(tt.token)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
