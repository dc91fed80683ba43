package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyroom/shared/password"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{name: "valid password", password: "desk-officer-1"},
		{name: "unicode password", password: "пароль123"},
		{name: "empty password", password: "", expectedErr: password.ErrEmptyPassword},
		{name: "longer than bcrypt allows", password: strings.Repeat("a", 100), expectedErr: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("desk-officer-1")
	require.NoError(t, err)

	tests := []struct {
		name        string
		password    string
		hash        string
		expectedErr error
	}{
		{name: "match", password: "desk-officer-1", hash: hash},
		{name: "wrong password", password: "desk-officer-2", hash: hash, expectedErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, expectedErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "desk-officer-1", hash: "", expectedErr: password.ErrInvalidPassword},
		{name: "malformed hash", password: "desk-officer-1", hash: "not-a-hash", expectedErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestVerifyDummy(t *testing.T) {
	assert.ErrorIs(t, password.VerifyDummy("anything"), password.ErrInvalidPassword)
}
