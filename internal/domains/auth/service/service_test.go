package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"studyroom/config"
	"studyroom/infras/jwt"
	jwtMocks "studyroom/infras/jwt/mocks"
	"studyroom/infras/otel/mocks"
	"studyroom/internal/domains/auth/model/dto"
	"studyroom/internal/domains/auth/service"
	staffMocks "studyroom/internal/domains/staff/mocks"
	staffModel "studyroom/internal/domains/staff/model"
	"studyroom/shared/cache"
	cacheMocks "studyroom/shared/cache/mocks"
	"studyroom/shared/failure"
	"studyroom/shared/password"
)

const idleTTL = 20 * 60

type fixture struct {
	staff *staffMocks.MockStaff
	cache *cacheMocks.MockRedisCache
	jwt   *jwtMocks.MockJWT
	svc   service.Auth
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		staff: staffMocks.NewMockStaff(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		jwt:   jwtMocks.NewMockJWT(ctrl),
	}

	cfg := &config.Config{}
	cfg.Session.IdleMin = 20
	cfg.Session.MaxAgeMin = 720

	f.svc = service.New(f.staff, cfg, f.cache, mocks.NewOtel(), f.jwt)

	return f
}

func isSessionKey(key string) bool {
	return strings.HasPrefix(key, "session:") && len(key) > len("session:")
}

func TestAuthService_Login(t *testing.T) {
	hash, err := password.Hash("correct horse")
	require.NoError(t, err)

	librarian := staffModel.Staff{Username: "librarian", PasswordHash: hash}

	t.Run("valid credentials open a session", func(t *testing.T) {
		f := newFixture(t)

		f.staff.EXPECT().Get(gomock.Any(), gomock.Any(), staffModel.FieldUsername, staffModel.FieldPasswordHash).Return(librarian, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Cond(isSessionKey), gomock.Cond(func(s dto.Session) bool {
			return s.Username == "librarian" && s.ID != ""
		}), idleTTL).Return(nil)
		f.jwt.EXPECT().Sign(gomock.Any(), "librarian").Return("signed-token", nil)

		res, err := f.svc.Login(context.Background(), dto.LoginRequest{Username: " librarian ", Password: "correct horse"})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", res.Token)
		assert.Equal(t, "librarian", res.Username)
		assert.False(t, res.ExpiresAt.IsZero())
	})

	rejected := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(f fixture)
	}{
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "librarian", Password: "battery staple"},
			setupMock: func(f fixture) {
				f.staff.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(librarian, nil)
			},
		},
		{
			name: "unknown username",
			req:  dto.LoginRequest{Username: "intruder", Password: "correct horse"},
			setupMock: func(f fixture) {
				f.staff.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, nil)
			},
		},
		{
			name:      "empty password",
			req:       dto.LoginRequest{Username: "librarian"},
			setupMock: func(fixture) {},
		},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Login(context.Background(), tt.req)

			assert.ErrorIs(t, err, failure.InvalidLogin)
			assert.Equal(t, "Invalid username or password.", failure.GetMessage(err))
		})
	}

	t.Run("store failure is internal", func(t *testing.T) {
		f := newFixture(t)

		f.staff.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, errors.New("db down"))

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{Username: "librarian", Password: "correct horse"})

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})

	t.Run("session store failure aborts login", func(t *testing.T) {
		f := newFixture(t)

		f.staff.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(librarian, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{Username: "librarian", Password: "correct horse"})

		assert.ErrorContains(t, err, "failed to save session")
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	claims := &jwt.Claims{SessionID: "sess-1", Username: "librarian"}
	stored := dto.Session{ID: "sess-1", Username: "librarian"}

	t.Run("live session slides its expiry", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().Parse("token").Return(claims, nil)
		f.cache.EXPECT().Get(gomock.Any(), "session:sess-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.Session) = stored

				return nil
			})
		f.cache.EXPECT().Save(gomock.Any(), "session:sess-1", stored, idleTTL).Return(nil)

		session, err := f.svc.Authenticate(context.Background(), "token")

		require.NoError(t, err)
		assert.Equal(t, stored, session)
	})

	tests := []struct {
		name      string
		token     string
		setupMock func(f fixture)
	}{
		{
			name:      "no cookie",
			token:     "",
			setupMock: func(fixture) {},
		},
		{
			name:  "expired token",
			token: "token",
			setupMock: func(f fixture) {
				f.jwt.EXPECT().Parse("token").Return(nil, jwt.ErrExpiredToken)
			},
		},
		{
			name:  "session idled out",
			token: "token",
			setupMock: func(f fixture) {
				f.jwt.EXPECT().Parse("token").Return(claims, nil)
				f.cache.EXPECT().Get(gomock.Any(), "session:sess-1", gomock.Any()).Return(cache.Nil)
			},
		},
		{
			name:  "session belongs to someone else",
			token: "token",
			setupMock: func(f fixture) {
				f.jwt.EXPECT().Parse("token").Return(claims, nil)
				f.cache.EXPECT().Get(gomock.Any(), "session:sess-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*dto.Session) = dto.Session{ID: "sess-1", Username: "other"}

						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Authenticate(context.Background(), tt.token)

			assert.ErrorIs(t, err, failure.LoginRequired)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("deletes the session", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().Parse("token").Return(&jwt.Claims{SessionID: "sess-1", Username: "librarian"}, nil)
		f.cache.EXPECT().Delete(gomock.Any(), "session:sess-1").Return(nil)

		assert.NoError(t, f.svc.Logout(context.Background(), "token"))
	})

	t.Run("unparseable token is a no-op", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().Parse("garbage").Return(nil, jwt.ErrInvalidToken)

		assert.NoError(t, f.svc.Logout(context.Background(), "garbage"))
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().Parse("token").Return(&jwt.Claims{SessionID: "sess-1", Username: "librarian"}, nil)
		f.cache.EXPECT().Delete(gomock.Any(), "session:sess-1").Return(errors.New("redis down"))

		assert.ErrorContains(t, f.svc.Logout(context.Background(), "token"), "failed to end session")
	})
}
