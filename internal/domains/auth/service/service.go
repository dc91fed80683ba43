package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyroom/config"
	"studyroom/infras/jwt"
	"studyroom/infras/otel"
	"studyroom/internal/domains/auth/model/dto"
	staffModel "studyroom/internal/domains/staff/model"
	staffRepo "studyroom/internal/domains/staff/repository"
	"studyroom/shared"
	"studyroom/shared/cache"
	"studyroom/shared/constant"
	"studyroom/shared/failure"
	"studyroom/shared/password"
	"studyroom/shared/timezone"
	"studyroom/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const cacheSession = "session"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Authenticate(ctx context.Context, token string) (dto.Session, error)
	Logout(ctx context.Context, token string) error
}

type serviceImpl struct {
	staffRepo  staffRepo.Staff
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(staffRepo staffRepo.Staff, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		staffRepo:  staffRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		jwtService: jwt,
	}
}

// Login checks the credentials and opens a session. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.InvalidLogin
	}

	staff, err := s.staffRepo.Get(ctx, shared.FilterByID(req.Username, staffModel.FieldUsername, staffModel.TableName),
		staffModel.FieldUsername, staffModel.FieldPasswordHash)
	if err != nil {
		log.Error().Err(err).Msg("failed to load staff account")

		return res, fmt.Errorf("failed to load staff account: %w", err)
	}

	if staff.Username == constant.Empty {
		_ = password.VerifyDummy(req.Password)

		log.Warn().Str("username", req.Username).Msg("login attempt for unknown staff account")

		return res, failure.InvalidLogin
	}

	if err = password.Verify(req.Password, staff.PasswordHash); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Msg("failed to verify staff password")
		}

		log.Warn().Str("username", req.Username).Msg("staff login rejected")

		return res, failure.InvalidLogin
	}

	now := timezone.Now()
	session := dto.Session{
		ID:        uuid.NewString(),
		Username:  staff.Username,
		CreatedAt: now,
	}

	if err = s.saveSession(ctx, session); err != nil {
		return res, err
	}

	token, err := s.jwtService.Sign(session.ID, session.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign session token")

		return res, fmt.Errorf("failed to sign session token: %w", err)
	}

	log.Info().Str("username", staff.Username).Msg("staff logged in")

	return dto.LoginResponse{
		Token:     token,
		Username:  staff.Username,
		ExpiresAt: now.Add(time.Duration(s.cfg.Session.MaxAgeMin) * time.Minute),
	}, nil
}

// Authenticate resolves a cookie token to its live session and slides the idle expiry.
func (s *serviceImpl) Authenticate(ctx context.Context, token string) (session dto.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Authenticate")
	defer scope.End()

	if token == "" {
		return session, failure.LoginRequired
	}

	claims, err := s.jwtService.Parse(token)
	if err != nil {
		log.Debug().Err(err).Msg("rejected staff token")

		return session, failure.LoginRequired
	}

	if err = s.cache.Get(ctx, sessionKey(claims.SessionID), &session); err != nil {
		if !errors.Is(err, cache.Nil) {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to load staff session")
		}

		return dto.Session{}, failure.LoginRequired
	}

	if session.Username != claims.Username {
		log.Warn().Str("session_id", claims.SessionID).Msg("session does not belong to token subject")

		return dto.Session{}, failure.LoginRequired
	}

	if err = s.saveSession(ctx, session); err != nil {
		scope.TraceError(err)

		return dto.Session{}, err
	}

	return session, nil
}

// Logout ends the session behind token. Tokens that no longer parse have nothing to end.
func (s *serviceImpl) Logout(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, parseErr := s.jwtService.Parse(token)
	if parseErr != nil {
		return nil
	}

	if err = s.cache.Delete(ctx, sessionKey(claims.SessionID)); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	log.Info().Str("username", claims.Username).Msg("staff logged out")

	return nil
}

func (s *serviceImpl) saveSession(ctx context.Context, session dto.Session) error {
	ttl := s.cfg.Session.IdleMin * int(time.Minute/time.Second)

	if err := s.cache.Save(ctx, sessionKey(session.ID), session, ttl); err != nil {
		log.Error().Err(err).Msg("failed to save staff session")

		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func sessionKey(id string) string {
	return shared.BuildCacheKey(cacheSession, id)
}
