package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"studyroom/infras/otel"
	"studyroom/internal/domains/staff/model/dto"
	"studyroom/internal/domains/staff/repository"
	"studyroom/shared/constant"
	"studyroom/shared/password"
	"studyroom/shared/timezone"
	"studyroom/shared/validator"

	"github.com/rs/zerolog/log"
)

const provisioner = "seed"

type Staff interface {
	Provision(ctx context.Context, req dto.ProvisionRequest) error
}

type serviceImpl struct {
	repo repository.Staff
	otel otel.Otel
}

func New(repo repository.Staff, otel otel.Otel) Staff {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Provision(ctx context.Context, req dto.ProvisionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Provision")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("failed to hash staff password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.Upsert(ctx, req.ToModel(hash, provisioner, timezone.Now())); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("failed to provision staff account")

		return fmt.Errorf("failed to provision staff account: %w", err)
	}

	log.Info().Str("username", req.Username).Msg("staff account provisioned")

	return nil
}
