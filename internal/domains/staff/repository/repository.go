package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"studyroom/infras/otel"
	"studyroom/infras/postgres"
	"studyroom/internal/domains/staff/model"
	gDto "studyroom/shared/dto"
	gRepo "studyroom/shared/repository"
)

type Staff interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Staff, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Upsert(ctx context.Context, staff model.Staff) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Staff]
}

func New(db *postgres.Connection, otel otel.Otel) Staff {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Staff](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Upsert keys on username so re-provisioning an account only rotates its password.
func (r *repositoryImpl) Upsert(ctx context.Context, staff model.Staff) error {
	return r.Repository.Upsert(ctx, staff, model.FieldUsername) //nolint:wrapcheck
}
