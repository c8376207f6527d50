package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/internal/domains/fine/model"
	gDto "rentdesk/shared/dto"
	gRepo "rentdesk/shared/repository"
)

type Fine interface {
	Insert(ctx context.Context, model model.Fine) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Fine, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	SoftDelete(ctx context.Context, filter gDto.FilterGroup, username string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Fine]
}

func New(db *postgres.Connection, otel otel.Otel) Fine {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Fine](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
