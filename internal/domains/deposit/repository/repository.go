package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/internal/domains/deposit/model"
	gDto "rentdesk/shared/dto"
	gRepo "rentdesk/shared/repository"
)

type Authorization interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Authorization, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Authorization]
}

func New(db *postgres.Connection, otel otel.Otel) Authorization {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Authorization](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
