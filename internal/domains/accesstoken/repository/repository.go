package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/internal/domains/accesstoken/model"
	gDto "rentdesk/shared/dto"
	gRepo "rentdesk/shared/repository"
)

type AccessToken interface {
	Insert(ctx context.Context, model model.AccessToken) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AccessToken, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.AccessToken]
}

func New(db *postgres.Connection, otel otel.Otel) AccessToken {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AccessToken](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
