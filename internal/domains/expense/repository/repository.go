package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/internal/domains/expense/model"
	gDto "rentdesk/shared/dto"
	gRepo "rentdesk/shared/repository"
)

type Expense interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Expense, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Expense]
}

func New(db *postgres.Connection, otel otel.Otel) Expense {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Expense](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
