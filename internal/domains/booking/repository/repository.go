package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/internal/domains/booking/model"
	gDto "rentdesk/shared/dto"
	gRepo "rentdesk/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

// Summary reads the booking_financial_summaries view.
type Summary interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.FinancialSummary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

type summaryImpl struct {
	gRepo.Repository[model.FinancialSummary]
}

func NewSummary(db *postgres.Connection, otel otel.Otel) Summary {
	return &summaryImpl{
		Repository: gRepo.NewRepository[model.FinancialSummary](model.SummaryEntityName, model.SummaryTableName, model.FieldSummaryBookingID, db, otel),
	}
}
