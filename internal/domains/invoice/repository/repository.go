package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/internal/domains/invoice/model"
	gDto "rentdesk/shared/dto"
	gRepo "rentdesk/shared/repository"
)

type ClientInvoice interface {
	Insert(ctx context.Context, model model.ClientInvoice) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ClientInvoice, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ClientInvoice, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	SoftDelete(ctx context.Context, filter gDto.FilterGroup, username string) (int64, error)
}

type SupplierInvoice interface {
	Insert(ctx context.Context, model model.SupplierInvoice) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SupplierInvoice, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SupplierInvoice, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	SoftDelete(ctx context.Context, filter gDto.FilterGroup, username string) (int64, error)
}

type clientImpl struct {
	gRepo.Repository[model.ClientInvoice]
}

func NewClient(db *postgres.Connection, otel otel.Otel) ClientInvoice {
	return &clientImpl{
		Repository: gRepo.NewRepository[model.ClientInvoice](model.ClientEntityName, model.ClientTableName, model.FieldID, db, otel),
	}
}

type supplierImpl struct {
	gRepo.Repository[model.SupplierInvoice]
}

func NewSupplier(db *postgres.Connection, otel otel.Otel) SupplierInvoice {
	return &supplierImpl{
		Repository: gRepo.NewRepository[model.SupplierInvoice](model.SupplierEntityName, model.SupplierTableName, model.FieldID, db, otel),
	}
}
