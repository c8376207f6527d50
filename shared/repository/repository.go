package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/shared/constant"
	"rentdesk/shared/dto"
	"rentdesk/shared/failure"
	"rentdesk/shared/logger"
	"rentdesk/shared/timezone"
	"reflect"
	"slices"
	"strings"

	"github.com/lib/pq"
)

var errRequiredFilter = errors.New("required filter")

// Repository maps T, a struct with db tags, onto one table. Embedded structs
// such as model.Metadata contribute their columns too.
//
// Reads go to the read connection and writes to the write connection. Write
// methods report affected rows; zero means the row is missing or the store
// refused the write.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       dbColumns(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		constant.OtelRepositoryScopeName+"."+repo.entity+"."+operation)
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	placeholders := make([]string, len(repo.columns))
	for idx, col := range repo.columns {
		placeholders[idx] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		repo.table, strings.Join(repo.columns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, model); err != nil {
		if violation := repo.constraintFailure(err); violation != nil {
			scope.TraceError(err)

			return violation
		}

		return repo.fail(scope, "insert data", err)
	}

	return nil
}

// Get returns the first row matching filter, or the zero T when none does.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	var model T

	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s", repo.selectList(columns), repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return model, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

// GetAll pages through the rows matching filter. params.SortBy must already be
// a known column; QueryParams.FromRequest only lets whitelisted ones through.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := whereClause(filter)

	var query strings.Builder

	fmt.Fprintf(&query, "SELECT %s FROM %s%s", repo.selectList(columns), repo.table, where)

	if params.SortBy != "" && params.SortDir != "" {
		fmt.Fprintf(&query, " ORDER BY %s.%s %s", repo.table, params.SortBy, params.SortDir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit

		query.WriteString(" LIMIT :limit")

		if params.Page > 0 {
			args["offset"] = (params.Page - 1) * params.Limit

			query.WriteString(" OFFSET :offset")
		}
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query.String())

	models := []T{}

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query.String())
	if err != nil {
		return models, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err := stmt.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s%s", repo.table, repo.primaryColumn, repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, &count, args); err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

// Update applies mod to every row matching filter and reports how many rows changed.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	return repo.update(ctx, scope, mod, filter)
}

// SoftDelete stamps deleted_at on the live rows matching filter. Rows already
// deleted are left untouched so the original deletion time is kept.
func (repo *Repository[T]) SoftDelete(ctx context.Context, filter dto.FilterGroup, username string) (int64, error) {
	ctx, scope := repo.scope(ctx, "SoftDelete")
	defer scope.End()

	now := timezone.Now()

	return repo.update(ctx, scope, map[string]any{
		constant.FieldDeletedAt:  now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: username,
	}, dto.And(filter, dto.IsNull(repo.table, constant.FieldDeletedAt)))
}

func (repo *Repository[T]) update(ctx context.Context, scope otel.Scope, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	where, args := whereClause(filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	assignments := make([]string, 0, len(mod))
	for _, col := range slices.Sorted(maps.Keys(mod)) {
		assignments = append(assignments, col+" = :"+col)
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	maps.Copy(args, mod)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		return 0, repo.fail(scope, "update data", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, repo.fail(scope, "read affected rows", err)
	}

	scope.SetAttribute("db.rows_affected", affected)

	return affected, nil
}

// constraintFailure turns key violations into client errors; other errors
// give nil.
func (repo *Repository[T]) constraintFailure(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeUniqueViolation:
		return failure.Conflict(repo.entity + " already exists")
	case constant.PqErrorCodeFkViolation:
		return failure.BadRequestFromString(repo.entity + " refers to a record that does not exist")
	default:
		return nil
	}
}

func (repo *Repository[T]) selectList(only []string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col) {
			continue
		}

		selected = append(selected, repo.table+"."+col)
	}

	return strings.Join(selected, ", ")
}

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where, args
}

func dbColumns(reflectType reflect.Type) []string {
	columns := []string{}

	for idx := range reflectType.NumField() {
		field := reflectType.Field(idx)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, dbColumns(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}
