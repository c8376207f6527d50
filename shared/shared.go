package shared

import (
	"context"
	"math"
	"rentdesk/shared/cache"
	"rentdesk/shared/constant"
	"rentdesk/shared/dto"
	"rentdesk/shared/failure"
	"rentdesk/shared/timezone"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero db-tagged fields of a struct into an update map.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.And(dto.Eq(table, fieldID, id))
}

// FilterActiveByBooking selects the non soft-deleted rows of a table that belong to a booking.
func FilterActiveByBooking(bookingID, fieldBookingID, table string) dto.FilterGroup {
	return dto.And(
		dto.Eq(table, fieldBookingID, bookingID),
		dto.IsNull(table, constant.FieldDeletedAt),
	)
}

// FilterByBooking selects every row of a table that belongs to a booking.
func FilterByBooking(bookingID, fieldBookingID, table string) dto.FilterGroup {
	return FilterByID(bookingID, fieldBookingID, table)
}

// RequireAffected turns a write that touched no rows into a visible failure.
func RequireAffected(affected int64, entity string) error {
	if affected > 0 {
		return nil
	}

	return failure.NotWritten(entity) // nolint:wrapcheck
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, constant.Colon)
}

func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	keys := make([]string, 0, len(args))
	for key := range args {
		keys = append(keys, key)
	}

	parts := []string{
		prefix,
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		params.SortBy,
		params.SortDir,
		where,
	}

	for _, key := range sortedKeys(keys) {
		parts = append(parts, key+"="+toString(args[key]))
	}

	return BuildCacheKey(parts...)
}

// InvalidateCaches removes every cached entry whose key starts with prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
