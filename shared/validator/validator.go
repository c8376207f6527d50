package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"rentdesk/shared/base64"
	"rentdesk/shared/constant"
	"rentdesk/shared/failure"
	"reflect"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

const megabyte = 1 << 20

// upload describes the file behind a field: an uploaded part or a data URL.
func upload(field val.FieldLevel) (contentType string, size int64, ok bool) {
	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return value.Header.Get(constant.RequestHeaderContentType), value.Size, true
	case string:
		contentType = base64.GetContentType(value)

		// base64 carries three bytes in four characters
		return contentType, int64(len(value)) * 3 / 4, contentType != ""
	default:
		return "", 0, false
	}
}

// mimetypes=image/png image/jpeg
func validateMimetypes(field val.FieldLevel) bool {
	contentType, _, ok := upload(field)

	return ok && slices.Contains(strings.Fields(field.Param()), contentType)
}

// maxfilesize=2 allows up to 2 MB.
func validateMaxFileSize(field val.FieldLevel) bool {
	limit, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	_, size, ok := upload(field)

	return ok && float64(size) <= limit*megabyte
}

// decimalValue lets numeric tags such as gte and lte apply to money fields.
func decimalValue(field reflect.Value) any {
	if amount, ok := field.Interface().(decimal.Decimal); ok {
		return amount.InexactFloat64()
	}

	return nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	for tag, fn := range map[string]val.Func{
		"mimetypes":   validateMimetypes,
		"maxfilesize": validateMaxFileSize,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON request body into data and checks its validate
// tags. Unknown fields are rejected so typos in the console surface as 400s.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar checks a single value such as a path parameter.
func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
