package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"slices"
	"strconv"
	"strings"

	"studyroom/shared/constant"
	"studyroom/shared/failure"
	"studyroom/shared/timezone"
	"studyroom/shared/wallclock"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	switch v := field.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = v.Header.Get(constant.RequestHeaderContentType)
	case string:
		contentType = v
	}

	if contentType == constant.Empty {
		return false
	}

	return slices.Contains(strings.Split(field.Param(), " "), contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	var fileSize int64

	switch v := field.Field().Interface().(type) {
	case multipart.FileHeader:
		fileSize = v.Size
	case int64:
		fileSize = v
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(fileSize) <= maxSizeMB*1024*1024
}

func registerClockValidation(field val.FieldLevel) bool {
	return wallclock.Valid(field.Field().String())
}

func registerDayValidation(field val.FieldLevel) bool {
	_, err := timezone.ParseDay(field.Field().String())

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	custom := map[string]val.Func{
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
		"clock":       registerClockValidation,
		"day":         registerDayValidation,
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body into data and validates it.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
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

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
