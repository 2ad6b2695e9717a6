package config

import (
	"strings"

	"telecare-scheduler/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

// Validate checks the required fields of both config structs. Missing
// configuration is fatal: the process must not start a tick without it.
func Validate(driverConfig *DriverConfig, internalConfig *InternalConfig) error {
	validate := validator.New()

	if err := validate.Struct(driverConfig); err != nil {
		return exceptions.ErrConfigMissing(err, fieldList(err))
	}
	if err := validate.Struct(internalConfig); err != nil {
		return exceptions.ErrConfigMissing(err, fieldList(err))
	}
	return nil
}

func fieldList(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "unknown field"
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields = append(fields, fieldError.Namespace())
	}
	return strings.Join(fields, ", ")
}
