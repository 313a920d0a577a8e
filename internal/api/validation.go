package api

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failed struct-tag rule.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct validates s by its `validate` tags. Fields are reported
// under their JSON names.
func ValidateStruct(s interface{}) []FieldError {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Message: err.Error()}}
	}

	errs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: getErrorMessage(fe),
		})
	}
	return errs
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	default:
		return err.Field() + " is invalid"
	}
}

// RequireFields validates s and, on failure, returns a Validation error
// whose message is summary followed by the offending fields.
func RequireFields(s interface{}, summary string) error {
	errs := ValidateStruct(s)
	if len(errs) == 0 {
		return nil
	}

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}

	return Validation(summary + " (missing: " + strings.Join(fields, ", ") + ")")
}
