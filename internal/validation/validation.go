package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/laughmeter/internal/constants"
	apperrors "github.com/julianstephens/laughmeter/internal/errors"
	"github.com/julianstephens/laughmeter/internal/utils"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails on an empty tag or nil func.
		_ = validate.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
			_, ok := constants.ParseMood(fl.Field().String())
			return ok
		})
		_ = validate.RegisterValidation("tzname", func(fl validator.FieldLevel) bool {
			return utils.ValidateTimezone(fl.Field().String())
		})
		_ = validate.RegisterValidation("trimmed", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == strings.TrimSpace(s)
		})
	})
	return validate
}

// Struct validates v against its `validate` tags. Failures come back as a
// single invalid-input error naming every offending field.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return apperrors.NewInternal("validate input", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return apperrors.NewInvalidInput("%s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "mood":
		return fmt.Sprintf("mood %q is not one of %s", fe.Value(), moodList())
	case "tzname":
		return fmt.Sprintf("timezone %q is not a valid IANA name", fe.Value())
	case "trimmed":
		return fmt.Sprintf("%s has leading or trailing spaces", field)
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}

func moodList() string {
	names := make([]string, len(constants.Moods))
	for i, m := range constants.Moods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
