package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"stablecard/internal/domainerrors"
	"stablecard/internal/model"
)

// ValidationError lists every problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog has %d problem(s): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return domainerrors.New(domainerrors.CodeValidation, "invalid issuer catalog")
}

type enumValue interface {
	IsValid() bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// enum checks a typed value against its domain in the model package.
	err := v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumValue)
		return ok && e.IsValid()
	})
	if err != nil {
		panic(fmt.Sprintf("registering enum validation: %v", err))
	}

	return v
}

// Validate checks every issuer and the catalog as a whole. It returns nil or
// a *ValidationError carrying all problems, not just the first.
func Validate(issuers []model.Issuer) error {
	var problems []string
	ids := make(map[string]bool, len(issuers))

	for idx, issuer := range issuers {
		label := issuer.ID
		if label == "" {
			label = fmt.Sprintf("[%d]", idx)
		}

		if issuer.ID != "" {
			if ids[issuer.ID] {
				problems = append(problems, fmt.Sprintf("Duplicate ID: %s", issuer.ID))
			}
			ids[issuer.ID] = true
		}

		for _, p := range validateIssuer(issuer) {
			problems = append(problems, fmt.Sprintf("%s: %s", label, p))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func validateIssuer(issuer model.Issuer) []string {
	err := validate.Struct(issuer)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return problems
}

func describe(fe validator.FieldError) string {
	_, field, _ := strings.Cut(fe.Namespace(), ".")

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing required field: %s", field)
	case "len":
		return fmt.Sprintf("%s must be a 2-letter ISO code", field)
	case "min", "max":
		return fmt.Sprintf("%s must be between 1 and 5", field)
	case "enum":
		return fmt.Sprintf("Invalid %s: %v", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
