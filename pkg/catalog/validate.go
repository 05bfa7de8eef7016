package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	variantNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// validatorInstance configures and returns the shared validator used for
// catalog entries.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("variant_name", func(fl validator.FieldLevel) bool {
			return variantNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func validateEntry(entry Entry) error {
	err := validatorInstance().Struct(entry)
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		return fmt.Errorf("field %s failed validation for tag %q", yamlishFieldName(ve), ve.Tag())
	}
	return err
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
