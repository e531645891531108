package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/job-board-service/internal/domain"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("user_role", validateUserRole); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("application_status", validateApplicationStatus); err != nil {
		panic(err)
	}
	return v
}

func validateUserRole(fl validator.FieldLevel) bool {
	_, ok := domain.ParseUserRole(fl.Field().String())
	return ok
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	_, ok := domain.ParseApplicationStatus(fl.Field().String())
	return ok
}

// Validate checks struct tags and converts failures to BadRequestError.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return apperrors.NewBadRequest("invalid fields: " + strings.Join(fields, ", "))
	}
	return apperrors.NewBadRequest("invalid payload")
}

// SplitCSV converts a comma-separated field into a trimmed slice, dropping
// empty entries.
func SplitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
