package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs to
// gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("denomination", validateDenomination); err != nil {
		return fmt.Errorf("failed to register denomination validator: %w", err)
	}
	return nil
}

// validateDenomination accepts only names from the denomination catalog.
func validateDenomination(fl validator.FieldLevel) bool {
	return domain.IsKnownDenomination(fl.Field().String())
}

// bindErrorMessage turns a binding failure into a client-facing message.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format: " + err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "denomination":
			msgs = append(msgs, fmt.Sprintf("unknown denomination %q", fe.Value()))
		case "uuid":
			msgs = append(msgs, fmt.Sprintf("%s must be a UUID", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
	}
	return "Invalid request: " + strings.Join(msgs, "; ")
}
