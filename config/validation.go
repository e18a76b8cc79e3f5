package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = validator.New()

// ValidateConfig checks field shapes and refuses the fallback JWT secret in
// production.
func ValidateConfig(cfg *Config) error {
	var problems []string

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			problems = append(problems, ValidationError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed %q check (value %v)", fe.Tag(), redact(fe.Field(), fe.Value())),
			}.Error())
		}
	}

	if cfg.IsProduction() && cfg.JWTSecret == DefaultJWTSecret {
		problems = append(problems, ValidationError{
			Field:   "JWTSecret",
			Message: "JWT_SECRET must be set in production",
		}.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func redact(field string, v any) any {
	switch field {
	case "JWTSecret", "DatabaseURL":
		return "<redacted>"
	}
	return v
}
