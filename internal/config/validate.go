package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/sakura/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var flagNames = map[string]string{
	"Mode":       "--mode",
	"Duration":   "--duration",
	"WindowSize": "--window",
	"Lang":       "--lang",
	"WordList":   "--wordlist",
	"CapsPct":    "--caps",
	"PunctPct":   "--punct",
	"PunctSet":   "--punct-set",
}

// Validate checks the merged game config and reports the first problem using
// CLI flag names.
func Validate(cfg model.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("invalid config: %w", err)
	}
	fe := verrs[0]
	name := flagNames[fe.StructField()]
	if name == "" {
		name = strings.ToLower(fe.StructField())
	}
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", name, fe.Param())
	case "min":
		return fmt.Errorf("%s must be >= %s", name, fe.Param())
	case "max":
		return fmt.Errorf("%s must be <= %s", name, fe.Param())
	case "required", "required_with":
		return fmt.Errorf("%s must not be empty", name)
	default:
		return fmt.Errorf("%s is invalid (%s)", name, fe.Tag())
	}
}
