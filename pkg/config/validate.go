package config

import (
	stderrors "errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/ledwire/pkg/errors"
	"github.com/matzehuels/ledwire/pkg/pipeline"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("output_format", func(fl validator.FieldLevel) bool {
		return pipeline.ValidFormats[fl.Field().String()]
	})
	return v
}

// formatNames lists the output formats accepted by [pipeline.ValidateFormat].
func formatNames() string {
	names := make([]string, 0, len(pipeline.ValidFormats))
	for f := range pipeline.ValidFormats {
		names = append(names, f)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

// Validate checks every section against its bounds. Violations are reported
// as INVALID_CONFIG naming the offending key.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError reports the first violation with its config key.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "validate config")
	}

	e := verrs[0]
	key := configKey(e.Namespace())
	switch e.Tag() {
	case "min":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: must be at least %s", key, e.Param())
	case "max":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: must not exceed %s", key, e.Param())
	case "oneof":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: %v is not one of: %s", key, e.Value(), e.Param())
	case "output_format":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: %v is not one of: %s", key, e.Value(), formatNames())
	case "required_if":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: required when %s", key, strings.ReplaceAll(e.Param(), " ", " = "))
	case "hostname_port":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: %q is not a host:port address", key, e.Value())
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "%s: validation failed (%s)", key, e.Tag())
	}
}

// configKey turns a validator namespace such as "Config.Harness[lan].MaxRunLength"
// into the file key "harness.lan.max_run_length".
func configKey(namespace string) string {
	namespace = strings.TrimPrefix(namespace, "Config.")
	namespace = strings.NewReplacer("[", ".", "]", "").Replace(namespace)
	parts := strings.Split(namespace, ".")
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	lower := false
	for _, r := range s {
		upper := r >= 'A' && r <= 'Z'
		if upper {
			if lower {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		lower = !upper
		b.WriteRune(r)
	}
	return b.String()
}
