package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validation errors.
var (
	ErrEmptyOwner         = errors.New("repository owner cannot be empty")
	ErrInvalidOwner       = errors.New("repository owner contains invalid characters")
	ErrEmptyRepository    = errors.New("repository name cannot be empty")
	ErrInvalidRepository  = errors.New("repository name contains invalid characters")
	ErrRepositoryTooLong  = errors.New("repository name exceeds maximum length")
	ErrEmptyAuthor        = errors.New("author cannot be empty")
	ErrInvalidTimezone    = errors.New("unknown time zone")
	ErrInvalidConfigValue = errors.New("invalid configuration value")
)

// MaxRepositoryNameLength is GitHub's limit on repository names.
const MaxRepositoryNameLength = 100

// validOwnerRegex matches GitHub user and organization logins.
var validOwnerRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,38})$`)

// validRepositoryRegex matches repository names: alphanumeric, dash,
// underscore and dot.
var validRepositoryRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ValidationError wraps a validation error with context.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their TOML key.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks a configuration loaded from defaults and file.
func Validate(c *Config) error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fieldError(fieldErrs[0])
		}
		return err
	}
	return ValidateTimezone(c.Timezone)
}

// fieldError converts a validator failure into a ValidationError keyed by
// the dotted TOML path, e.g. "github.endpoint".
func fieldError(fe validator.FieldError) error {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	var msg string
	switch fe.Tag() {
	case "required":
		msg = "cannot be empty"
	case "url":
		msg = "must be a valid URL"
	case "oneof":
		msg = "must be one of: " + fe.Param()
	case "gte":
		msg = "cannot be negative"
	default:
		msg = "failed " + fe.Tag() + " check"
	}

	return &ValidationError{
		Field:   field,
		Value:   fmt.Sprint(fe.Value()),
		Message: msg,
		Err:     ErrInvalidConfigValue,
	}
}

// ValidateTimezone checks that zone names a loadable time zone.
func ValidateTimezone(zone string) error {
	if _, err := time.LoadLocation(zone); err != nil || zone == "" {
		return &ValidationError{
			Field:   "timezone",
			Value:   zone,
			Message: "unknown time zone",
			Err:     ErrInvalidTimezone,
		}
	}
	return nil
}

// ValidateOwner validates a GitHub repository owner login.
func ValidateOwner(owner string) error {
	if owner == "" {
		return &ValidationError{
			Field:   "owner",
			Message: "cannot be empty",
			Err:     ErrEmptyOwner,
		}
	}
	if !validOwnerRegex.MatchString(owner) {
		return &ValidationError{
			Field:   "owner",
			Value:   owner,
			Message: "must be alphanumeric or dash, not start with a dash, and at most 39 characters",
			Err:     ErrInvalidOwner,
		}
	}
	return nil
}

// ValidateRepository validates a GitHub repository name.
func ValidateRepository(name string) error {
	if name == "" {
		return &ValidationError{
			Field:   "repository",
			Message: "cannot be empty",
			Err:     ErrEmptyRepository,
		}
	}
	if len(name) > MaxRepositoryNameLength {
		return &ValidationError{
			Field:   "repository",
			Value:   name,
			Message: fmt.Sprintf("exceeds maximum length of %d characters", MaxRepositoryNameLength),
			Err:     ErrRepositoryTooLong,
		}
	}
	if name == "." || name == ".." || !validRepositoryRegex.MatchString(name) {
		return &ValidationError{
			Field:   "repository",
			Value:   name,
			Message: "must contain only alphanumeric, dash, underscore, or dot",
			Err:     ErrInvalidRepository,
		}
	}
	return nil
}

// ValidateAuthor validates the reporter display name.
func ValidateAuthor(author string) error {
	if strings.TrimSpace(author) == "" {
		return &ValidationError{
			Field:   "author",
			Message: "cannot be empty",
			Err:     ErrEmptyAuthor,
		}
	}
	return nil
}

// ValidateTarget validates the owner and repository of a report run.
func ValidateTarget(owner, repository string) error {
	if err := ValidateOwner(owner); err != nil {
		return err
	}
	return ValidateRepository(repository)
}
