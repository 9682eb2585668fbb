package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/streama/internal/logger"
)

// Password policy enforced by the strongpassword tag.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// RequestValidator validates tagged request structs.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a validator that reports JSON field names and
// knows the strongpassword rule.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// registration only fails for an empty tag or a nil function
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj against its tags. When fields are given only those
// struct fields (Go names, dotted for nesting) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		logger.FromContext(ctx).Err(err).Str("func", "RequestValidator.Validate").Msg("value cannot be validated")
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe),
			Message: describe(fe),
		})
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace, so
// "UserPatch.preferences.page" becomes "preferences.page".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "strongpassword":
		return fmt.Sprintf("must be %d-%d characters with a lowercase letter, an uppercase letter, a digit and a symbol", MinPasswordLength, MaxPasswordLength)
	case "e164":
		return "must be a phone number in E.164 format"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "bcp47_language_tag":
		return "must be a BCP 47 language tag"
	case "iso3166_1_alpha2":
		return "must be an ISO 3166-1 alpha-2 country code"
	default:
		return "is invalid"
	}
}

// IsStrongPassword reports whether s satisfies the password policy.
func IsStrongPassword(s string) bool {
	if n := len([]rune(s)); n < MinPasswordLength || n > MaxPasswordLength {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
