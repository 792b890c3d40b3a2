package validator

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	once     sync.Once
	validate *validator.Validate
	strict   *bluemonday.Policy

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		strict = bluemonday.StrictPolicy()
		_ = validate.RegisterValidation("slug", validateSlug)
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks the struct tags of s.
func Validate(s interface{}) error {
	return instance().Struct(s)
}

// SanitizeString strips all markup from visitor-supplied text and returns
// plain text. Entities the policy escapes are decoded again; templates escape
// on output.
func SanitizeString(s string) string {
	instance()
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// FieldErrors maps validation failures to form field names with a readable
// message. Errors that are not validation errors yield nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

// Summary joins field errors into one alert line.
func Summary(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s %s", strings.ReplaceAll(fe.Field(), "_", " "), message(fe)))
	}
	return strings.Join(parts, "; ")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a full URL"
	case "slug":
		return "may only contain lowercase letters, digits and single dashes"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "datetime":
		return "must be a date like 2024-01-31"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return "is invalid"
	}
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}
