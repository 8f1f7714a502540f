package apperror

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns a JSON field name into a label:
// dateOfBirth -> Date Of Birth, page_size -> Page Size.
func formatFieldName(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case unicode.IsUpper(r) && i > 0:
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}

	caser := cases.Title(language.English)
	return caser.String(b.String())
}

// MapValidationError converts the first validator failure into an AppError.
// Anything else (malformed JSON, wrong types) becomes ErrInvalidInput.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		default:
			return InvalidField(field)
		}
	}

	return Wrap(err, ErrInvalidInput.Code, ErrInvalidInput.Message, ErrInvalidInput.HTTPStatus)
}
