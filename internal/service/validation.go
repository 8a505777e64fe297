package service

import (
	"errors"
	"math"
	"reflect"
	"strings"

	apperrors "yelpcamp/internal/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator checks form payloads and turns violations into a single
// ValidationError listing every offending field
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewValidator builds a validator whose messages name fields by their form
// path, e.g. "campground.title"
func NewValidator() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldPath)

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("number", isNumber); err != nil {
		return nil, err
	}
	for tag, text := range messages {
		if err := registerMessage(validate, trans, tag, text); err != nil {
			return nil, err
		}
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// messages override the library defaults for the rules used by the forms
var messages = map[string]string{
	"required": `"{0}" is required`,
	"min":      `"{0}" must be greater than or equal to {1}`,
	"max":      `"{0}" must be less than or equal to {1}`,
	"number":   `"{0}" must be a number`,
}

// isNumber rejects form numbers that failed to parse while binding
func isNumber(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case Price:
		return !math.IsNaN(float64(v))
	case Rating:
		return v != invalidRating
	default:
		return true
	}
}

func registerMessage(validate *validator.Validate, trans ut.Translator, tag, text string) error {
	return validate.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, err := ut.T(tag, fe.Field(), fe.Param())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

// fieldPath maps `form:"campground[title]"` to "campground.title"
func fieldPath(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	name = strings.ReplaceAll(name, "[", ".")
	return strings.ReplaceAll(name, "]", "")
}

// Struct validates v. Every violation is reported, joined by commas.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError("", err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Translate(v.trans))
	}
	return apperrors.NewValidationError("", strings.Join(msgs, ","))
}
