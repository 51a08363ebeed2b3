// Package validator validates request payloads with go-playground/validator
// and renders English messages that use JSON field names.
package validator

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// ValidationError carries one message per invalid field, keyed by JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, e.Fields[name])
	}

	return strings.Join(msgs, "; ")
}

// Validator wraps a validator instance together with its English translator.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New creates a Validator with English translations registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")

	// Registration only fails on malformed built-in templates.
	_ = entranslations.RegisterDefaultTranslations(validate, translator)
	_ = validate.RegisterTranslation("required_without", translator,
		func(t ut.Translator) error {
			return t.Add("required_without", "{0} is required when {1} is not provided", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T("required_without", fe.Field(), jsonName(fe))
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)

	return &Validator{validate: validate, translator: translator}
}

// Struct validates s and returns a *ValidationError on failure.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fe.Translate(v.translator)
	}

	return &ValidationError{Fields: fields}
}

// jsonName maps a cross-field tag param, a Go field name, to its wire form.
// Payload JSON names are the lower-cased Go names.
func jsonName(fe validator.FieldError) string {
	return strings.ToLower(fe.Param())
}
