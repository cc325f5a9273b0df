package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/conneroisu/aoc2022/internal/validation"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidationError describes one invalid configuration value
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Errors []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// Fields returns the names of the invalid fields
func (vr *ValidationResult) Fields() []string {
	fields := make([]string, 0, len(vr.Errors))
	for _, err := range vr.Errors {
		fields = append(fields, err.Field)
	}
	return fields
}

// Summary joins every message on one line
func (vr *ValidationResult) Summary() string {
	parts := make([]string, 0, len(vr.Errors))
	for _, err := range vr.Errors {
		parts = append(parts, err.Message)
	}
	return strings.Join(parts, "; ")
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder
	if len(vr.Errors) == 0 {
		return ""
	}

	builder.WriteString("Validation Errors:\n")
	for _, err := range vr.Errors {
		builder.WriteString(fmt.Sprintf("  • %s: %s\n", err.Field, err.Message))
		for _, suggestion := range err.Suggestions {
			builder.WriteString(fmt.Sprintf("    - %s\n", suggestion))
		}
	}
	return builder.String()
}

type validatorSvc struct {
	validate   *validator.Validate
	translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *validatorSvc
)

// getValidator builds the validator once, with English messages and the
// mapstructure names used in configuration files.
func getValidator() *validatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("mapstructure")
			if tag == "" || tag == "-" {
				return strings.ToLower(fld.Name)
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerCustom(v, trans, "safepath", isSafePath, "{0} contains a character that is not allowed in a path")
		registerCustom(v, trans, "daypattern", isDayPattern, "{0} must contain exactly one integer verb such as %02d")

		vSvc = &validatorSvc{validate: v, translator: trans}
	})
	return vSvc
}

func registerCustom(v *validator.Validate, trans ut.Translator, tag string, fn validator.Func, text string) {
	_ = v.RegisterValidation(tag, fn)
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field())
			return msg
		},
	)
}

func isSafePath(fl validator.FieldLevel) bool {
	return validation.CheckPathChars(fl.Field().String()) == nil
}

// isDayPattern accepts patterns that format a day number into a distinct
// file name.
func isDayPattern(fl validator.FieldLevel) bool {
	pattern := fl.Field().String()
	first := fmt.Sprintf(pattern, 1)
	second := fmt.Sprintf(pattern, 2)
	if strings.Contains(first, "%!") {
		return false
	}
	return first != second && !strings.ContainsAny(first, `/\`)
}

var suggestions = map[string][]string{
	"input.dir":      {"Use a relative directory such as 'inputs'"},
	"input.pattern":  {"Use 'day%02d.txt' for inputs named day01.txt, day02.txt, ..."},
	"output.format":  {"Use one of: text, json, yaml"},
	"log.level":      {"Use one of: debug, info, warn, error"},
	"log.format":     {"Use 'console' for terminals or 'json' for log collectors"},
	"watch.debounce": {"Use a duration such as 300ms"},
}

// Validate checks every field of config.
func Validate(config *Config) *ValidationResult {
	result := &ValidationResult{}
	svc := getValidator()

	err := svc.validate.Struct(config)
	if err == nil {
		return result
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		result.Errors = append(result.Errors, ValidationError{Field: "config", Message: err.Error()})
		return result
	}

	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		result.Errors = append(result.Errors, ValidationError{
			Field:       field,
			Value:       fe.Value(),
			Message:     fe.Translate(svc.translator),
			Suggestions: suggestions[field],
		})
	}
	return result
}

// fieldPath turns "Config.input.dir" into "input.dir".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
