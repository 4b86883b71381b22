// internal/forms/validator.go
package forms

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
)

// RuleType enumerates the supported validation rules.
type RuleType string

const (
	RuleRequired  RuleType = "required"
	RuleEmail     RuleType = "email"
	RulePhone     RuleType = "phone"
	RuleMinLength RuleType = "minLength"
	RuleMaxLength RuleType = "maxLength"
	RulePattern   RuleType = "pattern"
)

// Rule is one typed validation rule. Message overrides the default Swedish
// message when set.
type Rule struct {
	Type    RuleType
	Message string
	Length  int
	Pattern *regexp.Regexp
}

// Field describes one form field's validation configuration.
type Field struct {
	Name     string
	Label    string
	Required bool
	Rules    []Rule
}

// Phone numbers are validated against the Swedish numbering plan; the
// public forms only serve a Swedish audience.
const phoneRegion = "SE"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateValue evaluates required first (when requested), then each rule
// in order, returning the first failure message. An empty string means the
// value passed. Rules other than required pass vacuously on empty values.
func ValidateValue(value string, required bool, rules []Rule) string {
	if required {
		if msg := checkRequired(value, ""); msg != "" {
			return msg
		}
	}
	for _, rule := range rules {
		var msg string
		switch rule.Type {
		case RuleRequired:
			msg = checkRequired(value, rule.Message)
		case RuleEmail:
			msg = checkEmail(value, rule.Message)
		case RulePhone:
			msg = checkPhone(value, rule.Message)
		case RuleMinLength:
			msg = checkMinLength(value, rule.Length, rule.Message)
		case RuleMaxLength:
			msg = checkMaxLength(value, rule.Length, rule.Message)
		case RulePattern:
			msg = checkPattern(value, rule.Pattern, rule.Message)
		}
		if msg != "" {
			return msg
		}
	}
	return ""
}

// Validate runs every field's rules against the submitted values and
// returns a field-name to message mapping plus an overall verdict.
func Validate(values map[string]string, fields []Field) (map[string]string, bool) {
	errors := map[string]string{}
	for _, field := range fields {
		if msg := ValidateValue(values[field.Name], field.Required, field.Rules); msg != "" {
			errors[field.Name] = msg
		}
	}
	return errors, len(errors) == 0
}

func checkRequired(value, message string) string {
	if strings.TrimSpace(value) == "" {
		return defaultMessage(message, "Detta fält är obligatoriskt")
	}
	return ""
}

func checkEmail(value, message string) string {
	if value == "" {
		return ""
	}
	if !emailPattern.MatchString(value) {
		return defaultMessage(message, "Ange en giltig e-postadress")
	}
	return ""
}

func checkPhone(value, message string) string {
	if value == "" {
		return ""
	}
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(value)
	number, err := phonenumbers.Parse(cleaned, phoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return defaultMessage(message, "Ange ett giltigt telefonnummer")
	}
	return ""
}

func checkMinLength(value string, min int, message string) string {
	if value == "" {
		return ""
	}
	if utf8.RuneCountInString(value) < min {
		return defaultMessage(message, fmt.Sprintf("Minst %d tecken krävs", min))
	}
	return ""
}

func checkMaxLength(value string, max int, message string) string {
	if value == "" {
		return ""
	}
	if utf8.RuneCountInString(value) > max {
		return defaultMessage(message, fmt.Sprintf("Max %d tecken tillåtna", max))
	}
	return ""
}

func checkPattern(value string, pattern *regexp.Regexp, message string) string {
	if value == "" || pattern == nil {
		return ""
	}
	if !pattern.MatchString(value) {
		return defaultMessage(message, "Ogiltigt format")
	}
	return ""
}

func defaultMessage(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

// State tracks per-field errors and touch state for one form instance,
// for callers that validate interactively field by field rather than in
// one shot like the contact endpoint. Validity is recomputed live; an
// error only becomes visible once its field has been touched.
type State struct {
	errors  map[string]string
	touched map[string]bool
}

func NewState() *State {
	return &State{
		errors:  map[string]string{},
		touched: map[string]bool{},
	}
}

// Validate revalidates the whole form and replaces the error mapping.
func (s *State) Validate(values map[string]string, fields []Field) bool {
	errors, ok := Validate(values, fields)
	s.errors = errors
	return ok
}

// ValidateField revalidates a single field in place.
func (s *State) ValidateField(field Field, value string) {
	if msg := ValidateValue(value, field.Required, field.Rules); msg != "" {
		s.errors[field.Name] = msg
	} else {
		delete(s.errors, field.Name)
	}
}

// MarkTouched marks a field as touched, making its error visible.
func (s *State) MarkTouched(name string) {
	s.touched[name] = true
}

// Error returns the visible error for a field: the stored message if the
// field has been touched, otherwise empty.
func (s *State) Error(name string) string {
	if !s.touched[name] {
		return ""
	}
	return s.errors[name]
}

// Errors returns the full error mapping regardless of touch state.
func (s *State) Errors() map[string]string {
	out := make(map[string]string, len(s.errors))
	for name, msg := range s.errors {
		out[name] = msg
	}
	return out
}

// Clear resets both errors and touch state.
func (s *State) Clear() {
	s.errors = map[string]string{}
	s.touched = map[string]bool{}
}
