package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"day-planner/internal/config"
	"day-planner/internal/domain"
)

// defaultTaskNameMaxLength applies when no configuration is supplied
const defaultTaskNameMaxLength = 200

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTaskNameLength checks the trimmed name against the configured
// maximum, counted in characters rather than bytes.
func (v *Validator) IsValidTaskNameLength(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) <= v.TaskNameMaxLength()
}

// IsValidTaskName rejects names carrying control characters such as
// newlines or tabs.
func (v *Validator) IsValidTaskName(name string) bool {
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsKnownCategory checks that c is one of the planner's categories
func (v *Validator) IsKnownCategory(c string) bool {
	return domain.Category(c).IsKnown()
}

// ParseTime normalises a time of day to zero-padded "HH:MM"
func (v *Validator) ParseTime(s string) (domain.ClockTime, bool) {
	t, err := domain.ParseClockTime(s)
	return t, err == nil
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// TaskNameMaxLength returns configured maximum task name length or default
func (v *Validator) TaskNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMaxLength
	}
	return defaultTaskNameMaxLength
}
