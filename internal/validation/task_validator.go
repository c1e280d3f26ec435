package validation

import (
	"strings"

	"day-planner/internal/config"
	"day-planner/internal/domain"
)

// TaskForm is the raw input of the add-task form.
type TaskForm struct {
	Name      string
	Category  string
	Time      string
	Important bool
	Routine   bool
}

// ValidTask is a form that passed validation, with its values normalised.
type ValidTask struct {
	Name      string
	Category  domain.Category
	Time      domain.ClockTime
	Important bool
	Routine   bool
}

// TaskValidator provides validation for task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator honouring configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTaskName validates a task name for creation
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()
	tv.checkName(validationError, name)
	return validationError.OrNil()
}

// ValidateCategory validates a category value
func (tv *TaskValidator) ValidateCategory(category string) error {
	validationError := NewValidationError()
	tv.checkCategory(validationError, category)
	return validationError.OrNil()
}

// ValidateTime validates a time of day
func (tv *TaskValidator) ValidateTime(at string) error {
	validationError := NewValidationError()
	tv.checkTime(validationError, at)
	return validationError.OrNil()
}

// ValidateTaskForm checks every field of the form, reporting all problems at
// once, and returns the normalised task on success.
func (tv *TaskValidator) ValidateTaskForm(form TaskForm) (ValidTask, error) {
	validationError := NewValidationError()

	tv.checkName(validationError, form.Name)
	tv.checkCategory(validationError, form.Category)
	at := tv.checkTime(validationError, form.Time)

	if validationError.HasErrors() {
		return ValidTask{}, validationError
	}

	return ValidTask{
		Name:      tv.validator.TrimAndValidateString(form.Name),
		Category:  domain.Category(strings.TrimSpace(form.Category)),
		Time:      at,
		Important: form.Important,
		Routine:   form.Routine,
	}, nil
}

// ValidateTaskID validates a task id argument
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError(FieldID)
		return validationError
	}
	return nil
}

func (tv *TaskValidator) checkName(ve *ValidationError, name string) {
	trimmedName := tv.validator.TrimAndValidateString(name)

	if !tv.validator.IsNonEmptyString(trimmedName) {
		ve.AddRequiredError(FieldName)
		return
	}
	if !tv.validator.IsValidTaskNameLength(trimmedName) {
		ve.AddInvalidLengthError(FieldName, trimmedName, tv.validator.TaskNameMaxLength())
	}
	if !tv.validator.IsValidTaskName(trimmedName) {
		ve.AddInvalidCharacterError(FieldName, trimmedName)
	}
}

func (tv *TaskValidator) checkCategory(ve *ValidationError, category string) {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		ve.AddRequiredError(FieldCategory)
		return
	}
	if !tv.validator.IsKnownCategory(trimmed) {
		ve.AddInvalidValueError(FieldCategory, category, "must be one of "+categoryList())
	}
}

func (tv *TaskValidator) checkTime(ve *ValidationError, at string) domain.ClockTime {
	if !tv.validator.IsNonEmptyString(at) {
		ve.AddRequiredError(FieldTime)
		return ""
	}
	parsed, ok := tv.validator.ParseTime(at)
	if !ok {
		ve.AddInvalidFormatError(FieldTime, at, "HH:MM (24-hour)")
	}
	return parsed
}

func categoryList() string {
	categories := domain.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
