package models

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/go-playground/validator"
)

var (
	validate *validator.Validate

	phonePattern = regexp.MustCompile(`^\d{3,}$`)
	namePattern  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
)

func init() {
	validate = validator.New()
	if err := RegisterValidators(validate); err != nil {
		log.Panic(err)
	}
}

// RegisterValidators adds the 'phone' & 'name' rules used by the models' struct tags
func RegisterValidators(validate *validator.Validate) error {
	err := validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	if err != nil {
		return err
	}

	return validate.RegisterValidation("name", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
}

// ValidationMessages turns a validation error into one readable message per failed field
func ValidationMessages(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	messages := []string{}
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}
	return messages
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "phone":
		return fmt.Sprintf("%s should only contain numbers, and it should be at least 3 digits long", fieldErr.Field())
	case "name":
		return fmt.Sprintf("%s should only contain alphanumeric characters and spaces", fieldErr.Field())
	case "email":
		return fmt.Sprintf("%s should be a valid email address", fieldErr.Field())
	}

	return fmt.Sprintf("%s is invalid", fieldErr.Field())
}
