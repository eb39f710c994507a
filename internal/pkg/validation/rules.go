package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Student form messages, shown to the user in this order
const (
	MsgStudentID   = "Student ID must be exactly 4 characters"
	MsgStudentName = "Student Name should be more than 2 characters"
	MsgStudentAge  = "Student Age must be atleast 18"
)

var validate = validator.New()

// fieldMessages maps a request struct field to the single message reported
// when any of its rules fails.
var fieldMessages = map[string]string{
	"SID":  MsgStudentID,
	"Name": MsgStudentName,
	"Age":  MsgStudentAge,
}

// StudentExistsMessage is reported when an added sid is already taken
func StudentExistsMessage(sid string) string {
	return fmt.Sprintf("Student with ID %s already exists.", sid)
}

// Struct validates req against its `validate` tags and returns one message
// per failing field, in field declaration order. An empty result means valid.
func Struct(req interface{}) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if msg, ok := fieldMessages[fe.StructField()]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, formatValidationError(fe))
	}
	return messages
}

// formatValidationError creates a human-readable message for fields without a fixed one
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "len":
		return e.Field() + " must be exactly " + e.Param() + " characters"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
