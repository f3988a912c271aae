package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ParseErrors flattens gin binding errors into user-facing messages.
func ParseErrors(err error) []string {
	var messages []string
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			messages = append(messages, fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag()))
		}
		return messages
	}
	if err != nil {
		messages = append(messages, err.Error())
	}
	return messages
}
