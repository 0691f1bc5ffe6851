// Package requests contains HTTP request DTOs for the furniture API.
package requests

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MessageInvalidBody is returned for bodies that are not decodable JSON of the expected shape.
const MessageInvalidBody = "invalid request body"

// ConversationRequest is the body of POST /api/conversation.
// user_message and current_step must be present; "" and 0 are valid values.
type ConversationRequest struct {
	UserMessage         *string          `json:"user_message" validate:"required" example:"I want to refresh my living room"`
	ConversationHistory []map[string]any `json:"conversation_history"`
	CurrentStep         *int             `json:"current_step" validate:"required" example:"1"`
	ConversationData    map[string]any   `json:"conversation_data"`
}

// Message returns user_message, or "" when absent.
func (r ConversationRequest) Message() string {
	if r.UserMessage == nil {
		return ""
	}
	return *r.UserMessage
}

// Step returns current_step, or 0 when absent.
func (r ConversationRequest) Step() int {
	if r.CurrentStep == nil {
		return 0
	}
	return *r.CurrentStep
}

// SelectedFurnitureRequest is the body of POST /api/selected-furniture.
type SelectedFurnitureRequest struct {
	SelectedIndices []int `json:"selected_indices" validate:"required"`
}

// HousePromptRequest is the body of POST /api/run-agent. An empty prompt is valid.
type HousePromptRequest struct {
	HousePrompt *string `json:"house_prompt" validate:"required" example:"A bright two-bedroom apartment with a mid-century feel"`
}

// Prompt returns house_prompt, or "" when absent.
func (r HousePromptRequest) Prompt() string {
	if r.HousePrompt == nil {
		return ""
	}
	return *r.HousePrompt
}

// NewValidator returns a validator that reports json field names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Describe turns a validation failure into a short client-facing message.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MessageInvalidBody
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
