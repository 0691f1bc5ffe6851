package observability

import (
	"go.opentelemetry.io/otel/attribute"

	"github.com/janhq/furniture-api/pkg/telemetry"
)

// Standard attribute keys
const (
	AttrRequestID        = "request.id"
	AttrModel            = "llm.model"
	AttrOperation        = "llm.operation"
	AttrTokensPrompt     = "llm.tokens.prompt"
	AttrTokensCompletion = "llm.tokens.completion"
	AttrConversationStep = "conversation.step"
	AttrSelectionSource  = "agent.selection.source"
	AttrHousePrompt      = "agent.house_prompt"
)

// WithCallAttrs returns the attributes shared by every provider call span.
func WithCallAttrs(operation, model string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrOperation, operation),
		attribute.String(AttrModel, model),
	}
}

// WithPromptAttr returns the house prompt as an attribute, or nothing when the
// sanitizer redacts all user content.
func WithPromptAttr(prompt string, sanitizer *telemetry.Sanitizer) []attribute.KeyValue {
	if sanitizer == nil || sanitizer.Level() == telemetry.PIILevelNone {
		return nil
	}
	return []attribute.KeyValue{attribute.String(AttrHousePrompt, sanitizer.Preview(prompt))}
}
