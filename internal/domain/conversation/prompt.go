package conversation

import (
	"fmt"
	"strings"
)

// TotalSteps is the number of steps in the design flow.
const TotalSteps = 8

// SentinelPrefix marks a turn that opens the conversation.
const SentinelPrefix = "SYSTEM_START:"

const systemPrompt = `You are a helpful interior designer. Be conversational and friendly. 

CRITICAL RULES:
1. Always complete your full response before stopping
2. Never cut off mid-sentence, mid-word, or mid-list
3. Provide complete lists of options (e.g., "modern, cozy, rustic, minimalist, traditional")
4. Use proper markdown formatting with complete **bold** tags
5. Give detailed, engaging responses that feel natural and conversational

Respond naturally to user input without rushing them to the next step.`

const (
	introInstruction   = "Introduce yourself as an interior designer and ask about their furniture project."
	closingInstruction = " Respond naturally and conversationally. Let the user guide the pace."
)

// stepGuidance holds per-step instructions. Steps without an entry get none.
var stepGuidance = map[int]string{
	1: "You're learning about their project. Ask follow-up questions about their space and goals naturally.",
	2: "You're gathering space details. Ask about size, layout, current furniture, or any specific needs they mentioned.",
	3: "You're exploring their style preferences. Discuss different aesthetics and what appeals to them.",
	4: "You're understanding their budget and requirements. Explore their financial considerations and special needs.",
}

var stepNames = []string{
	"Welcome",
	"Space Details",
	"Style Preferences",
	"Budget & Requirements",
	"Analysis",
	"Furniture Selection",
	"Video Generation",
	"Complete",
}

// SystemPrompt returns the fixed designer persona instruction.
func SystemPrompt() string {
	return systemPrompt
}

// StepGuidance returns the instruction for step, or "" when there is none.
func StepGuidance(step int) string {
	return stepGuidance[step]
}

// StepName returns the display name of step, clamped to the known range.
func StepName(step int) string {
	idx := step - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(stepNames) {
		idx = len(stepNames) - 1
	}
	return stepNames[idx]
}

// BuildContext renders the user message sent to the model for turn.
func BuildContext(turn Turn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Step %d of %d. ", turn.CurrentStep, TotalSteps)

	if strings.HasPrefix(turn.UserMessage, SentinelPrefix) {
		b.WriteString(introInstruction)
		return b.String()
	}

	fmt.Fprintf(&b, "User said: '%s'. ", turn.UserMessage)
	b.WriteString(StepGuidance(turn.CurrentStep))
	b.WriteString(closingInstruction)
	return b.String()
}
