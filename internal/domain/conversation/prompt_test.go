package conversation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildContextStepOne(t *testing.T) {
	got := BuildContext(Turn{UserMessage: "I have a small loft", CurrentStep: 1})

	assert.True(t, strings.HasPrefix(got, "Step 1 of 8. "))
	assert.Contains(t, got, "User said: 'I have a small loft'. ")
	assert.Contains(t, got, stepGuidance[1])
	assert.True(t, strings.HasSuffix(got, " Respond naturally and conversationally. Let the user guide the pace."))
}

func TestBuildContextSentinel(t *testing.T) {
	got := BuildContext(Turn{UserMessage: "SYSTEM_START: begin", CurrentStep: 1})

	assert.Equal(t, "Step 1 of 8. Introduce yourself as an interior designer and ask about their furniture project.", got)
	assert.NotContains(t, got, "User said")
}

func TestBuildContextStepWithoutGuidance(t *testing.T) {
	got := BuildContext(Turn{UserMessage: "ok", CurrentStep: 6})

	assert.Equal(t, "Step 6 of 8. User said: 'ok'.  Respond naturally and conversationally. Let the user guide the pace.", got)
}

func TestStepGuidanceTable(t *testing.T) {
	for step := 1; step <= 4; step++ {
		assert.NotEmpty(t, StepGuidance(step), "step %d", step)
	}
	for _, step := range []int{0, 5, 8, 42} {
		assert.Empty(t, StepGuidance(step), "step %d", step)
	}
}

func TestStepNameClamps(t *testing.T) {
	assert.Equal(t, "Welcome", StepName(-3))
	assert.Equal(t, "Welcome", StepName(1))
	assert.Equal(t, "Budget & Requirements", StepName(4))
	assert.Equal(t, "Complete", StepName(8))
	assert.Equal(t, "Complete", StepName(99))
}
