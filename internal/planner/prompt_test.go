package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptEmbedsRequest(t *testing.T) {
	req := parisRequest()
	prompt := BuildPrompt(req)

	assert.Contains(t, prompt, "Destination: Paris")
	assert.Contains(t, prompt, "Duration: 3 days")
	assert.Contains(t, prompt, "Number of travelers: 2")
	assert.Contains(t, prompt, "60000 INR")
	assert.Contains(t, prompt, InvalidDestinationSentinel)
	assert.Contains(t, prompt, `"budgetBreakdown"`)
	assert.Contains(t, prompt, "numbered 1 to 3")
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	req := parisRequest()
	assert.Equal(t, BuildPrompt(req), BuildPrompt(req))

	other := req
	other.Budget = 75000.5
	assert.NotEqual(t, BuildPrompt(req), BuildPrompt(other))
	assert.Contains(t, BuildPrompt(other), "75000.5 INR")
}
