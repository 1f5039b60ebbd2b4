package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"consult-hub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel is a canned llms.Model.
type fakeModel struct {
	response   string
	err        error
	delay      time.Duration
	lastPrompt string
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, m := range messages {
		for _, p := range m.Parts {
			if tp, ok := p.(llms.TextContent); ok {
				f.lastPrompt = tp.Text
			}
		}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.response}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func sampleInput() domain.AdvisorInput {
	return domain.AdvisorInput{
		QuestionnaireTitle: "AI Readiness Checklist",
		OverallScore:       42,
		Breakdown: []domain.CategoryResult{
			{CategoryID: "data", Name: "Data Readiness", Score: 30, Answered: 1, Total: 4},
			{CategoryID: "people", Name: "People & Skills", Score: 75, Answered: 3, Total: 4},
		},
		Recommendations: []domain.Recommendation{
			{CategoryID: "data", Category: "Data Readiness", Score: 30, Priority: domain.PriorityHigh, Message: "Build a data inventory."},
		},
	}
}

func TestLLMAdvisor_Narrate(t *testing.T) {
	model := &fakeModel{response: "<think>scratch</think>\n  Start with a data inventory. Then train your team.  "}
	adv := NewLLMAdvisor(model, time.Second)

	narrative, err := adv.Narrate(context.Background(), sampleInput())

	require.NoError(t, err)
	assert.Equal(t, "Start with a data inventory. Then train your team.", narrative)
	assert.Contains(t, model.lastPrompt, "AI Readiness Checklist")
	assert.Contains(t, model.lastPrompt, "Data Readiness: 30% (1/4 answered)")
	assert.Contains(t, model.lastPrompt, "[High] Data Readiness: Build a data inventory.")
}

func TestLLMAdvisor_Errors(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
	}{
		{name: "model error", model: &fakeModel{err: errors.New("connection refused")}},
		{name: "empty narrative", model: &fakeModel{response: "<think>only thoughts</think>"}},
		{name: "timeout", model: &fakeModel{response: "late", delay: 200 * time.Millisecond}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv := NewLLMAdvisor(tt.model, 20*time.Millisecond)
			_, err := adv.Narrate(context.Background(), sampleInput())
			require.Error(t, err)
			assert.True(t, domain.IsCode(err, domain.CodeAdvisorUnavailable))
		})
	}
}

func TestCleanResponse(t *testing.T) {
	assert.Equal(t, "", cleanResponse("<think>unterminated"))
	assert.Equal(t, "a b", cleanResponse("a <think>x</think>b"))
	assert.Len(t, cleanResponse(strings.Repeat("x", maxNarrativeLen+50)), maxNarrativeLen)
}
