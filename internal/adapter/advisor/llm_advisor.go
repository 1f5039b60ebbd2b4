package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"consult-hub/internal/domain"
	"consult-hub/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

const maxNarrativeLen = 1200

// llmAdvisor implements domain.Advisor on top of a langchaingo model.
type llmAdvisor struct {
	model   llms.Model
	timeout time.Duration
}

// NewLLMAdvisor creates an advisor backed by model. Each call is bounded by timeout.
func NewLLMAdvisor(model llms.Model, timeout time.Duration) domain.Advisor {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &llmAdvisor{model: model, timeout: timeout}
}

// Narrate implements domain.Advisor
func (a *llmAdvisor) Narrate(ctx context.Context, input domain.AdvisorInput) (string, error) {
	l := logger.Get()

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := buildPrompt(input)
	raw, err := llms.GenerateFromSinglePrompt(ctx, a.model, prompt, llms.WithTemperature(0.3))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Warn("Advisor request timed out", zap.Duration("timeout", a.timeout))
			return "", domain.NewAdvisorUnavailableError(fmt.Errorf("advisor timed out: %w", err))
		}
		l.Warn("Advisor request failed", zap.Error(err))
		return "", domain.NewAdvisorUnavailableError(err)
	}

	narrative := cleanResponse(raw)
	if narrative == "" {
		return "", domain.NewAdvisorUnavailableError(errors.New("advisor returned an empty narrative"))
	}
	l.Debug("Advisor narrative generated", zap.Int("length", len(narrative)))
	return narrative, nil
}

func buildPrompt(input domain.AdvisorInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an AI adoption consultant. A client completed the %q assessment.\n", input.QuestionnaireTitle)
	fmt.Fprintf(&b, "Overall score: %d%%\n\nCategory scores:\n", input.OverallScore)
	for _, r := range input.Breakdown {
		fmt.Fprintf(&b, "- %s: %d%% (%d/%d answered)\n", r.Name, r.Score, r.Answered, r.Total)
	}
	if len(input.Recommendations) > 0 {
		b.WriteString("\nWeak areas:\n")
		for _, r := range input.Recommendations {
			fmt.Fprintf(&b, "- [%s] %s: %s\n", r.Priority, r.Category, r.Message)
		}
	}
	b.WriteString("\nWrite 3 to 5 plain sentences advising the client on next steps. ")
	b.WriteString("Address the high priority areas first. Do not use markdown or lists.")
	return b.String()
}

// cleanResponse drops reasoning blocks some local models emit and caps the length.
func cleanResponse(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		start := strings.Index(s, "<think>")
		if start == -1 {
			break
		}
		end := strings.Index(s, "</think>")
		if end == -1 || end < start {
			s = s[:start]
			break
		}
		s = s[:start] + s[end+len("</think>"):]
	}
	s = strings.TrimSpace(s)
	if len(s) > maxNarrativeLen {
		s = strings.TrimSpace(s[:maxNarrativeLen])
	}
	return s
}
