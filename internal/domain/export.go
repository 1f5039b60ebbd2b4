package domain

import (
	"fmt"
	"strings"
	"time"
)

// ExportedRecommendation is the serialized form of a Recommendation.
type ExportedRecommendation struct {
	Category string   `json:"category"`
	Score    int      `json:"score"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`
}

// AssessmentExport is the downloadable snapshot of a scored assessment.
// The structure is informal and carries no schema version.
type AssessmentExport struct {
	QuestionnaireID string                   `json:"questionnaireId"`
	OverallScore    int                      `json:"overallScore"`
	CategoryScores  map[string]int           `json:"categoryScores"`
	SelectedItemIDs []string                 `json:"selectedItemIds"`
	CompletionRatio float64                  `json:"completionRatio"`
	Timestamp       string                   `json:"timestamp"`
	Recommendations []ExportedRecommendation `json:"recommendations"`
}

// BuildExport snapshots the scores of s at now.
func BuildExport(q *Questionnaire, s Selection, now time.Time) AssessmentExport {
	scores := make(map[string]int, len(q.Categories))
	for _, r := range Breakdown(q, s) {
		scores[r.CategoryID] = r.Score
	}

	answered, total := Completion(q, s)
	ratio := 0.0
	if total > 0 {
		ratio = float64(answered) / float64(total)
	}

	recs := Recommendations(q, s)
	exported := make([]ExportedRecommendation, len(recs))
	for i, r := range recs {
		exported[i] = ExportedRecommendation{
			Category: r.Category,
			Score:    r.Score,
			Priority: r.Priority,
			Message:  r.Message,
		}
	}

	return AssessmentExport{
		QuestionnaireID: q.ID,
		OverallScore:    OverallScore(q, s),
		CategoryScores:  scores,
		SelectedItemIDs: s.SelectedItemIDs(),
		CompletionRatio: ratio,
		Timestamp:       now.UTC().Format(time.RFC3339Nano),
		Recommendations: exported,
	}
}

// ExportFilename is the download name of an export taken at now.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("ai-readiness-assessment-%d.json", now.UnixMilli())
}

// ShareText renders the plain-text summary handed to the share sheet.
func ShareText(q *Questionnaire, s Selection) string {
	answered, total := Completion(q, s)

	var b strings.Builder
	fmt.Fprintf(&b, "Overall Score: %d%%\n", OverallScore(q, s))
	fmt.Fprintf(&b, "Completed: %d/%d items\n\n", answered, total)
	b.WriteString("Category Breakdown:")
	for _, r := range Breakdown(q, s) {
		fmt.Fprintf(&b, "\n• %s: %d%%", r.Name, r.Score)
	}
	return b.String()
}
