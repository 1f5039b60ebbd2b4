package dto

import "time"

// QuestionnaireSummaryResponse is one entry of the questionnaire list
// @Description Questionnaire summary
type QuestionnaireSummaryResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Kind          string `json:"kind"`
	CategoryCount int    `json:"category_count"`
	ItemCount     int    `json:"item_count"`
}

// OptionResponse is a selectable answer. Weights stay server side.
type OptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ItemResponse is a question (quiz) or a checklist entry
type ItemResponse struct {
	ID      string           `json:"id"`
	Prompt  string           `json:"prompt"`
	Kind    string           `json:"kind"`
	Weight  float64          `json:"weight,omitempty"`
	Options []OptionResponse `json:"options,omitempty"`
}

// CategoryResponse groups items in display order
type CategoryResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Items       []ItemResponse `json:"items"`
}

// QuestionnaireResponse is the full questionnaire
// @Description Questionnaire with categories and items
type QuestionnaireResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Kind        string             `json:"kind"`
	Threshold   int                `json:"threshold"`
	Categories  []CategoryResponse `json:"categories"`
}

// SelectOptionRequest answers a quiz question
// @Description Request body for selecting an option
type SelectOptionRequest struct {
	ItemID   string `json:"item_id"`
	OptionID string `json:"option_id"`
}

// ToggleItemRequest checks or unchecks a checklist item
// @Description Request body for toggling a checklist item
type ToggleItemRequest struct {
	ItemID  string `json:"item_id"`
	Checked bool   `json:"checked"`
}

// CategoryScoreResponse is the score of one category
type CategoryScoreResponse struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Answered   int    `json:"answered"`
	Total      int    `json:"total"`
}

// SessionResponse is the current state of an assessment session with its scores
// @Description Assessment session state
type SessionResponse struct {
	ID              string                  `json:"id"`
	QuestionnaireID string                  `json:"questionnaire_id"`
	Completed       bool                    `json:"completed"`
	Answers         map[string]string       `json:"answers"`
	Checked         []string                `json:"checked"`
	OverallScore    int                     `json:"overall_score"`
	Answered        int                     `json:"answered"`
	Total           int                     `json:"total"`
	Categories      []CategoryScoreResponse `json:"categories"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// RecommendationResponse flags a category below the threshold
type RecommendationResponse struct {
	CategoryID string `json:"category_id"`
	Category   string `json:"category"`
	Score      int    `json:"score"`
	Priority   string `json:"priority"`
	Message    string `json:"message"`
}

// RecommendationsResponse lists the recommendations of a session.
// Notice is set when the advisor narrative could not be produced.
// @Description Recommendations for an assessment session
type RecommendationsResponse struct {
	SessionID       string                   `json:"session_id"`
	OverallScore    int                      `json:"overall_score"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	Narrative       string                   `json:"narrative,omitempty"`
	Notice          string                   `json:"notice,omitempty"`
}

// ShareResponse carries the plain-text summary for the share sheet
// @Description Share text for an assessment session
type ShareResponse struct {
	Text   string `json:"text"`
	Notice string `json:"notice,omitempty"`
}
