package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"consult-hub/internal/domain"
	"consult-hub/internal/dto"
	"consult-hub/internal/logger"
	"consult-hub/internal/util"

	"go.uber.org/zap"
)

const (
	// NoticeAdvisorUnavailable is shown when the narrative could not be produced.
	NoticeAdvisorUnavailable = "Personalized guidance is unavailable right now. Showing standard recommendations."
	// NoticeShareUnavailable is shown when the share text could not be built.
	NoticeShareUnavailable = "Sharing is unavailable right now. Please try again later."
)

// AssessmentService defines the questionnaire and session operations.
type AssessmentService interface {
	ListQuestionnaires(ctx context.Context) []dto.QuestionnaireSummaryResponse
	GetQuestionnaire(ctx context.Context, id string) (*dto.QuestionnaireResponse, error)
	StartSession(ctx context.Context, questionnaireID string) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	CategoryScore(ctx context.Context, sessionID, categoryID string) (*dto.CategoryScoreResponse, error)
	SelectOption(ctx context.Context, sessionID string, req dto.SelectOptionRequest) (*dto.SessionResponse, error)
	ToggleItem(ctx context.Context, sessionID string, req dto.ToggleItemRequest) (*dto.SessionResponse, error)
	Complete(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	Reset(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	Recommendations(ctx context.Context, sessionID string) (*dto.RecommendationsResponse, error)
	Export(ctx context.Context, sessionID string) (*domain.AssessmentExport, string, error)
	Share(ctx context.Context, sessionID string) (*dto.ShareResponse, error)
}

type assessmentService struct {
	content  domain.ContentStore
	sessions *stateStore[domain.AssessmentSession]
	advisor  domain.Advisor
	now      func() time.Time
}

// NewAssessmentService creates the assessment service. advisor may be nil,
// in which case recommendations carry no narrative.
func NewAssessmentService(content domain.ContentStore, cache domain.Cache, sessionTTL time.Duration, advisor domain.Advisor) AssessmentService {
	return &assessmentService{
		content:  content,
		sessions: newSessionStore(cache, sessionTTL),
		advisor:  advisor,
		now:      time.Now,
	}
}

func (s *assessmentService) ListQuestionnaires(ctx context.Context) []dto.QuestionnaireSummaryResponse {
	qs := s.content.Questionnaires()
	out := make([]dto.QuestionnaireSummaryResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, dto.QuestionnaireSummaryResponse{
			ID:            q.ID,
			Title:         q.Title,
			Description:   q.Description,
			Kind:          string(q.Kind),
			CategoryCount: len(q.Categories),
			ItemCount:     q.ItemCount(),
		})
	}
	return out
}

func (s *assessmentService) GetQuestionnaire(ctx context.Context, id string) (*dto.QuestionnaireResponse, error) {
	q, ok := s.content.Questionnaire(id)
	if !ok {
		return nil, domain.NewQuestionnaireNotFoundError(id)
	}
	return toQuestionnaireResponse(q), nil
}

// StartSession opens a session with an empty selection.
func (s *assessmentService) StartSession(ctx context.Context, questionnaireID string) (*dto.SessionResponse, error) {
	q, ok := s.content.Questionnaire(questionnaireID)
	if !ok {
		return nil, domain.NewQuestionnaireNotFoundError(questionnaireID)
	}

	now := s.now()
	session := &domain.AssessmentSession{
		ID:              util.NewULIDAt(now),
		QuestionnaireID: q.ID,
		Selection:       domain.NewSelection(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.sessions.Put(ctx, session.ID, session); err != nil {
		return nil, err
	}

	logger.Get().Info("Assessment session started",
		zap.String("session_id", session.ID),
		zap.String("questionnaire_id", q.ID))
	return toSessionResponse(q, session), nil
}

func (s *assessmentService) GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	q, session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(q, session), nil
}

// CategoryScore scores a single category of the session.
func (s *assessmentService) CategoryScore(ctx context.Context, sessionID, categoryID string) (*dto.CategoryScoreResponse, error) {
	q, session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	r, err := domain.ScoreCategory(q, session.Selection, categoryID)
	if err != nil {
		return nil, err
	}
	resp := toCategoryScoreResponse(r)
	return &resp, nil
}

func (s *assessmentService) SelectOption(ctx context.Context, sessionID string, req dto.SelectOptionRequest) (*dto.SessionResponse, error) {
	return s.apply(ctx, sessionID, domain.SelectOption{ItemID: req.ItemID, OptionID: req.OptionID})
}

func (s *assessmentService) ToggleItem(ctx context.Context, sessionID string, req dto.ToggleItemRequest) (*dto.SessionResponse, error) {
	return s.apply(ctx, sessionID, domain.ToggleItem{ItemID: req.ItemID, Checked: req.Checked})
}

func (s *assessmentService) Complete(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return s.apply(ctx, sessionID, domain.CompleteAssessment{})
}

func (s *assessmentService) Reset(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return s.apply(ctx, sessionID, domain.ResetSelection{})
}

// Recommendations lists the weak categories. When an advisor is configured it
// adds a narrative; an advisor failure only sets Notice.
func (s *assessmentService) Recommendations(ctx context.Context, sessionID string) (*dto.RecommendationsResponse, error) {
	q, session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	recs := domain.Recommendations(q, session.Selection)
	resp := &dto.RecommendationsResponse{
		SessionID:       session.ID,
		OverallScore:    domain.OverallScore(q, session.Selection),
		Recommendations: make([]dto.RecommendationResponse, 0, len(recs)),
	}
	for _, r := range recs {
		resp.Recommendations = append(resp.Recommendations, dto.RecommendationResponse{
			CategoryID: r.CategoryID,
			Category:   r.Category,
			Score:      r.Score,
			Priority:   string(r.Priority),
			Message:    r.Message,
		})
	}

	// Nothing answered yet: no narrative to write.
	if s.advisor == nil || session.Selection.IsEmpty() {
		return resp, nil
	}
	narrative, err := s.advisor.Narrate(ctx, domain.AdvisorInput{
		QuestionnaireTitle: q.Title,
		OverallScore:       resp.OverallScore,
		Breakdown:          domain.Breakdown(q, session.Selection),
		Recommendations:    recs,
	})
	if err != nil {
		logger.Get().Warn("Advisor narrative failed, falling back to static recommendations",
			zap.String("session_id", session.ID), zap.Error(err))
		resp.Notice = NoticeAdvisorUnavailable
		return resp, nil
	}
	resp.Narrative = narrative
	return resp, nil
}

// Export snapshots the session and returns the download filename with it.
func (s *assessmentService) Export(ctx context.Context, sessionID string) (*domain.AssessmentExport, string, error) {
	q, session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	now := s.now()
	export := domain.BuildExport(q, session.Selection, now)
	return &export, domain.ExportFilename(now), nil
}

// Share renders the share text. A cache outage is reported through Notice
// rather than as an error so the results page keeps working.
func (s *assessmentService) Share(ctx context.Context, sessionID string) (*dto.ShareResponse, error) {
	q, session, err := s.load(ctx, sessionID)
	if err != nil {
		if domain.IsCode(err, domain.CodeCacheUnavailable) {
			logger.Get().Warn("Share text unavailable", zap.String("session_id", sessionID), zap.Error(err))
			return &dto.ShareResponse{Notice: NoticeShareUnavailable}, nil
		}
		return nil, err
	}
	return &dto.ShareResponse{Text: domain.ShareText(q, session.Selection)}, nil
}

func (s *assessmentService) load(ctx context.Context, sessionID string) (*domain.Questionnaire, *domain.AssessmentSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errStateNotFound) {
			return nil, nil, domain.NewSessionNotFoundError(sessionID)
		}
		return nil, nil, err
	}
	q, ok := s.content.Questionnaire(session.QuestionnaireID)
	if !ok {
		// The catalog changed under a live session.
		return nil, nil, domain.NewQuestionnaireNotFoundError(session.QuestionnaireID)
	}
	return q, session, nil
}

func (s *assessmentService) apply(ctx context.Context, sessionID string, action domain.Action) (*dto.SessionResponse, error) {
	q, session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := domain.Apply(q, session.Selection, action)
	if err != nil {
		return nil, err
	}
	session.Selection = next
	session.UpdatedAt = s.now()

	if err := s.sessions.Put(ctx, session.ID, session); err != nil {
		return nil, err
	}
	return toSessionResponse(q, session), nil
}

func toQuestionnaireResponse(q *domain.Questionnaire) *dto.QuestionnaireResponse {
	resp := &dto.QuestionnaireResponse{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Kind:        string(q.Kind),
		Threshold:   q.Threshold,
		Categories:  make([]dto.CategoryResponse, 0, len(q.Categories)),
	}
	for _, c := range q.Categories {
		cat := dto.CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Items:       make([]dto.ItemResponse, 0, len(c.Items)),
		}
		for _, it := range c.Items {
			item := dto.ItemResponse{ID: it.ID, Prompt: it.Prompt, Kind: string(it.Body.Kind())}
			switch body := it.Body.(type) {
			case domain.SingleChoice:
				for _, o := range body.Options {
					item.Options = append(item.Options, dto.OptionResponse{ID: o.ID, Label: o.Label})
				}
			case domain.Toggle:
				item.Weight = body.Weight
			}
			cat.Items = append(cat.Items, item)
		}
		resp.Categories = append(resp.Categories, cat)
	}
	return resp
}

func toSessionResponse(q *domain.Questionnaire, session *domain.AssessmentSession) *dto.SessionResponse {
	sel := session.Selection
	answered, total := domain.Completion(q, sel)

	answers := make(map[string]string, len(sel.Answers))
	for k, v := range sel.Answers {
		answers[k] = v
	}
	checked := make([]string, 0, len(sel.Checked))
	for id, on := range sel.Checked {
		if on {
			checked = append(checked, id)
		}
	}
	sort.Strings(checked)

	breakdown := domain.Breakdown(q, sel)
	categories := make([]dto.CategoryScoreResponse, 0, len(breakdown))
	for _, r := range breakdown {
		categories = append(categories, toCategoryScoreResponse(r))
	}

	return &dto.SessionResponse{
		ID:              session.ID,
		QuestionnaireID: session.QuestionnaireID,
		Completed:       sel.Completed,
		Answers:         answers,
		Checked:         checked,
		OverallScore:    domain.OverallScore(q, sel),
		Answered:        answered,
		Total:           total,
		Categories:      categories,
		UpdatedAt:       session.UpdatedAt,
	}
}

func toCategoryScoreResponse(r domain.CategoryResult) dto.CategoryScoreResponse {
	return dto.CategoryScoreResponse{
		CategoryID: r.CategoryID,
		Name:       r.Name,
		Score:      r.Score,
		Answered:   r.Answered,
		Total:      r.Total,
	}
}
