package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"consult-hub/internal/cache"
	"consult-hub/internal/domain"
	"consult-hub/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestAssessmentService(t *testing.T, c domain.Cache, advisor domain.Advisor) *assessmentService {
	t.Helper()
	svc := NewAssessmentService(testContent(t), c, time.Hour, advisor).(*assessmentService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestAssessmentService_ListAndGetQuestionnaire(t *testing.T) {
	svc := newTestAssessmentService(t, newMemoryCache(), nil)
	ctx := context.Background()

	list := svc.ListQuestionnaires(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "ai-ethics", list[0].ID)
	assert.Equal(t, "quiz", list[0].Kind)
	assert.Equal(t, 3, list[0].ItemCount)
	assert.Equal(t, 2, list[1].CategoryCount)

	q, err := svc.GetQuestionnaire(ctx, "ai-readiness")
	require.NoError(t, err)
	assert.Equal(t, 60, q.Threshold)
	require.Len(t, q.Categories, 2)
	assert.Equal(t, "toggle", q.Categories[0].Items[0].Kind)
	assert.Equal(t, 3.0, q.Categories[0].Items[0].Weight)
	assert.Empty(t, q.Categories[0].Items[0].Options)

	quiz, err := svc.GetQuestionnaire(ctx, "ai-ethics")
	require.NoError(t, err)
	assert.Len(t, quiz.Categories[0].Items[0].Options, 3)

	_, err = svc.GetQuestionnaire(ctx, "missing")
	assert.True(t, domain.IsCode(err, domain.CodeQuestionnaireNotFound))
}

func TestAssessmentService_QuizFlow(t *testing.T) {
	svc := newTestAssessmentService(t, newMemoryCache(), nil)
	ctx := context.Background()

	started, err := svc.StartSession(ctx, "ai-ethics")
	require.NoError(t, err)
	assert.Len(t, started.ID, 26)
	assert.Equal(t, 0, started.OverallScore)
	assert.Equal(t, 3, started.Total)
	assert.False(t, started.Completed)

	resp, err := svc.SelectOption(ctx, started.ID, dto.SelectOptionRequest{ItemID: "f1", OptionID: "c"})
	require.NoError(t, err)
	assert.Equal(t, 33, resp.OverallScore) // 10 of 30
	assert.Equal(t, 50, resp.Categories[0].Score)
	assert.Equal(t, map[string]string{"f1": "c"}, resp.Answers)
	assert.Equal(t, 1, resp.Answered)

	// Answer replaced, not accumulated.
	resp, err = svc.SelectOption(ctx, started.ID, dto.SelectOptionRequest{ItemID: "f1", OptionID: "b"})
	require.NoError(t, err)
	assert.Equal(t, 17, resp.OverallScore)

	resp, err = svc.Complete(ctx, started.ID)
	require.NoError(t, err)
	assert.True(t, resp.Completed)

	got, err := svc.GetSession(ctx, started.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, 17, got.OverallScore)

	resp, err = svc.Reset(ctx, started.ID)
	require.NoError(t, err)
	assert.False(t, resp.Completed)
	assert.Equal(t, 0, resp.OverallScore)
	assert.Empty(t, resp.Answers)

	again, err := svc.Reset(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.OverallScore, again.OverallScore)
	assert.Equal(t, resp.Completed, again.Completed)
}

func TestAssessmentService_ChecklistFlow(t *testing.T) {
	svc := newTestAssessmentService(t, newMemoryCache(), nil)
	ctx := context.Background()

	started, err := svc.StartSession(ctx, "ai-readiness")
	require.NoError(t, err)

	resp, err := svc.ToggleItem(ctx, started.ID, dto.ToggleItemRequest{ItemID: "d1", Checked: true})
	require.NoError(t, err)
	assert.Equal(t, 50, resp.OverallScore) // 3 of 6
	assert.Equal(t, []string{"d1"}, resp.Checked)

	resp, err = svc.ToggleItem(ctx, started.ID, dto.ToggleItemRequest{ItemID: "pe1", Checked: true})
	require.NoError(t, err)
	assert.Equal(t, 83, resp.OverallScore)
	assert.Equal(t, []string{"d1", "pe1"}, resp.Checked)

	resp, err = svc.ToggleItem(ctx, started.ID, dto.ToggleItemRequest{ItemID: "d1", Checked: false})
	require.NoError(t, err)
	assert.Equal(t, 33, resp.OverallScore)
}

func TestAssessmentService_RejectsUnknownIDs(t *testing.T) {
	svc := newTestAssessmentService(t, newMemoryCache(), nil)
	ctx := context.Background()

	quiz, err := svc.StartSession(ctx, "ai-ethics")
	require.NoError(t, err)
	checklist, err := svc.StartSession(ctx, "ai-readiness")
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
		code domain.ErrorCode
	}{
		{"unknown questionnaire", func() error { _, err := svc.StartSession(ctx, "nope"); return err }, domain.CodeQuestionnaireNotFound},
		{"unknown item", func() error {
			_, err := svc.SelectOption(ctx, quiz.ID, dto.SelectOptionRequest{ItemID: "zz", OptionID: "a"})
			return err
		}, domain.CodeUnknownItem},
		{"unknown option", func() error {
			_, err := svc.SelectOption(ctx, quiz.ID, dto.SelectOptionRequest{ItemID: "f1", OptionID: "zz"})
			return err
		}, domain.CodeUnknownOption},
		{"toggle on quiz item", func() error {
			_, err := svc.ToggleItem(ctx, quiz.ID, dto.ToggleItemRequest{ItemID: "f1", Checked: true})
			return err
		}, domain.CodeActionMismatch},
		{"select on checklist item", func() error {
			_, err := svc.SelectOption(ctx, checklist.ID, dto.SelectOptionRequest{ItemID: "d1", OptionID: "a"})
			return err
		}, domain.CodeActionMismatch},
		{"unknown session", func() error { _, err := svc.GetSession(ctx, "01HZX0000000000000000000ZZ"); return err }, domain.CodeSessionNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, domain.IsCode(err, tt.code), "got %v", err)
		})
	}

	// A rejected action leaves the stored session untouched.
	got, err := svc.GetSession(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Answers)
}

func TestAssessmentService_CategoryScore(t *testing.T) {
	ctx := context.Background()
	svc := newTestAssessmentService(t, newMemoryCache(), nil)
	s, err := svc.StartSession(ctx, "ai-readiness")
	require.NoError(t, err)
	_, err = svc.ToggleItem(ctx, s.ID, dto.ToggleItemRequest{ItemID: "d2", Checked: true})
	require.NoError(t, err)

	resp, err := svc.CategoryScore(ctx, s.ID, "data")
	require.NoError(t, err)
	assert.Equal(t, dto.CategoryScoreResponse{CategoryID: "data", Name: "Data Readiness", Score: 25, Answered: 1, Total: 2}, *resp)

	_, err = svc.CategoryScore(ctx, s.ID, "missing")
	assert.True(t, domain.IsCode(err, domain.CodeUnknownCategory))

	_, err = svc.CategoryScore(ctx, "01HZX0000000000000000000AA", "data")
	assert.True(t, domain.IsCode(err, domain.CodeSessionNotFound))
}

func TestAssessmentService_Recommendations(t *testing.T) {
	ctx := context.Background()

	t.Run("WithoutAdvisor", func(t *testing.T) {
		svc := newTestAssessmentService(t, newMemoryCache(), nil)
		s, err := svc.StartSession(ctx, "ai-ethics")
		require.NoError(t, err)
		_, err = svc.SelectOption(ctx, s.ID, dto.SelectOptionRequest{ItemID: "f1", OptionID: "c"})
		require.NoError(t, err)

		resp, err := svc.Recommendations(ctx, s.ID)
		require.NoError(t, err)
		require.Len(t, resp.Recommendations, 2)
		assert.Equal(t, "fairness", resp.Recommendations[0].CategoryID)
		assert.Equal(t, "Medium", resp.Recommendations[0].Priority)
		assert.Equal(t, "privacy", resp.Recommendations[1].CategoryID)
		assert.Equal(t, "High", resp.Recommendations[1].Priority)
		assert.Equal(t, "Run privacy impact assessments.", resp.Recommendations[1].Message)
		assert.Empty(t, resp.Narrative)
		assert.Empty(t, resp.Notice)
	})

	t.Run("AdvisorNarrative", func(t *testing.T) {
		advisor := new(MockAdvisor)
		svc := newTestAssessmentService(t, newMemoryCache(), advisor)
		s, err := svc.StartSession(ctx, "ai-readiness")
		require.NoError(t, err)
		_, err = svc.ToggleItem(ctx, s.ID, dto.ToggleItemRequest{ItemID: "d2", Checked: true})
		require.NoError(t, err)

		advisor.On("Narrate", mock.Anything, mock.MatchedBy(func(in domain.AdvisorInput) bool {
			return in.QuestionnaireTitle == "AI Readiness Checklist" && in.OverallScore == 17 && len(in.Recommendations) == 2
		})).Return("Start with your data.", nil).Once()

		resp, err := svc.Recommendations(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, "Start with your data.", resp.Narrative)
		assert.Empty(t, resp.Notice)
		advisor.AssertExpectations(t)
	})

	t.Run("AdvisorFailureSetsNotice", func(t *testing.T) {
		advisor := new(MockAdvisor)
		svc := newTestAssessmentService(t, newMemoryCache(), advisor)
		s, err := svc.StartSession(ctx, "ai-readiness")
		require.NoError(t, err)
		_, err = svc.ToggleItem(ctx, s.ID, dto.ToggleItemRequest{ItemID: "d2", Checked: true})
		require.NoError(t, err)

		advisor.On("Narrate", mock.Anything, mock.Anything).
			Return("", domain.NewAdvisorUnavailableError(errors.New("connection refused"))).Once()

		resp, err := svc.Recommendations(ctx, s.ID)
		require.NoError(t, err)
		assert.Len(t, resp.Recommendations, 2)
		assert.Empty(t, resp.Narrative)
		assert.Equal(t, NoticeAdvisorUnavailable, resp.Notice)
		advisor.AssertExpectations(t)
	})

	t.Run("EmptySelectionSkipsAdvisor", func(t *testing.T) {
		advisor := new(MockAdvisor)
		svc := newTestAssessmentService(t, newMemoryCache(), advisor)
		s, err := svc.StartSession(ctx, "ai-readiness")
		require.NoError(t, err)

		resp, err := svc.Recommendations(ctx, s.ID)
		require.NoError(t, err)
		assert.Len(t, resp.Recommendations, 2)
		assert.Empty(t, resp.Narrative)
		assert.Empty(t, resp.Notice)
		advisor.AssertNotCalled(t, "Narrate", mock.Anything, mock.Anything)
	})

	t.Run("FullScoreHasNone", func(t *testing.T) {
		svc := newTestAssessmentService(t, newMemoryCache(), nil)
		s, err := svc.StartSession(ctx, "ai-readiness")
		require.NoError(t, err)
		for _, id := range []string{"d1", "d2", "pe1"} {
			_, err = svc.ToggleItem(ctx, s.ID, dto.ToggleItemRequest{ItemID: id, Checked: true})
			require.NoError(t, err)
		}

		resp, err := svc.Recommendations(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, 100, resp.OverallScore)
		assert.NotNil(t, resp.Recommendations)
		assert.Empty(t, resp.Recommendations)
	})
}

func TestAssessmentService_ExportRoundTrip(t *testing.T) {
	svc := newTestAssessmentService(t, newMemoryCache(), nil)
	ctx := context.Background()

	s, err := svc.StartSession(ctx, "ai-readiness")
	require.NoError(t, err)
	_, err = svc.ToggleItem(ctx, s.ID, dto.ToggleItemRequest{ItemID: "pe1", Checked: true})
	require.NoError(t, err)
	_, err = svc.ToggleItem(ctx, s.ID, dto.ToggleItemRequest{ItemID: "d2", Checked: true})
	require.NoError(t, err)

	export, filename, err := svc.Export(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "ai-readiness-assessment-1773480413000.json", filename)
	assert.Equal(t, "2026-03-14T09:26:53Z", export.Timestamp)

	raw, err := json.Marshal(export)
	require.NoError(t, err)
	var decoded domain.AssessmentExport
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, 50, decoded.OverallScore)
	assert.Equal(t, []string{"d2", "pe1"}, decoded.SelectedItemIDs)
	assert.InDelta(t, 2.0/3.0, decoded.CompletionRatio, 1e-9)
	assert.Equal(t, map[string]int{"data": 25, "people": 100}, decoded.CategoryScores)
}

func TestAssessmentService_Share(t *testing.T) {
	ctx := context.Background()

	t.Run("Text", func(t *testing.T) {
		svc := newTestAssessmentService(t, newMemoryCache(), nil)
		s, err := svc.StartSession(ctx, "ai-readiness")
		require.NoError(t, err)
		_, err = svc.ToggleItem(ctx, s.ID, dto.ToggleItemRequest{ItemID: "d1", Checked: true})
		require.NoError(t, err)

		resp, err := svc.Share(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, "Overall Score: 50%\nCompleted: 1/3 items\n\nCategory Breakdown:\n• Data Readiness: 75%\n• People: 0%", resp.Text)
		assert.Empty(t, resp.Notice)
	})

	t.Run("CacheOutageSetsNotice", func(t *testing.T) {
		mc := new(MockCache)
		svc := newTestAssessmentService(t, mc, nil)
		id := "01HZX0000000000000000000AA"
		mc.On("Get", mock.Anything, cache.AssessmentSessionKey(id)).Return("", errors.New("dial tcp: connection refused")).Once()

		resp, err := svc.Share(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, resp.Text)
		assert.Equal(t, NoticeShareUnavailable, resp.Notice)
		mc.AssertExpectations(t)
	})

	t.Run("MissingSessionIsError", func(t *testing.T) {
		svc := newTestAssessmentService(t, newMemoryCache(), nil)
		_, err := svc.Share(ctx, "01HZX0000000000000000000AA")
		assert.True(t, domain.IsCode(err, domain.CodeSessionNotFound))
	})
}

func TestAssessmentService_CacheInteraction(t *testing.T) {
	ctx := context.Background()
	id := "01HZX0000000000000000000AA"
	key := cache.AssessmentSessionKey(id)

	stored, err := json.Marshal(domain.AssessmentSession{
		ID:              id,
		QuestionnaireID: "ai-readiness",
		Selection:       domain.NewSelection(),
		CreatedAt:       fixedNow,
		UpdatedAt:       fixedNow,
	})
	require.NoError(t, err)

	t.Run("ReadRefreshesTTL", func(t *testing.T) {
		mc := new(MockCache)
		svc := newTestAssessmentService(t, mc, nil)
		mc.On("Get", mock.Anything, key).Return(string(stored), nil).Once()
		mc.On("Expire", mock.Anything, key, time.Hour).Return(nil).Once()

		resp, err := svc.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, resp.ID)
		mc.AssertExpectations(t)
	})

	t.Run("WriteFailureIsCacheUnavailable", func(t *testing.T) {
		mc := new(MockCache)
		svc := newTestAssessmentService(t, mc, nil)
		mc.On("Get", mock.Anything, key).Return(string(stored), nil).Once()
		mc.On("Expire", mock.Anything, key, time.Hour).Return(nil).Once()
		mc.On("Set", mock.Anything, key, mock.AnythingOfType("string"), time.Hour).Return(errors.New("READONLY")).Once()

		_, err := svc.ToggleItem(ctx, id, dto.ToggleItemRequest{ItemID: "d1", Checked: true})
		assert.True(t, domain.IsCode(err, domain.CodeCacheUnavailable))
		mc.AssertExpectations(t)
	})

	t.Run("ReadFailureIsCacheUnavailable", func(t *testing.T) {
		mc := new(MockCache)
		svc := newTestAssessmentService(t, mc, nil)
		mc.On("Get", mock.Anything, key).Return("", errors.New("i/o timeout")).Once()

		_, err := svc.GetSession(ctx, id)
		assert.True(t, domain.IsCode(err, domain.CodeCacheUnavailable))
	})

	t.Run("CorruptEntryIsInternal", func(t *testing.T) {
		mc := new(MockCache)
		svc := newTestAssessmentService(t, mc, nil)
		mc.On("Get", mock.Anything, key).Return("{not json", nil).Once()

		_, err := svc.GetSession(ctx, id)
		assert.True(t, domain.IsCode(err, domain.CodeInternal))
	})
}
