package service

import (
	"os"
	"testing"

	"consult-hub/internal/config"
	"consult-hub/internal/content"
	"consult-hub/internal/domain"
	"consult-hub/internal/logger"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error", Env: "test"}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func option(id string, weight float64) domain.Option {
	return domain.Option{ID: id, Label: id, Weight: weight}
}

func testContent(t *testing.T) *content.Store {
	t.Helper()

	ethics := &domain.Questionnaire{
		ID:    "ai-ethics",
		Title: "AI Ethics Quiz",
		Kind:  domain.KindQuiz,
		Categories: []*domain.Category{
			{
				ID:   "fairness",
				Name: "Fairness",
				Items: []*domain.Item{
					{ID: "f1", Prompt: "Do you audit for bias?", Body: domain.SingleChoice{Options: []domain.Option{option("a", 0), option("b", 5), option("c", 10)}}},
					{ID: "f2", Prompt: "Do you publish model cards?", Body: domain.SingleChoice{Options: []domain.Option{option("a", 0), option("c", 10)}}},
				},
			},
			{
				ID:     "privacy",
				Name:   "Privacy",
				Advice: "Run privacy impact assessments.",
				Items: []*domain.Item{
					{ID: "p1", Prompt: "Is personal data minimized?", Body: domain.SingleChoice{Options: []domain.Option{option("a", 0), option("b", 10)}}},
				},
			},
		},
	}
	readiness := &domain.Questionnaire{
		ID:    "ai-readiness",
		Title: "AI Readiness Checklist",
		Kind:  domain.KindChecklist,
		Categories: []*domain.Category{
			{
				ID:   "data",
				Name: "Data Readiness",
				Items: []*domain.Item{
					{ID: "d1", Prompt: "Data is inventoried", Body: domain.Toggle{Weight: 3}},
					{ID: "d2", Prompt: "Data quality is monitored", Body: domain.Toggle{Weight: 1}},
				},
			},
			{
				ID:   "people",
				Name: "People",
				Items: []*domain.Item{
					{ID: "pe1", Prompt: "Staff are trained", Body: domain.Toggle{Weight: 2}},
				},
			},
		},
	}
	require.NoError(t, ethics.Validate())
	require.NoError(t, readiness.Validate())

	products := []domain.Product{
		{ID: "a", Name: "AI Mug", Description: "Coffee mug", Category: "drinkware", PriceCents: 1500, Rating: 4.1, Featured: false, New: true, Tags: []string{"coffee"}},
		{ID: "b", Name: "Neural Tee", Description: "Cotton shirt", Category: "apparel", PriceCents: 2500, Rating: 4.8, Featured: true, Tags: []string{"shirt"}},
		{ID: "c", Name: "Gradient Hoodie", Description: "Warm hoodie", Category: "apparel", PriceCents: 5900, Rating: 4.5},
	}
	pages := []domain.SitePage{
		{Route: "home", Title: "Home", Description: "AI consulting", Section: "main", Keywords: []string{"consulting"}},
		{Route: "readiness-checklist", Title: "AI Readiness Checklist", Description: "Score your organization", Section: "tools", Keywords: []string{"assessment"}},
		{Route: "shop", Title: "Shop", Description: "Merchandise", Section: "shop"},
	}

	return content.NewStore([]*domain.Questionnaire{ethics, readiness}, products, pages)
}
