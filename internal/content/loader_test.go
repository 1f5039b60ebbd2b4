package content

import (
	"context"
	"testing"
	"testing/fstest"

	"consult-hub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	store, err := LoadEmbedded(context.Background(), Options{})
	require.NoError(t, err)

	readiness, ok := store.Questionnaire("ai-readiness")
	require.True(t, ok)
	assert.Equal(t, domain.KindChecklist, readiness.Kind)
	assert.Equal(t, 60, readiness.Threshold)
	assert.Len(t, readiness.Categories, 5)

	ethics, ok := store.Questionnaire("ai-ethics")
	require.True(t, ok)
	assert.Equal(t, domain.KindQuiz, ethics.Kind)
	item, ok := ethics.Item("accountability-owner")
	require.True(t, ok)
	choice, ok := item.Body.(domain.SingleChoice)
	require.True(t, ok)
	opt, ok := choice.Option("formal")
	require.True(t, ok)
	assert.Equal(t, "Yes, formally assigned", opt.Label)

	assert.NotEmpty(t, store.Products())
	_, ok = store.Product("mug-prompt")
	assert.True(t, ok)

	page, ok := store.Page("readiness-checklist")
	require.True(t, ok)
	assert.Equal(t, "tools", page.Section)
}

func TestLoad_ThresholdOverride(t *testing.T) {
	store, err := LoadEmbedded(context.Background(), Options{ThresholdOverride: 75})
	require.NoError(t, err)
	for _, q := range store.Questionnaires() {
		assert.Equal(t, 75, q.Threshold, q.ID)
	}
}

const validProducts = "products:\n  - {id: p1, name: Mug, price_cents: 100}\n"
const validPages = "pages:\n  - {route: home, title: Home}\n"

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{
			name: "mixed item variants",
			fs: fstest.MapFS{
				"questionnaires/q.yaml": {Data: []byte(`
id: q
kind: quiz
categories:
  - id: c
    items:
      - id: i
        weight: 2
        options: [{id: a, weight: 1}]
`)},
				"products.yaml": {Data: []byte(validProducts)},
				"sitemap.yaml":  {Data: []byte(validPages)},
			},
		},
		{
			name: "toggle in quiz",
			fs: fstest.MapFS{
				"questionnaires/q.yaml": {Data: []byte("id: q\nkind: quiz\ncategories:\n  - id: c\n    items:\n      - {id: i, weight: 2}\n")},
				"products.yaml":         {Data: []byte(validProducts)},
				"sitemap.yaml":          {Data: []byte(validPages)},
			},
		},
		{
			name: "duplicate product",
			fs: fstest.MapFS{
				"questionnaires/q.yaml": {Data: []byte("id: q\nkind: checklist\ncategories: []\n")},
				"products.yaml":         {Data: []byte("products:\n  - {id: p1, name: A}\n  - {id: p1, name: B}\n")},
				"sitemap.yaml":          {Data: []byte(validPages)},
			},
		},
		{
			name: "duplicate route",
			fs: fstest.MapFS{
				"questionnaires/q.yaml": {Data: []byte("id: q\nkind: checklist\ncategories: []\n")},
				"products.yaml":         {Data: []byte(validProducts)},
				"sitemap.yaml":          {Data: []byte("pages:\n  - {route: a}\n  - {route: a}\n")},
			},
		},
		{
			name: "missing sitemap",
			fs: fstest.MapFS{
				"questionnaires/q.yaml": {Data: []byte("id: q\nkind: checklist\ncategories: []\n")},
				"products.yaml":         {Data: []byte(validProducts)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), tt.fs, Options{})
			assert.Error(t, err)
		})
	}
}

func TestLoad_EmptyCategoryAllowed(t *testing.T) {
	fsys := fstest.MapFS{
		"questionnaires/q.yaml": {Data: []byte("id: q\nkind: checklist\ncategories:\n  - id: empty\n    name: Empty\n")},
		"products.yaml":         {Data: []byte(validProducts)},
		"sitemap.yaml":          {Data: []byte(validPages)},
	}
	store, err := Load(context.Background(), fsys, Options{})
	require.NoError(t, err)

	q, ok := store.Questionnaire("q")
	require.True(t, ok)
	score, err := domain.CategoryScore(q, domain.NewSelection(), "empty")
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}
