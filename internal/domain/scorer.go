package domain

import (
	"fmt"
	"math"
)

// Priority of a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
)

// CategoryResult is the per-category view of a scored selection.
type CategoryResult struct {
	CategoryID string
	Name       string
	Score      int
	Answered   int
	Total      int
}

// Recommendation flags a category scoring below the questionnaire threshold.
type Recommendation struct {
	CategoryID string
	Category   string
	Score      int
	Priority   Priority
	Message    string
}

// Percent converts earned/possible into an integer percentage in [0,100],
// rounding half away from zero. A zero denominator scores 0.
func Percent(earned, possible float64) int {
	if possible <= 0 {
		return 0
	}
	p := int(math.Round(100 * earned / possible))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// earnedWeight is the weight the selection earns on one item.
func earnedWeight(it *Item, s Selection) float64 {
	switch body := it.Body.(type) {
	case SingleChoice:
		optID, ok := s.Answers[it.ID]
		if !ok {
			return 0
		}
		if o, ok := body.Option(optID); ok {
			return o.Weight
		}
	case Toggle:
		if s.Checked[it.ID] {
			return body.Weight
		}
	}
	return 0
}

func isAnswered(it *Item, s Selection) bool {
	switch it.Body.(type) {
	case SingleChoice:
		_, ok := s.Answers[it.ID]
		return ok
	case Toggle:
		return s.Checked[it.ID]
	}
	return false
}

func categoryWeights(c *Category, s Selection) (earned, possible float64) {
	for _, it := range c.Items {
		earned += earnedWeight(it, s)
		possible += it.Body.MaxWeight()
	}
	return earned, possible
}

// CategoryScore scores one category of q.
func CategoryScore(q *Questionnaire, s Selection, categoryID string) (int, error) {
	c, ok := q.Category(categoryID)
	if !ok {
		return 0, NewUnknownCategoryError(categoryID)
	}
	return Percent(categoryWeights(c, s)), nil
}

// OverallScore pools the weights of every category. It is not an average
// of category percentages, so larger categories weigh more.
func OverallScore(q *Questionnaire, s Selection) int {
	var earned, possible float64
	for _, c := range q.Categories {
		e, m := categoryWeights(c, s)
		earned += e
		possible += m
	}
	return Percent(earned, possible)
}

// ScoreCategory returns the score and completion of one category.
func ScoreCategory(q *Questionnaire, s Selection, categoryID string) (CategoryResult, error) {
	score, err := CategoryScore(q, s, categoryID)
	if err != nil {
		return CategoryResult{}, err
	}
	c, _ := q.Category(categoryID)
	answered := 0
	for _, it := range c.Items {
		if isAnswered(it, s) {
			answered++
		}
	}
	return CategoryResult{
		CategoryID: c.ID,
		Name:       c.Name,
		Score:      score,
		Answered:   answered,
		Total:      len(c.Items),
	}, nil
}

// Breakdown scores every category in catalog order.
func Breakdown(q *Questionnaire, s Selection) []CategoryResult {
	results := make([]CategoryResult, 0, len(q.Categories))
	for _, c := range q.Categories {
		// Ids come from q itself and are unique after Validate.
		r, _ := ScoreCategory(q, s, c.ID)
		results = append(results, r)
	}
	return results
}

// Completion returns how many items are answered out of the total.
func Completion(q *Questionnaire, s Selection) (answered, total int) {
	for _, c := range q.Categories {
		for _, it := range c.Items {
			total++
			if isAnswered(it, s) {
				answered++
			}
		}
	}
	return answered, total
}

// Recommendations lists the categories below the threshold in catalog order.
func Recommendations(q *Questionnaire, s Selection) []Recommendation {
	threshold := q.Threshold
	if threshold == 0 {
		threshold = DefaultRecommendationThreshold
	}

	recs := []Recommendation{}
	for _, r := range Breakdown(q, s) {
		if r.Score >= threshold {
			continue
		}
		priority := PriorityMedium
		if r.Score < HighPriorityThreshold {
			priority = PriorityHigh
		}
		c, _ := q.Category(r.CategoryID)
		recs = append(recs, Recommendation{
			CategoryID: r.CategoryID,
			Category:   r.Name,
			Score:      r.Score,
			Priority:   priority,
			Message:    adviceFor(c, r.Score),
		})
	}
	return recs
}

func adviceFor(c *Category, score int) string {
	if c != nil && c.Advice != "" {
		return c.Advice
	}
	name := ""
	if c != nil {
		name = c.Name
	}
	return fmt.Sprintf("Strengthen %s: currently at %d%%.", name, score)
}
