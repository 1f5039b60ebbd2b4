package domain

import (
	"fmt"
	"strings"
)

// QuestionnaireKind distinguishes single-choice quizzes from weighted checklists.
type QuestionnaireKind string

const (
	KindQuiz      QuestionnaireKind = "quiz"
	KindChecklist QuestionnaireKind = "checklist"
)

// ItemKind names the variant carried by an Item.
type ItemKind string

const (
	ItemSingleChoice ItemKind = "single_choice"
	ItemToggle       ItemKind = "toggle"
)

const (
	// QuizItemMax is the denominator contribution of every single-choice item.
	QuizItemMax = 10.0

	DefaultRecommendationThreshold = 60
	HighPriorityThreshold          = 40
)

// Option is one selectable answer of a single-choice item.
type Option struct {
	ID     string
	Label  string
	Weight float64 // 0 ~ 10
}

// ItemBody is the tagged variant of an Item: SingleChoice or Toggle.
type ItemBody interface {
	Kind() ItemKind
	MaxWeight() float64
	isItemBody()
}

// SingleChoice is a quiz question; exactly one option may be selected.
type SingleChoice struct {
	Options []Option
}

func (SingleChoice) Kind() ItemKind { return ItemSingleChoice }
func (SingleChoice) MaxWeight() float64 { return QuizItemMax }
func (SingleChoice) isItemBody() {}

// Option looks up an option by id.
func (s SingleChoice) Option(id string) (Option, bool) {
	for _, o := range s.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Toggle is a checklist entry worth Weight points when checked.
type Toggle struct {
	Weight float64
}

func (Toggle) Kind() ItemKind { return ItemToggle }
func (t Toggle) MaxWeight() float64 { return t.Weight }
func (Toggle) isItemBody() {}

// Item is a single question or checklist entry.
type Item struct {
	ID         string
	CategoryID string
	Prompt     string
	Body       ItemBody
}

// Category groups related items. Advice is the recommendation message
// shown when the category scores below the questionnaire threshold.
type Category struct {
	ID          string
	Name        string
	Description string
	Advice      string
	Items       []*Item
}

// Questionnaire is an immutable catalog of categories and items.
type Questionnaire struct {
	ID          string
	Title       string
	Description string
	Kind        QuestionnaireKind
	Threshold   int
	Categories  []*Category

	categoryIndex map[string]*Category
	itemIndex     map[string]*Item
}

// Validate checks the catalog invariants and builds the lookup indexes.
// It must succeed before the questionnaire is scored.
func (q *Questionnaire) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return NewInvalidCatalogError("questionnaire id is required")
	}
	if q.Kind != KindQuiz && q.Kind != KindChecklist {
		return NewInvalidCatalogError(fmt.Sprintf("questionnaire %s: unknown kind %q", q.ID, q.Kind))
	}
	if q.Threshold == 0 {
		q.Threshold = DefaultRecommendationThreshold
	}
	if q.Threshold < 0 || q.Threshold > 100 {
		return NewInvalidCatalogError(fmt.Sprintf("questionnaire %s: threshold %d out of range", q.ID, q.Threshold))
	}

	categories := make(map[string]*Category, len(q.Categories))
	items := make(map[string]*Item)
	for _, c := range q.Categories {
		if c.ID == "" {
			return NewInvalidCatalogError(fmt.Sprintf("questionnaire %s: category id is required", q.ID))
		}
		if _, dup := categories[c.ID]; dup {
			return NewInvalidCatalogError(fmt.Sprintf("questionnaire %s: duplicate category %s", q.ID, c.ID))
		}
		categories[c.ID] = c

		for _, it := range c.Items {
			if err := q.validateItem(c, it); err != nil {
				return err
			}
			if _, dup := items[it.ID]; dup {
				return NewInvalidCatalogError(fmt.Sprintf("questionnaire %s: duplicate item %s", q.ID, it.ID))
			}
			it.CategoryID = c.ID
			items[it.ID] = it
		}
	}

	q.categoryIndex = categories
	q.itemIndex = items
	return nil
}

func (q *Questionnaire) validateItem(c *Category, it *Item) error {
	if it == nil || it.ID == "" {
		return NewInvalidCatalogError(fmt.Sprintf("questionnaire %s: category %s has an item without id", q.ID, c.ID))
	}
	switch body := it.Body.(type) {
	case SingleChoice:
		if q.Kind != KindQuiz {
			return NewInvalidCatalogError(fmt.Sprintf("item %s: single-choice items are only allowed in quizzes", it.ID))
		}
		if len(body.Options) == 0 {
			return NewInvalidCatalogError(fmt.Sprintf("item %s: at least one option is required", it.ID))
		}
		seen := make(map[string]struct{}, len(body.Options))
		for _, o := range body.Options {
			if o.ID == "" {
				return NewInvalidCatalogError(fmt.Sprintf("item %s: option id is required", it.ID))
			}
			if _, dup := seen[o.ID]; dup {
				return NewInvalidCatalogError(fmt.Sprintf("item %s: duplicate option %s", it.ID, o.ID))
			}
			seen[o.ID] = struct{}{}
			if o.Weight < 0 || o.Weight > QuizItemMax {
				return NewInvalidCatalogError(fmt.Sprintf("item %s: option %s weight %.2f out of range", it.ID, o.ID, o.Weight))
			}
		}
	case Toggle:
		if q.Kind != KindChecklist {
			return NewInvalidCatalogError(fmt.Sprintf("item %s: toggle items are only allowed in checklists", it.ID))
		}
		if body.Weight <= 0 {
			return NewInvalidCatalogError(fmt.Sprintf("item %s: weight must be positive", it.ID))
		}
	default:
		return NewInvalidCatalogError(fmt.Sprintf("item %s: missing body", it.ID))
	}
	return nil
}

// Item returns the item with the given id.
func (q *Questionnaire) Item(id string) (*Item, bool) {
	it, ok := q.itemIndex[id]
	return it, ok
}

// Category returns the category with the given id.
func (q *Questionnaire) Category(id string) (*Category, bool) {
	c, ok := q.categoryIndex[id]
	return c, ok
}

// ItemCount returns the number of items across all categories.
func (q *Questionnaire) ItemCount() int {
	return len(q.itemIndex)
}
