package domain

import "sort"

// Selection is the volatile record of what the user has chosen so far.
// Answers maps single-choice item ids to option ids; Checked holds the
// ids of checked toggle items. Only true entries are ever stored.
type Selection struct {
	Answers   map[string]string `json:"answers"`
	Checked   map[string]bool   `json:"checked"`
	Completed bool              `json:"completed"`
}

// NewSelection returns an empty, incomplete selection.
func NewSelection() Selection {
	return Selection{
		Answers: map[string]string{},
		Checked: map[string]bool{},
	}
}

func (s Selection) clone() Selection {
	out := NewSelection()
	for k, v := range s.Answers {
		out.Answers[k] = v
	}
	for k, v := range s.Checked {
		if v {
			out.Checked[k] = true
		}
	}
	out.Completed = s.Completed
	return out
}

// IsEmpty reports whether nothing has been selected.
func (s Selection) IsEmpty() bool {
	return len(s.Answers) == 0 && len(s.Checked) == 0
}

// SelectedItemIDs returns the ids of answered or checked items, sorted.
func (s Selection) SelectedItemIDs() []string {
	ids := make([]string, 0, len(s.Answers)+len(s.Checked))
	for id := range s.Answers {
		ids = append(ids, id)
	}
	for id, on := range s.Checked {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Action is a user intent applied to a Selection by Apply.
type Action interface {
	apply(q *Questionnaire, s Selection) (Selection, error)
}

// SelectOption answers a single-choice item, replacing any previous answer.
type SelectOption struct {
	ItemID   string
	OptionID string
}

// ToggleItem checks or unchecks a checklist item.
type ToggleItem struct {
	ItemID  string
	Checked bool
}

// CompleteAssessment marks the assessment finished and switches to the results view.
type CompleteAssessment struct{}

// ResetSelection clears every selection and returns to the question flow.
type ResetSelection struct{}

// Apply is the selection reducer: it returns the next state and never
// mutates s. Ids that are not part of q are rejected.
func Apply(q *Questionnaire, s Selection, a Action) (Selection, error) {
	if a == nil {
		return s, NewInvalidInputError("action is required")
	}
	return a.apply(q, s)
}

func (a SelectOption) apply(q *Questionnaire, s Selection) (Selection, error) {
	it, ok := q.Item(a.ItemID)
	if !ok {
		return s, NewUnknownItemError(a.ItemID)
	}
	body, ok := it.Body.(SingleChoice)
	if !ok {
		return s, NewActionMismatchError(it.ID, it.Body.Kind())
	}
	if _, ok := body.Option(a.OptionID); !ok {
		return s, NewUnknownOptionError(a.ItemID, a.OptionID)
	}
	next := s.clone()
	next.Answers[a.ItemID] = a.OptionID
	return next, nil
}

func (a ToggleItem) apply(q *Questionnaire, s Selection) (Selection, error) {
	it, ok := q.Item(a.ItemID)
	if !ok {
		return s, NewUnknownItemError(a.ItemID)
	}
	if _, ok := it.Body.(Toggle); !ok {
		return s, NewActionMismatchError(it.ID, it.Body.Kind())
	}
	next := s.clone()
	if a.Checked {
		next.Checked[a.ItemID] = true
	} else {
		delete(next.Checked, a.ItemID)
	}
	return next, nil
}

func (CompleteAssessment) apply(_ *Questionnaire, s Selection) (Selection, error) {
	next := s.clone()
	next.Completed = true
	return next, nil
}

func (ResetSelection) apply(_ *Questionnaire, _ Selection) (Selection, error) {
	return NewSelection(), nil
}
