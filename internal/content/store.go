package content

import "consult-hub/internal/domain"

// Store is the in-memory domain.ContentStore built by Load.
type Store struct {
	questionnaires  []*domain.Questionnaire
	byQuestionnaire map[string]*domain.Questionnaire
	products        []domain.Product
	byProduct       map[string]domain.Product
	pages           []domain.SitePage
	byRoute         map[string]domain.SitePage
}

var _ domain.ContentStore = (*Store)(nil)

func newStore(questionnaires []*domain.Questionnaire, products []domain.Product, pages []domain.SitePage) *Store {
	s := &Store{
		questionnaires:  questionnaires,
		byQuestionnaire: make(map[string]*domain.Questionnaire, len(questionnaires)),
		products:        products,
		byProduct:       make(map[string]domain.Product, len(products)),
		pages:           pages,
		byRoute:         make(map[string]domain.SitePage, len(pages)),
	}
	for _, q := range questionnaires {
		s.byQuestionnaire[q.ID] = q
	}
	for _, p := range products {
		s.byProduct[p.ID] = p
	}
	for _, p := range pages {
		s.byRoute[p.Route] = p
	}
	return s
}

// NewStore builds a store from already validated content.
func NewStore(questionnaires []*domain.Questionnaire, products []domain.Product, pages []domain.SitePage) *Store {
	return newStore(questionnaires, products, pages)
}

func (s *Store) Questionnaires() []*domain.Questionnaire { return s.questionnaires }

func (s *Store) Questionnaire(id string) (*domain.Questionnaire, bool) {
	q, ok := s.byQuestionnaire[id]
	return q, ok
}

func (s *Store) Products() []domain.Product { return s.products }

func (s *Store) Product(id string) (domain.Product, bool) {
	p, ok := s.byProduct[id]
	return p, ok
}

func (s *Store) Pages() []domain.SitePage { return s.pages }

func (s *Store) Page(route string) (domain.SitePage, bool) {
	p, ok := s.byRoute[route]
	return p, ok
}
