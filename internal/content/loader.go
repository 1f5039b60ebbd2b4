// Package content loads the site's static catalogs: questionnaires, the
// merchandise catalog and the sitemap. They are embedded YAML, decoded once
// at startup and never mutated afterwards.
package content

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"consult-hub/internal/domain"
	"consult-hub/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

//go:embed data
var embedded embed.FS

const (
	questionnaireDir = "questionnaires"
	productsFile     = "products.yaml"
	sitemapFile      = "sitemap.yaml"
)

type optionFile struct {
	ID     string  `yaml:"id"`
	Label  string  `yaml:"label"`
	Weight float64 `yaml:"weight"`
}

type itemFile struct {
	ID      string       `yaml:"id"`
	Prompt  string       `yaml:"prompt"`
	Weight  float64      `yaml:"weight"`
	Options []optionFile `yaml:"options"`
}

type categoryFile struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Advice      string     `yaml:"advice"`
	Items       []itemFile `yaml:"items"`
}

type questionnaireFile struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Kind        string         `yaml:"kind"`
	Threshold   int            `yaml:"threshold"`
	Categories  []categoryFile `yaml:"categories"`
}

type productFile struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	PriceCents  int64    `yaml:"price_cents"`
	Rating      float64  `yaml:"rating"`
	Reviews     int      `yaml:"reviews"`
	Featured    bool     `yaml:"featured"`
	New         bool     `yaml:"new"`
	InStock     bool     `yaml:"in_stock"`
	Tags        []string `yaml:"tags"`
}

type pageFile struct {
	Route       string   `yaml:"route"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Section     string   `yaml:"section"`
	Keywords    []string `yaml:"keywords"`
}

// Options tune how content is loaded.
type Options struct {
	// ThresholdOverride replaces every questionnaire's recommendation threshold when > 0.
	ThresholdOverride int
}

// LoadEmbedded loads the content compiled into the binary.
func LoadEmbedded(ctx context.Context, opts Options) (*Store, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded content: %w", err)
	}
	return Load(ctx, sub, opts)
}

// Load decodes and validates every catalog in fsys concurrently.
func Load(ctx context.Context, fsys fs.FS, opts Options) (*Store, error) {
	var (
		questionnaires []*domain.Questionnaire
		products       []domain.Product
		pages          []domain.SitePage
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questionnaires, err = loadQuestionnaires(ctx, fsys, opts)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = loadProducts(fsys)
		return err
	})
	g.Go(func() error {
		var err error
		pages, err = loadPages(fsys)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	store := newStore(questionnaires, products, pages)
	logger.Get().Info("Static content loaded",
		zap.Int("questionnaires", len(questionnaires)),
		zap.Int("products", len(products)),
		zap.Int("pages", len(pages)),
	)
	return store, nil
}

func loadQuestionnaires(ctx context.Context, fsys fs.FS, opts Options) ([]*domain.Questionnaire, error) {
	entries, err := fs.ReadDir(fsys, questionnaireDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", questionnaireDir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && (strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml")) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]*domain.Questionnaire, len(names))
	g, _ := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			q, err := loadQuestionnaire(fsys, path.Join(questionnaireDir, name), opts)
			if err != nil {
				return err
			}
			out[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(out))
	for i, q := range out {
		if prev, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("questionnaire id %s declared in both %s and %s", q.ID, prev, names[i])
		}
		seen[q.ID] = names[i]
	}
	return out, nil
}

func loadQuestionnaire(fsys fs.FS, name string, opts Options) (*domain.Questionnaire, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var file questionnaireFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	q, err := file.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if opts.ThresholdOverride > 0 {
		q.Threshold = opts.ThresholdOverride
	}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return q, nil
}

func (f questionnaireFile) toDomain() (*domain.Questionnaire, error) {
	q := &domain.Questionnaire{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Kind:        domain.QuestionnaireKind(f.Kind),
		Threshold:   f.Threshold,
		Categories:  make([]*domain.Category, 0, len(f.Categories)),
	}
	for _, cf := range f.Categories {
		c := &domain.Category{
			ID:          cf.ID,
			Name:        cf.Name,
			Description: cf.Description,
			Advice:      cf.Advice,
			Items:       make([]*domain.Item, 0, len(cf.Items)),
		}
		for _, itf := range cf.Items {
			body, err := itf.body()
			if err != nil {
				return nil, err
			}
			c.Items = append(c.Items, &domain.Item{
				ID:         itf.ID,
				CategoryID: cf.ID,
				Prompt:     itf.Prompt,
				Body:       body,
			})
		}
		q.Categories = append(q.Categories, c)
	}
	return q, nil
}

// body picks the item variant: options make a single-choice item, a weight makes a toggle.
func (f itemFile) body() (domain.ItemBody, error) {
	if len(f.Options) > 0 && f.Weight != 0 {
		return nil, domain.NewInvalidCatalogError(fmt.Sprintf("item %s: declare either options or weight, not both", f.ID))
	}
	if len(f.Options) > 0 {
		options := make([]domain.Option, len(f.Options))
		for i, o := range f.Options {
			options[i] = domain.Option{ID: o.ID, Label: o.Label, Weight: o.Weight}
		}
		return domain.SingleChoice{Options: options}, nil
	}
	return domain.Toggle{Weight: f.Weight}, nil
}

func loadProducts(fsys fs.FS) ([]domain.Product, error) {
	raw, err := fs.ReadFile(fsys, productsFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", productsFile, err)
	}
	var file struct {
		Products []productFile `yaml:"products"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", productsFile, err)
	}

	seen := make(map[string]struct{}, len(file.Products))
	products := make([]domain.Product, 0, len(file.Products))
	for _, p := range file.Products {
		if p.ID == "" || p.Name == "" {
			return nil, domain.NewInvalidCatalogError(fmt.Sprintf("%s: product id and name are required", productsFile))
		}
		if _, dup := seen[p.ID]; dup {
			return nil, domain.NewInvalidCatalogError(fmt.Sprintf("%s: duplicate product %s", productsFile, p.ID))
		}
		if p.PriceCents < 0 {
			return nil, domain.NewInvalidCatalogError(fmt.Sprintf("%s: product %s has a negative price", productsFile, p.ID))
		}
		seen[p.ID] = struct{}{}
		products = append(products, domain.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			PriceCents:  p.PriceCents,
			Rating:      p.Rating,
			Reviews:     p.Reviews,
			Featured:    p.Featured,
			New:         p.New,
			InStock:     p.InStock,
			Tags:        p.Tags,
		})
	}
	return products, nil
}

func loadPages(fsys fs.FS) ([]domain.SitePage, error) {
	raw, err := fs.ReadFile(fsys, sitemapFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sitemapFile, err)
	}
	var file struct {
		Pages []pageFile `yaml:"pages"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", sitemapFile, err)
	}

	seen := make(map[string]struct{}, len(file.Pages))
	pages := make([]domain.SitePage, 0, len(file.Pages))
	for _, p := range file.Pages {
		if p.Route == "" {
			return nil, domain.NewInvalidCatalogError(fmt.Sprintf("%s: page route is required", sitemapFile))
		}
		if _, dup := seen[p.Route]; dup {
			return nil, domain.NewInvalidCatalogError(fmt.Sprintf("%s: duplicate route %s", sitemapFile, p.Route))
		}
		seen[p.Route] = struct{}{}
		pages = append(pages, domain.SitePage{
			Route:       p.Route,
			Title:       p.Title,
			Description: p.Description,
			Section:     p.Section,
			Keywords:    p.Keywords,
		})
	}
	return pages, nil
}
