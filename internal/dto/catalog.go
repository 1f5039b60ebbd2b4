package dto

// ProductResponse represents a product in the API response
// @Description Product information
type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	PriceCents  int64    `json:"price_cents"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Featured    bool     `json:"featured"`
	New         bool     `json:"new"`
	InStock     bool     `json:"in_stock"`
	Tags        []string `json:"tags"`
}

// ProductListResponse is a filtered, sorted product listing.
// Empty is true when nothing matched so the page can show its empty state.
type ProductListResponse struct {
	Items    []ProductResponse `json:"items"`
	Total    int               `json:"total"`
	Empty    bool              `json:"empty"`
	Query    string            `json:"query"`
	Category string            `json:"category"`
	Sort     string            `json:"sort"`
}

// PageResponse is a sitemap entry. Route is the navigation target id.
type PageResponse struct {
	Route       string   `json:"route"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Section     string   `json:"section"`
	Keywords    []string `json:"keywords"`
}

// PageListResponse is a filtered sitemap
type PageListResponse struct {
	Items []PageResponse `json:"items"`
	Total int            `json:"total"`
	Empty bool           `json:"empty"`
}
