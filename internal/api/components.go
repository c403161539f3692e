package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/buildmaster/cli/internal/catalog"
)

// ListComponents fetches the full catalog as raw records. Callers run
// the records through catalog.Normalize before display.
func (c *Client) ListComponents(ctx context.Context) ([]catalog.RawRecord, error) {
	var records []catalog.RawRecord
	if err := c.do(ctx, http.MethodGet, "/api/components", nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ComponentsByType fetches the catalog entries for one slot type. The
// slot is normalized locally so synonyms like "memory" reach the
// collaborator in canonical form.
func (c *Client) ComponentsByType(ctx context.Context, slot string) ([]catalog.RawRecord, error) {
	normalized := catalog.NormalizeSlotType(slot)
	var records []catalog.RawRecord
	if err := c.do(ctx, http.MethodGet, "/api/components/type/"+url.PathEscape(string(normalized)), nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SearchComponents runs a keyword search against the catalog.
func (c *Client) SearchComponents(ctx context.Context, keyword string) ([]catalog.RawRecord, error) {
	query := url.Values{"keyword": {keyword}}
	var records []catalog.RawRecord
	if err := c.do(ctx, http.MethodGet, "/api/components/search", query, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetComponent fetches a single catalog entry by id.
func (c *Client) GetComponent(ctx context.Context, id string) (catalog.RawRecord, error) {
	var record catalog.RawRecord
	if err := c.do(ctx, http.MethodGet, "/api/components/"+url.PathEscape(id), nil, nil, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// ComponentRequest is the admin create/update payload.
type ComponentRequest struct {
	Name           string  `json:"name"           validate:"required"`
	Type           string  `json:"type"           validate:"required"`
	Brand          string  `json:"brand,omitempty"`
	Model          string  `json:"model,omitempty"`
	Price          float64 `json:"price"          validate:"gte=0"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	Specifications string  `json:"specifications,omitempty"`
	Description    string  `json:"description,omitempty"`
	StockQuantity  int     `json:"stockQuantity,omitempty" validate:"gte=0"`
}

// CreateComponent adds a catalog entry (admin only).
func (c *Client) CreateComponent(ctx context.Context, req ComponentRequest) (catalog.RawRecord, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var record catalog.RawRecord
	if err := c.do(ctx, http.MethodPost, "/api/components", nil, req, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateComponent replaces a catalog entry (admin only).
func (c *Client) UpdateComponent(ctx context.Context, id string, req ComponentRequest) (catalog.RawRecord, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var record catalog.RawRecord
	if err := c.do(ctx, http.MethodPut, "/api/components/"+url.PathEscape(id), nil, req, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteComponent removes a catalog entry (admin only).
func (c *Client) DeleteComponent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/components/"+url.PathEscape(id), nil, nil, nil)
}

// CrawlRequest asks the collaborator to pull fresh listings from a
// retail source into the catalog.
type CrawlRequest struct {
	Type     string `json:"type"     validate:"required"`
	Source   string `json:"source"   validate:"required,oneof=jd taobao"`
	Keyword  string `json:"keyword"  validate:"required"`
	MaxCount int    `json:"maxCount" validate:"gt=0,max=100"`
}

// Crawl triggers a catalog crawl and returns the imported records.
func (c *Client) Crawl(ctx context.Context, req CrawlRequest) ([]catalog.RawRecord, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	req.Type = string(catalog.NormalizeSlotType(req.Type))
	var records []catalog.RawRecord
	if err := c.do(ctx, http.MethodPost, "/api/components/crawl", nil, req, &records); err != nil {
		return nil, err
	}
	return records, nil
}
