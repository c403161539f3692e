package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/buildmaster/cli/internal/catalog"
)

// BuildConfig is the wire form of a saved build: the slot selection,
// the derived total, and naming metadata.
type BuildConfig struct {
	ID         string                                 `json:"id,omitempty"`
	Name       string                                 `json:"name"`
	Components map[catalog.SlotType]catalog.Component `json:"components"`
	TotalPrice float64                                `json:"totalPrice"`
	CreatedAt  time.Time                              `json:"createdAt,omitempty"`
	UpdatedAt  time.Time                              `json:"updatedAt,omitempty"`
}

// SaveBuild persists a named build on the collaborator and returns the
// stored record. The caller treats the save as pending until this call
// returns without error.
func (c *Client) SaveBuild(ctx context.Context, cfg BuildConfig) (BuildConfig, error) {
	var saved BuildConfig
	if err := c.do(ctx, http.MethodPost, "/api/builds/save", nil, cfg, &saved); err != nil {
		return BuildConfig{}, err
	}
	if saved.Name == "" {
		// Some deployments answer a bare ack; keep the request as the
		// record of truth in that case.
		saved = cfg
	}
	return saved, nil
}

// ListBuilds fetches the saved builds for the current session.
func (c *Client) ListBuilds(ctx context.Context) ([]BuildConfig, error) {
	var builds []BuildConfig
	if err := c.do(ctx, http.MethodGet, "/api/builds", nil, nil, &builds); err != nil {
		return nil, err
	}
	return builds, nil
}

// DeleteBuild removes a saved build by id.
func (c *Client) DeleteBuild(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/builds/"+url.PathEscape(id), nil, nil, nil)
}

// CompatibilityResult reports the collaborator's verdict on a selection.
type CompatibilityResult struct {
	Compatible bool     `json:"compatible"`
	Issues     []string `json:"issues"`
	Warnings   []string `json:"warnings"`
}

// CheckCompatibility asks the collaborator whether the selected parts
// fit together. The selection is sent as slot to component id.
func (c *Client) CheckCompatibility(ctx context.Context, selection map[catalog.SlotType]string) (CompatibilityResult, error) {
	payload := struct {
		Components map[catalog.SlotType]string `json:"components"`
	}{Components: selection}

	var result CompatibilityResult
	if err := c.do(ctx, http.MethodPost, "/api/builds/check-compatibility", nil, payload, &result); err != nil {
		return CompatibilityResult{}, err
	}
	return result, nil
}
