package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client talks to a jservice-style trivia API over HTTP JSON.
type Client struct {
	base string
	http *http.Client
	log  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		base: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

func (c *Client) ListCategories(ctx context.Context, limit int) ([]CategoryRef, error) {
	var refs []CategoryRef
	url := fmt.Sprintf("%s/api/categories?count=%d", c.base, limit)
	if err := c.getJSON(ctx, url, &refs); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	c.log.Debug("fetched category listing", zap.Int("count", len(refs)))
	return refs, nil
}

func (c *Client) CategoryDetail(ctx context.Context, id int) (CategoryDetail, error) {
	var detail CategoryDetail
	url := fmt.Sprintf("%s/api/category?id=%d", c.base, id)
	if err := c.getJSON(ctx, url, &detail); err != nil {
		return CategoryDetail{}, fmt.Errorf("category %d: %w", id, err)
	}

	c.log.Debug("fetched category detail",
		zap.Int("id", id),
		zap.String("title", detail.Title),
		zap.Int("clues", len(detail.Clues)),
	)
	return detail, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
