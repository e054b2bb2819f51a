package feedsvc

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/ripoti/core"
	"github.com/trezcool/ripoti/core/report"
)

const recordsPath = "/compliance_record"

// Client fetches the raw compliance-record feed from the hosted backend.
// The feed is a plain JSON array of loosely-shaped objects; normalization
// happens downstream in core/report.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

var _ report.Feed = (*Client)(nil)

func NewClient(conf *core.Config) *Client {
	return &Client{
		baseURL: conf.Feed.BaseURL,
		apiKey:  conf.Feed.APIKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) FetchComplianceRecords(ctx context.Context) ([]map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+recordsPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building feed request")
	}
	req.Header.Set("apiKey", c.apiKey)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching feed")
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, errors.Errorf("fetching feed: status %d", res.StatusCode)
	}

	var records []map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&records); err != nil {
		return nil, errors.Wrap(err, "decoding feed response")
	}
	return records, nil
}
