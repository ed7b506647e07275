package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnavailable marks a catalog that could not be fetched or parsed. Pages
// render a distinct "catalog unavailable" state for it instead of operating
// on an empty catalog.
var ErrUnavailable = errors.New("catalog unavailable")

// Client fetches the full product catalog in one GET. No paging parameters
// are consumed; the source returns the whole set.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string) *Client {
	retry := retryablehttp.NewClient()
	retry.RetryMax = 3
	retry.Logger = nil
	return &Client{
		url:        url,
		httpClient: retry.StandardClient(),
	}
}

func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	products, err := ParseProducts(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return products, nil
}

// ParseProducts unmarshals catalog payloads from wrapped or bare-array shapes.
func ParseProducts(data []byte) ([]Product, error) {
	var wrapped struct {
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Products != nil {
		return wrapped.Products, nil
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("unmarshal catalog payload: %w", err)
	}
	return products, nil
}
