package rates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Client downloads rate sheets from a remote publisher
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new rates client
func NewClient(url string, log *logrus.Logger) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// Fetch downloads and parses the remote sheet
func (c *Client) Fetch(ctx context.Context) (*Sheet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	c.log.Debugf("Rates XML response: %s", string(body))

	return Parse(body)
}

// Refresh fetches the remote sheet and swaps it into s
func (c *Client) Refresh(ctx context.Context, s *Sheet) error {
	fresh, err := c.Fetch(ctx)
	if err != nil {
		return err
	}
	s.Replace(fresh)
	c.log.Infof("Rate sheet refreshed: %s, USD %.2f", fresh.Date(), fresh.NairaPerUSD())
	return nil
}
