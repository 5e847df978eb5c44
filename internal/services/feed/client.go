// Package feed pulls externally observed competitor prices from a configured
// HTTP source.
package feed

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Observation is one competitor price sighting reported by the feed.
type Observation struct {
	CompetitorName string    `json:"competitor_name"`
	ProductName    string    `json:"product_name"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	ObservedAt     time.Time `json:"observed_at"`
}

type observationsResponse struct {
	Observations []Observation `json:"observations"`
}

type Client struct {
	baseURL string
	apiKey  string
	client  *resty.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  resty.New().SetTimeout(15 * time.Second),
	}
}

// Configured reports whether a feed source was set up at all.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != ""
}

// Observations fetches the latest price sightings for one competitor. The
// competitor name is how the feed identifies the business being watched.
func (c *Client) Observations(competitorName string) ([]Observation, error) {
	var result observationsResponse
	resp, err := c.client.R().
		SetQueryParam("competitor", competitorName).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetResult(&result).
		Get(c.baseURL + "/observations")
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}
	return result.Observations, nil
}
