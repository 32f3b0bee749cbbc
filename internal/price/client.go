// Package price resolves platinum and ducat values for recognized items
package price

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/relicscope/platform/internal/catalog"
	"github.com/relicscope/platform/internal/errors"
	"github.com/relicscope/platform/internal/resilience"
	"github.com/relicscope/platform/pkg/pb"
)

// Entry is a resolved valuation for one item. Stale marks entries served
// past their TTL because a refresh failed.
type Entry struct {
	Item      string    `json:"item"`
	Platinum  float64   `json:"platinum"`
	Ducats    int       `json:"ducats"`
	Vaulted   bool      `json:"vaulted"`
	FetchedAt time.Time `json:"fetched_at"`
	Stale     bool      `json:"stale"`
}

// Source produces a fresh quote for an item.
type Source interface {
	Quote(ctx context.Context, item string) (Entry, error)
}

type ducatsResponse struct {
	Payload struct {
		PreviousHour []struct {
			Item    string  `json:"item"`
			WaPrice float64 `json:"wa_price"`
			Ducats  int     `json:"ducats"`
		} `json:"previous_hour"`
	} `json:"payload"`
}

// Client quotes items from the market API. The API exposes no per-item
// platinum endpoint, so each quote reads the hourly averages table and
// picks the requested item out of it.
type Client struct {
	httpClient *resty.Client
	cat        *catalog.Catalog
}

// NewClient builds a market quote source. cat maps item names to market ids
// and supplies fallback ducat values. Quote requests are bounded by timeout
// (catalog.DefaultTimeout when zero) so a hung fetch cannot stall a
// pipeline pass.
func NewClient(baseURL string, cat *catalog.Catalog, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = catalog.DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = catalog.DefaultTimeout
	}
	return &Client{
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		cat: cat,
	}
}

// Quote fetches the current valuation for item.
func (c *Client) Quote(ctx context.Context, item string) (Entry, error) {
	known, ok := c.cat.Lookup(item)
	if !ok {
		return Entry{}, errors.Newf(pb.ErrorCode_NOT_FOUND, "unknown item: %s", item)
	}

	result := &ducatsResponse{}
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		Get("/v1/tools/ducats")
	if err != nil {
		return Entry{}, errors.Wrap(err, pb.ErrorCode_PRICE_FETCH_FAILED, "fetch quotes")
	}
	if resp.IsError() {
		statusErr := &resilience.HTTPStatusError{StatusCode: resp.StatusCode(), Message: resp.Status()}
		code := pb.ErrorCode_PRICE_FETCH_FAILED
		if resp.StatusCode() == 429 {
			code = pb.ErrorCode_PRICE_RATE_LIMITED
		}
		return Entry{}, errors.Wrap(statusErr, code, "fetch quotes")
	}

	for _, q := range result.Payload.PreviousHour {
		if q.Item == known.ID {
			ducats := q.Ducats
			if ducats == 0 {
				ducats = known.Ducats
			}
			return Entry{
				Item:      known.Name,
				Platinum:  q.WaPrice,
				Ducats:    ducats,
				Vaulted:   known.Vaulted,
				FetchedAt: time.Now(),
			}, nil
		}
	}
	// Not traded in the last hour; fall back to catalog ducats with no
	// platinum signal rather than failing the whole valuation.
	return Entry{
		Item:      known.Name,
		Ducats:    known.Ducats,
		Vaulted:   known.Vaulted,
		FetchedAt: time.Now(),
	}, nil
}
