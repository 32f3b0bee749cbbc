package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/relicscope/platform/internal/errors"
	"github.com/relicscope/platform/pkg/pb"
)

const (
	DefaultBaseURL = "https://api.warframe.market"

	// DefaultTimeout bounds each market API request so a hung connection
	// cannot stall the caller.
	DefaultTimeout = 5 * time.Second
)

type itemsResponse struct {
	Data []struct {
		ID      string `json:"id"`
		Vaulted bool   `json:"vaulted"`
		I18N    struct {
			En struct {
				Name string `json:"name"`
			} `json:"en"`
		} `json:"i18n"`
	} `json:"data"`
}

type ducatsResponse struct {
	Payload struct {
		PreviousHour []struct {
			Item   string `json:"item"`
			Ducats int    `json:"ducats"`
		} `json:"previous_hour"`
	} `json:"payload"`
}

// Client fetches the item catalog from the market API.
type Client struct {
	httpClient *resty.Client
}

// NewClient builds a catalog client against baseURL (DefaultBaseURL when
// empty). Requests are bounded by timeout (DefaultTimeout when zero).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// Fetch downloads the item list and merges in ducat values.
func (c *Client) Fetch(ctx context.Context) (*Catalog, error) {
	items := &itemsResponse{}
	if _, err := handleError(c.httpClient.R().
		SetContext(ctx).
		SetResult(items).
		Get("/v2/items")); err != nil {
		return nil, errors.Wrap(err, pb.ErrorCode_PRICE_FETCH_FAILED, "fetch item list")
	}

	ducats := &ducatsResponse{}
	ducatsByID := map[string]int{}
	if _, err := handleError(c.httpClient.R().
		SetContext(ctx).
		SetResult(ducats).
		Get("/v1/tools/ducats")); err == nil {
		for _, d := range ducats.Payload.PreviousHour {
			ducatsByID[d.Item] = d.Ducats
		}
	}

	out := make([]Item, 0, len(items.Data))
	for _, it := range items.Data {
		if it.I18N.En.Name == "" {
			continue
		}
		out = append(out, Item{
			ID:      it.ID,
			Name:    it.I18N.En.Name,
			Ducats:  ducatsByID[it.ID],
			Vaulted: it.Vaulted,
		})
	}
	if len(out) == 0 {
		return nil, errors.New(pb.ErrorCode_PRICE_FETCH_FAILED, "item list empty")
	}
	return New(out), nil
}

// handleError promotes >399 responses to errors; resty leaves them nil.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}
	return res, nil
}
