package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrMalformed reports an exchange response that parsed as HTTP 200 but did
// not carry a usable ticker payload.
var ErrMalformed = errors.New("malformed ticker response")

// Ticker is a normalized latest-price quote for one symbol.
type Ticker struct {
	Exchange string   // Exchange identifier
	Symbol   string   // Canonical trading pair (e.g., "BTC/USDT")
	Last     float64  // Last traded price
	Bid      *float64 // Best bid, nil when not quoted
	Ask      *float64 // Best ask, nil when not quoted
	Raw      []byte   // Unparsed response body
}

// tickerResponse mirrors the Binance 24hr ticker payload. Prices arrive as
// decimal strings.
type tickerResponse struct {
	Symbol   string `json:"symbol"`
	Last     string `json:"lastPrice"`
	BidPrice string `json:"bidPrice"`
	AskPrice string `json:"askPrice"`
}

// GetTicker fetches the latest ticker for a canonical symbol.
func (c *Client) GetTicker(ctx context.Context, symbol string) (*Ticker, error) {
	query := url.Values{}
	query.Set("symbol", NormalizeSymbol(symbol))

	body, err := c.doRequest(ctx, "/api/v3/ticker/24hr", query)
	if err != nil {
		return nil, err
	}

	var resp tickerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	last, ok := parsePrice(resp.Last)
	if !ok {
		return nil, fmt.Errorf("%w: missing last price", ErrMalformed)
	}

	t := &Ticker{
		Exchange: c.name,
		Symbol:   symbol,
		Last:     last,
		Raw:      body,
	}

	// Zero quotes mean "no order on that side"; keep them nil.
	if bid, ok := parsePrice(resp.BidPrice); ok && bid > 0 {
		t.Bid = &bid
	}
	if ask, ok := parsePrice(resp.AskPrice); ok && ask > 0 {
		t.Ask = &ask
	}

	return t, nil
}

// NormalizeSymbol converts a canonical pair to the exchange's wire form:
// "BTC/USDT" -> "BTCUSDT".
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.ReplaceAll(symbol, "/", ""))
}

func parsePrice(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
