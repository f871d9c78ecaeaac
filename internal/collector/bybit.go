package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/eurotax/satoshi-bot/internal/model"
)

// BybitFetcher implements TickerFetcher using the Bybit v5 market API.
type BybitFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewBybitFetcher creates a new fetcher with optional proxy support.
func NewBybitFetcher(baseURL, proxyURL string) *BybitFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &BybitFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

func (f *BybitFetcher) Name() string { return "bybit" }

// bybitTickers is the response structure from the v5 tickers endpoint.
type bybitTickers struct {
	Result struct {
		List []struct {
			Symbol       string          `json:"symbol"`
			LastPrice    json.RawMessage `json:"lastPrice"`
			Price24hPcnt string          `json:"price24hPcnt"`
		} `json:"list"`
	} `json:"result"`
}

// FetchTicker performs a single GET for a linear-category symbol and reshapes
// the first returned entry. An intact response with an empty list yields
// ErrTickerNotFound.
func (f *BybitFetcher) FetchTicker(ctx context.Context, symbol string) (*model.TickerSummary, error) {
	u := fmt.Sprintf("%s/v5/market/tickers?category=linear&symbol=%s",
		f.BaseURL, url.QueryEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bybit fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("bybit read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bybit: status %d, body: %s", resp.StatusCode, string(body))
	}

	var payload bybitTickers
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("bybit decode: %w", err)
	}
	if len(payload.Result.List) == 0 {
		return nil, ErrTickerNotFound
	}

	first := payload.Result.List[0]
	changePct := 0.0
	if v, err := strconv.ParseFloat(first.Price24hPcnt, 64); err == nil {
		changePct = v * 100
	}
	direction := "📈 Pump"
	if changePct < 0 {
		direction = "📉 Dump"
	}
	return &model.TickerSummary{
		Symbol:       first.Symbol,
		LastPrice:    first.LastPrice,
		Change24hPct: changePct,
		Direction:    direction,
	}, nil
}
