package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/eurotax/satoshi-bot/internal/model"
)

// ScreenerFetcher implements PairFetcher using the public DexScreener API.
type ScreenerFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewScreenerFetcher creates a new fetcher with optional proxy support.
func NewScreenerFetcher(baseURL, proxyURL string) *ScreenerFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &ScreenerFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

func (f *ScreenerFetcher) Name() string { return "dexscreener" }

// screenerPair mirrors the subset of the DexScreener pair payload the relay
// forwards. Price and volume fields stay raw JSON so they pass through
// byte for byte.
type screenerPair struct {
	BaseToken struct {
		Symbol string `json:"symbol"`
	} `json:"baseToken"`
	QuoteToken struct {
		Symbol string `json:"symbol"`
	} `json:"quoteToken"`
	PriceUsd    json.RawMessage `json:"priceUsd"`
	PriceNative json.RawMessage `json:"priceNative"`
	Liquidity   struct {
		Usd json.RawMessage `json:"usd"`
	} `json:"liquidity"`
	Fdv    json.RawMessage `json:"fdv"`
	Volume struct {
		H24 json.RawMessage `json:"h24"`
	} `json:"volume"`
	PriceChange json.RawMessage `json:"priceChange"`
	URL         string          `json:"url"`
}

// screenerResponse is the response structure from the pairs endpoint. The
// pairs field may be null for unknown addresses.
type screenerResponse struct {
	Pairs []screenerPair `json:"pairs"`
}

// FetchPair performs a single GET against the pairs endpoint and reshapes the
// first returned entry. A 2xx response with zero entries yields
// ErrPairNotFound.
func (f *ScreenerFetcher) FetchPair(ctx context.Context, chainID, pairAddress string) (*model.PairSummary, error) {
	u := fmt.Sprintf("%s/latest/dex/pairs/%s/%s",
		f.BaseURL, url.PathEscape(chainID), url.PathEscape(pairAddress))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dexscreener fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dexscreener read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dexscreener: status %d, body: %s", resp.StatusCode, string(body))
	}

	var payload screenerResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("dexscreener decode: %w", err)
	}
	if len(payload.Pairs) == 0 {
		return nil, ErrPairNotFound
	}

	first := payload.Pairs[0]
	return &model.PairSummary{
		Pair:         first.BaseToken.Symbol + "/" + first.QuoteToken.Symbol,
		PriceUsd:     first.PriceUsd,
		PriceNative:  first.PriceNative,
		LiquidityUsd: first.Liquidity.Usd,
		Fdv:          first.Fdv,
		Volume24h:    first.Volume.H24,
		PriceChange:  first.PriceChange,
		URL:          first.URL,
	}, nil
}
