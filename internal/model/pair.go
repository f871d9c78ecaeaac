package model

import "encoding/json"

// PairSummary is the reshaped view of the first pair entry returned by
// DexScreener. Price and volume fields carry the raw upstream JSON values,
// forwarded without parsing or unit conversion.
type PairSummary struct {
	Pair         string          `json:"pair"`
	PriceUsd     json.RawMessage `json:"priceUsd,omitempty"`
	PriceNative  json.RawMessage `json:"priceNative,omitempty"`
	LiquidityUsd json.RawMessage `json:"liquidityUsd,omitempty"`
	Fdv          json.RawMessage `json:"fdv,omitempty"`
	Volume24h    json.RawMessage `json:"volume24h,omitempty"`
	PriceChange  json.RawMessage `json:"priceChange,omitempty"`
	URL          string          `json:"url,omitempty"`
}
