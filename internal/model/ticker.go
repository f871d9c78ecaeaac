package model

import "encoding/json"

// TickerSummary is the reshaped view of a single Bybit linear ticker.
type TickerSummary struct {
	Symbol       string          `json:"symbol"`
	LastPrice    json.RawMessage `json:"lastPrice,omitempty"`
	Change24hPct float64         `json:"change24hPct"`
	Direction    string          `json:"direction"`
}
