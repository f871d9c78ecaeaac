package model

// AlertRequest is the input to the telegram_alert operation.
type AlertRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// WebhookAlert is an inbound TradingView-style alert payload. Every field
// is optional and may arrive as any JSON scalar; missing or null fields are
// rendered with fixed placeholders.
type WebhookAlert struct {
	Alert     interface{} `json:"alert"`
	Symbol    interface{} `json:"symbol"`
	Price     interface{} `json:"price"`
	Direction interface{} `json:"direction"`
}
