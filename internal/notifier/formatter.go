package notifier

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/eurotax/satoshi-bot/internal/model"
)

// FormatAlert renders an alert request into a Telegram HTML message. Title,
// message, and url are escaped before they are embedded so stray markup in
// caller input cannot break rendering or inject tags.
func FormatAlert(req model.AlertRequest) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🚨 <b>%s</b>\n\n", html.EscapeString(req.Title)))
	b.WriteString(html.EscapeString(req.Message))
	if req.URL != "" {
		u := html.EscapeString(req.URL)
		b.WriteString(fmt.Sprintf("\n\n🔗 <a href=\"%s\">%s</a>", u, u))
	}
	return b.String()
}

// FormatWebhookAlert renders an inbound TradingView-style alert. Absent or
// null fields fall back to fixed placeholders.
func FormatWebhookAlert(w model.WebhookAlert) string {
	var b strings.Builder
	b.WriteString(fieldOrDefault(w.Alert, "🚨 Alert!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("🔹Symbol: %s\n", fieldOrDefault(w.Symbol, "Unknown Symbol")))
	b.WriteString(fmt.Sprintf("🔹Price: %s\n", fieldOrDefault(w.Price, "Unknown Price")))
	b.WriteString(fmt.Sprintf("🔹Direction: %s", fieldOrDefault(w.Direction, "Unknown Direction")))
	return b.String()
}

func fieldOrDefault(v interface{}, fallback string) string {
	if v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return html.EscapeString(s)
	}
	return html.EscapeString(fmt.Sprint(v))
}

// IsValidLinkURL reports whether s is an absolute http or https URL with a
// host part.
func IsValidLinkURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
