package relay

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/eurotax/satoshi-bot/internal/collector"
	"github.com/eurotax/satoshi-bot/internal/model"
	"github.com/eurotax/satoshi-bot/internal/notifier"
	"github.com/eurotax/satoshi-bot/internal/retry"

	"github.com/stretchr/testify/assert"
)

func TestPairOpSuccess(t *testing.T) {
	fetcher := &collector.MockPairFetcher{
		Summary: &model.PairSummary{
			Pair:     "SOL/USDC",
			PriceUsd: json.RawMessage(`"142.37"`),
			URL:      "https://dexscreener.com/solana/abc123",
		},
	}
	op := &PairOp{Fetcher: fetcher}

	res, err := op.Invoke(context.Background(), json.RawMessage(`{"chainId":"solana","pairAddress":"abc123"}`))

	assert.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, 1, fetcher.Calls)
	summary := res.Data.(*model.PairSummary)
	assert.Equal(t, "SOL/USDC", summary.Pair)
}

func TestPairOpNotFound(t *testing.T) {
	op := &PairOp{Fetcher: &collector.MockPairFetcher{Err: collector.ErrPairNotFound}}

	res, err := op.Invoke(context.Background(), json.RawMessage(`{"chainId":"solana","pairAddress":"missing"}`))

	assert.NoError(t, err)
	assert.Equal(t, model.Result{OK: false, Error: "Pair not found"}, res)
}

func TestPairOpTransportFailure(t *testing.T) {
	upstream := errors.New("dexscreener fetch: connection refused")
	op := &PairOp{Fetcher: &collector.MockPairFetcher{Err: upstream}}

	_, err := op.Invoke(context.Background(), json.RawMessage(`{"chainId":"solana","pairAddress":"abc123"}`))

	assert.ErrorIs(t, err, upstream)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestPairOpInvalidInput(t *testing.T) {
	fetcher := &collector.MockPairFetcher{}
	op := &PairOp{Fetcher: fetcher}

	tests := []struct {
		name string
		args string
	}{
		{"missing chainId", `{"pairAddress":"abc123"}`},
		{"missing pairAddress", `{"chainId":"solana"}`},
		{"malformed json", `{"chainId":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := op.Invoke(context.Background(), json.RawMessage(tt.args))
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Equal(t, 0, fetcher.Calls)
}

func TestAlertOpNotConfigured(t *testing.T) {
	sender := &notifier.MockSender{Configured: false}
	op := &AlertOp{Sender: sender}

	res, err := op.Invoke(context.Background(), json.RawMessage(`{"title":"t","message":"m"}`))

	assert.NoError(t, err)
	assert.Equal(t, model.Result{OK: false, Error: "Telegram not configured"}, res)
	assert.Equal(t, 0, sender.Calls(), "no outbound call may be attempted")
}

func TestAlertOpSend(t *testing.T) {
	sender := &notifier.MockSender{Configured: true}
	op := &AlertOp{Sender: sender}

	res, err := op.Invoke(context.Background(), json.RawMessage(`{"title":"Breakout","message":"SOL moving","url":"https://example.com"}`))

	assert.NoError(t, err)
	assert.True(t, res.OK)
	assert.Nil(t, res.Data)
	sent := sender.Sent()
	assert.Len(t, sent, 1)
	assert.Contains(t, sent[0], "<b>Breakout</b>")
	assert.Contains(t, sent[0], "https://example.com")
}

func TestAlertOpInvalidInput(t *testing.T) {
	sender := &notifier.MockSender{Configured: true}
	op := &AlertOp{Sender: sender}

	tests := []struct {
		name string
		args string
	}{
		{"missing title", `{"message":"m"}`},
		{"missing message", `{"title":"t"}`},
		{"bad url scheme", `{"title":"t","message":"m","url":"ftp://example.com"}`},
		{"url not absolute", `{"title":"t","message":"m","url":"not a url"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := op.Invoke(context.Background(), json.RawMessage(tt.args))
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Equal(t, 0, sender.Calls())
}

func TestAlertOpDeliveryFailure(t *testing.T) {
	sender := &notifier.MockSender{Configured: true, Err: errors.New("telegram API error: status 500")}
	op := &AlertOp{Sender: sender}

	_, err := op.Invoke(context.Background(), json.RawMessage(`{"title":"t","message":"m"}`))

	assert.Error(t, err)
	assert.Equal(t, 1, sender.Calls(), "default wiring performs exactly one attempt")
}

func TestAlertOpRetryWiring(t *testing.T) {
	sender := &notifier.MockSender{Configured: true, Err: errors.New("still down")}
	op := &AlertOp{
		Sender: sender,
		Policy: retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond},
	}

	_, err := op.Invoke(context.Background(), json.RawMessage(`{"title":"t","message":"m"}`))

	assert.Error(t, err)
	assert.Equal(t, 3, sender.Calls())
}

func TestTickerOpSuccess(t *testing.T) {
	op := &TickerOp{Fetcher: &collector.MockTickerFetcher{
		Summary: &model.TickerSummary{
			Symbol:       "BTCUSDT",
			LastPrice:    json.RawMessage(`"67123.50"`),
			Change24hPct: 2.34,
			Direction:    "📈 Pump",
		},
	}}

	res, err := op.Invoke(context.Background(), json.RawMessage(`{"symbol":"BTCUSDT"}`))

	assert.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, "BTCUSDT", res.Data.(*model.TickerSummary).Symbol)
}

func TestTickerOpNotFound(t *testing.T) {
	op := &TickerOp{Fetcher: &collector.MockTickerFetcher{Err: collector.ErrTickerNotFound}}

	res, err := op.Invoke(context.Background(), json.RawMessage(`{"symbol":"NOSUCH"}`))

	assert.NoError(t, err)
	assert.Equal(t, model.Result{OK: false, Error: "Ticker not found"}, res)
}

func TestRegistry(t *testing.T) {
	pair := &PairOp{Fetcher: &collector.MockPairFetcher{}}
	alert := &AlertOp{Sender: &notifier.MockSender{}}
	ticker := &TickerOp{Fetcher: &collector.MockTickerFetcher{}}
	r := NewRegistry(alert, ticker, pair)

	assert.Equal(t, []string{"bybit_ticker", "dexscreener_pair", "telegram_alert"}, r.Names())
	assert.Same(t, pair, r.Get("dexscreener_pair"))
	assert.Nil(t, r.Get("no_such_tool"))

	infos := r.Describe()
	assert.Len(t, infos, 3)
	assert.Equal(t, "bybit_ticker", infos[0].Name)
	assert.NotEmpty(t, infos[0].Description)
}

func TestRegistryDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry(
			&AlertOp{Sender: &notifier.MockSender{}},
			&AlertOp{Sender: &notifier.MockSender{}},
		)
	})
}
