package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eurotax/satoshi-bot/internal/collector"
	"github.com/eurotax/satoshi-bot/internal/model"
)

// TickerArgs are the arguments to bybit_ticker.
type TickerArgs struct {
	Symbol string `json:"symbol"`
}

// TickerOp exposes Bybit linear ticker lookups as the bybit_ticker tool.
type TickerOp struct {
	Fetcher collector.TickerFetcher
}

func (o *TickerOp) Name() string { return "bybit_ticker" }

func (o *TickerOp) Description() string {
	return "Fetch last price and 24h change for a Bybit linear symbol"
}

func (o *TickerOp) Invoke(ctx context.Context, args json.RawMessage) (model.Result, error) {
	var in TickerArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return model.Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if in.Symbol == "" {
		return model.Result{}, fmt.Errorf("%w: symbol is required", ErrInvalidInput)
	}

	summary, err := o.Fetcher.FetchTicker(ctx, in.Symbol)
	if errors.Is(err, collector.ErrTickerNotFound) {
		return model.Failure("Ticker not found"), nil
	}
	if err != nil {
		return model.Result{}, err
	}
	return model.Success(summary), nil
}
