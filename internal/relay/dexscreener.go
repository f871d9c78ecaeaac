package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eurotax/satoshi-bot/internal/collector"
	"github.com/eurotax/satoshi-bot/internal/model"
)

// PairArgs are the arguments to dexscreener_pair.
type PairArgs struct {
	ChainID     string `json:"chainId"`
	PairAddress string `json:"pairAddress"`
}

// PairOp exposes DEX pair lookups as the dexscreener_pair tool.
type PairOp struct {
	Fetcher collector.PairFetcher
}

func (o *PairOp) Name() string { return "dexscreener_pair" }

func (o *PairOp) Description() string {
	return "Fetch current stats for a DEX pair by chain id and pair address"
}

func (o *PairOp) Invoke(ctx context.Context, args json.RawMessage) (model.Result, error) {
	var in PairArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return model.Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if in.ChainID == "" {
		return model.Result{}, fmt.Errorf("%w: chainId is required", ErrInvalidInput)
	}
	if in.PairAddress == "" {
		return model.Result{}, fmt.Errorf("%w: pairAddress is required", ErrInvalidInput)
	}

	summary, err := o.Fetcher.FetchPair(ctx, in.ChainID, in.PairAddress)
	if errors.Is(err, collector.ErrPairNotFound) {
		return model.Failure("Pair not found"), nil
	}
	if err != nil {
		return model.Result{}, err
	}
	return model.Success(summary), nil
}
