package collector

import (
	"context"
	"errors"

	"github.com/eurotax/satoshi-bot/internal/model"
)

// Sentinel errors for upstream responses that arrived intact but carried no
// usable entry. Callers distinguish these from transport failures.
var (
	ErrPairNotFound   = errors.New("pair not found")
	ErrTickerNotFound = errors.New("ticker not found")
)

// PairFetcher defines the interface for fetching a single DEX pair.
type PairFetcher interface {
	FetchPair(ctx context.Context, chainID, pairAddress string) (*model.PairSummary, error)
	Name() string
}

// TickerFetcher defines the interface for fetching a single derivatives ticker.
type TickerFetcher interface {
	FetchTicker(ctx context.Context, symbol string) (*model.TickerSummary, error)
	Name() string
}

// MockPairFetcher returns controllable fixed data for development and testing.
type MockPairFetcher struct {
	Summary *model.PairSummary
	Err     error
	Calls   int
}

func (m *MockPairFetcher) Name() string { return "mock" }

func (m *MockPairFetcher) FetchPair(_ context.Context, _, _ string) (*model.PairSummary, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summary, nil
}

// MockTickerFetcher returns controllable fixed data for development and testing.
type MockTickerFetcher struct {
	Summary *model.TickerSummary
	Err     error
	Calls   int
}

func (m *MockTickerFetcher) Name() string { return "mock" }

func (m *MockTickerFetcher) FetchTicker(_ context.Context, _ string) (*model.TickerSummary, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summary, nil
}
