// Package relay dispatches named tool invocations and normalizes every
// outcome into the {ok, data|error} envelope.
package relay

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/eurotax/satoshi-bot/internal/model"
)

// ErrInvalidInput marks an invocation rejected before any outbound call is
// attempted. Operations wrap it with a field-specific message.
var ErrInvalidInput = errors.New("invalid input")

// Operation is one named, independently invocable relay action. Invocations
// share no state; any number may run concurrently.
type Operation interface {
	Name() string
	Description() string
	// Invoke runs the operation against raw JSON arguments. A nil error
	// with Result.OK == false is a recovered failure and still counts as
	// a completed invocation. A non-nil error is either ErrInvalidInput
	// or an upstream transport failure.
	Invoke(ctx context.Context, args json.RawMessage) (model.Result, error)
}
