package relay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eurotax/satoshi-bot/internal/model"
	"github.com/eurotax/satoshi-bot/internal/notifier"
	"github.com/eurotax/satoshi-bot/internal/retry"
)

// AlertOp exposes Telegram delivery as the telegram_alert tool.
type AlertOp struct {
	Sender notifier.Sender
	// Policy bounds delivery attempts. The zero value performs exactly
	// one attempt, which is the default wiring.
	Policy retry.Policy
}

func (o *AlertOp) Name() string { return "telegram_alert" }

func (o *AlertOp) Description() string {
	return "Format an alert and forward it to the configured Telegram chat"
}

func (o *AlertOp) Invoke(ctx context.Context, args json.RawMessage) (model.Result, error) {
	var in model.AlertRequest
	if err := json.Unmarshal(args, &in); err != nil {
		return model.Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if in.Title == "" {
		return model.Result{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Message == "" {
		return model.Result{}, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if in.URL != "" && !notifier.IsValidLinkURL(in.URL) {
		return model.Result{}, fmt.Errorf("%w: url must be an absolute http(s) URL", ErrInvalidInput)
	}

	if !o.Sender.IsConfigured() {
		return model.Failure("Telegram not configured"), nil
	}

	text := notifier.FormatAlert(in)
	err := o.Policy.Do(ctx, func() error {
		return o.Sender.Send(ctx, text)
	})
	if err != nil {
		return model.Result{}, err
	}
	return model.Success(nil), nil
}
