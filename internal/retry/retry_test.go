package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	p := Policy{MaxAttempts: 3, BaseDelay: time.Hour}
	err := p.Do(context.Background(), func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	p := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}
	err := p.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestDo_Exhausted(t *testing.T) {
	sentinel := errors.New("still down")
	calls := 0
	p := Policy{MaxAttempts: 2, BaseDelay: time.Millisecond}
	err := p.Do(context.Background(), func() error {
		calls++
		return sentinel
	})
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
	if err == nil {
		t.Fatal("expected error after exhaustion")
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("exhaustion error should wrap the last failure, got %v", err)
	}
}

func TestDo_ZeroValueIsSingleAttempt(t *testing.T) {
	sentinel := errors.New("boom")
	calls := 0
	var p Policy
	err := p.Do(context.Background(), func() error {
		calls++
		return sentinel
	})
	if calls != 1 {
		t.Errorf("expected exactly 1 call, got %d", calls)
	}
	// Single-attempt failures come back unwrapped, as if no policy were there.
	if err != sentinel {
		t.Errorf("expected the original error, got %v", err)
	}
}

func TestDo_ContextCancelDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	p := Policy{MaxAttempts: 5, BaseDelay: time.Hour}
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := p.Do(ctx, func() error {
		calls++
		return errors.New("transient")
	})
	if calls != 1 {
		t.Errorf("expected 1 call before cancellation, got %d", calls)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDelay_Growth(t *testing.T) {
	p := Policy{BaseDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond}
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{2, 300 * time.Millisecond}, // capped
		{5, 300 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := p.delay(tt.attempt); got != tt.want {
			t.Errorf("delay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestDelay_Jitter(t *testing.T) {
	p := Policy{BaseDelay: 100 * time.Millisecond, Jitter: 0.5}
	for i := 0; i < 20; i++ {
		d := p.delay(0)
		if d < 100*time.Millisecond || d > 150*time.Millisecond {
			t.Fatalf("jittered delay %v outside [100ms, 150ms]", d)
		}
	}
}
