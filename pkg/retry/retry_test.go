package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPolicy_Do(t *testing.T) {
	t.Run("success on first attempt", func(t *testing.T) {
		calls := 0
		p := Policy{MaxRetries: 3, Delay: time.Millisecond}
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		p := Policy{MaxRetries: 3, Delay: time.Millisecond}
		err := p.Do(context.Background(), func(context.Context) error {
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
			t.Fatalf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("exhausts retries and returns last error", func(t *testing.T) {
		calls := 0
		last := errors.New("still failing")
		p := Policy{MaxRetries: 2, Delay: time.Millisecond}
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return last
		})
		if !errors.Is(err, last) {
			t.Fatalf("expected last error, got %v", err)
		}
		if calls != 3 {
			t.Fatalf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("zero policy runs once", func(t *testing.T) {
		calls := 0
		var p Policy
		_ = p.Do(context.Background(), func(context.Context) error {
			calls++
			return errors.New("nope")
		})
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})

	t.Run("context cancellation stops retries", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		p := Policy{MaxRetries: 5, Delay: 50 * time.Millisecond}
		calls := 0
		errc := make(chan error, 1)
		go func() {
			errc <- p.Do(ctx, func(context.Context) error {
				calls++
				return errors.New("transient")
			})
		}()
		time.Sleep(10 * time.Millisecond)
		cancel()
		if err := <-errc; !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
