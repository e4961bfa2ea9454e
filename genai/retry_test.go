package genai

import (
	"context"
	"errors"
	"testing"
)

func TestWithRetryStopsOnSuccess(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), RetryPolicy{MaxAttempts: 3}, "test", func() error {
		calls++
		if calls < 3 {
			return errors.New("boom")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	sentinel := newError("test", KindAPI, errors.New("down"))
	err := WithRetry(context.Background(), RetryPolicy{MaxAttempts: 3}, "test", func() error {
		calls++
		return sentinel
	})
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("expected the last error, got %v", err)
	}
}

func TestWithRetryHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := WithRetry(ctx, RetryPolicy{MaxAttempts: 3}, "test", func() error {
		calls++
		return errors.New("boom")
	})
	if calls != 0 {
		t.Errorf("cancelled context should prevent attempts, got %d", calls)
	}
	if KindOf(err) != KindTimeout {
		t.Errorf("kind = %v, want timeout", KindOf(err))
	}
}

type failingImageGen struct{ calls int }

func (g *failingImageGen) GenerateImage(context.Context, ImageRequest) ([]byte, error) {
	g.calls++
	return nil, newError("generate_image", KindAPI, errors.New("down"))
}

func TestSafeSceneImageReturnsNilOnFailure(t *testing.T) {
	gen := &failingImageGen{}
	img := SafeSceneImage(context.Background(), gen, "Пітух Петро", "ку-ку", "Пітух Олег", 1)
	if img != nil {
		t.Error("expected nil image on failure")
	}
	if gen.calls != 1 {
		t.Errorf("safe wrapper must not retry, calls = %d", gen.calls)
	}
}
