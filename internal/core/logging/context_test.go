package logging

import (
	"context"
	"testing"
)

func TestWithRequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "req-123"

	ctx = WithRequestID(ctx, requestID)
	got := GetRequestID(ctx)

	if got != requestID {
		t.Errorf("GetRequestID() = %q, want %q", got, requestID)
	}
}

func TestWithDishID(t *testing.T) {
	ctx := WithDishID(context.Background(), 0)

	got, ok := GetDishID(ctx)
	if !ok {
		t.Fatal("GetDishID() ok = false, want true")
	}
	if got != 0 {
		t.Errorf("GetDishID() = %d, want 0", got)
	}
}

func TestGetters_Empty(t *testing.T) {
	ctx := context.Background()

	if got := GetRequestID(ctx); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
	if _, ok := GetDishID(ctx); ok {
		t.Error("GetDishID() ok = true, want false")
	}
}
