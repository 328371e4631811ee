package tracing

import (
	"context"
	"testing"
)

func TestInitWithoutEndpoint(t *testing.T) {
	ctx := context.Background()

	tracer, shutdown, err := Init(ctx, "financehelper-test", "")
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	_, span := tracer.Start(ctx, "probe")
	if !span.SpanContext().IsValid() {
		t.Error("expected a recording span with a valid context")
	}
	span.End()

	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
}
