package config

import (
	"context"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewConfig(ctx, cancel)
	if c.Threads != 10 {
		t.Errorf("Threads = %d, want 10", c.Threads)
	}
	if c.OutputFormat != "json" {
		t.Errorf("OutputFormat = %q, want json", c.OutputFormat)
	}
	if c.Headers == nil {
		t.Error("Headers should be initialized, not nil")
	}
	if c.SuccessCodes == nil {
		t.Error("SuccessCodes should be initialized, not nil")
	}
}

func TestSetContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := NewConfig(context.Background(), func() {})
	c.SetContext(ctx, cancel)
	if c.Context != ctx {
		t.Error("SetContext did not update Context")
	}
	cancel()
}
