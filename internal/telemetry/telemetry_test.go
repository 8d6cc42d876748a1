package telemetry

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestSetupWithoutKey(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{Dataset: "test"})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Setup() error = %v, want ErrDisabled", err)
	}
	if shutdown != nil {
		t.Error("Setup() returned a shutdown func while disabled")
	}
}

func TestConfigHeaders(t *testing.T) {
	tests := []struct {
		cfg     Config
		dataset string
	}{
		{Config{APIKey: "k"}, serviceName},
		{Config{APIKey: "k", Dataset: "caves"}, "caves"},
	}
	for _, tt := range tests {
		h := tt.cfg.headers()
		if h["x-honeycomb-team"] != "k" {
			t.Errorf("team header = %q, want %q", h["x-honeycomb-team"], "k")
		}
		if h["x-honeycomb-dataset"] != tt.dataset {
			t.Errorf("dataset header = %q, want %q", h["x-honeycomb-dataset"], tt.dataset)
		}
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()
	if span == nil {
		t.Fatal("Tracer().Start() returned a nil span")
	}
}

func TestSeedAttribute(t *testing.T) {
	tests := []struct {
		seed uint64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{math.MaxInt64 + 1, "9223372036854775808"},
		{math.MaxUint64, "18446744073709551615"},
	}
	for _, tt := range tests {
		kv := Seed(tt.seed)
		if kv.Key != "world.seed" {
			t.Errorf("Seed(%d).Key = %q, want world.seed", tt.seed, kv.Key)
		}
		if got := kv.Value.AsString(); got != tt.want {
			t.Errorf("Seed(%d) = %q, want %q", tt.seed, got, tt.want)
		}
	}
}
