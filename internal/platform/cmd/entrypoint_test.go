package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Trials int   `env:"CMD_TEST_TRIALS" envDefault:"100"`
	Seed   int64 `env:"CMD_TEST_SEED" envDefault:"42"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_TRIALS", "500")
	t.Setenv("CMD_TEST_SEED", "7")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.IntVar(&cfgRef.Trials, "trials", cfgRef.Trials, "trials")
	fs.Int64Var(&cfgRef.Seed, "seed", cfgRef.Seed, "seed")

	if err := ParseArgs(fs, []string{"-trials", "900"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Trials != 900 {
		t.Fatalf("expected flag value for trials, got %d", cfgRef.Trials)
	}
	if cfgRef.Seed != 7 {
		t.Fatalf("expected env value for seed, got %d", cfgRef.Seed)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected parse config to reject nil target")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceSimulate, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryPropagatesRunError(t *testing.T) {
	t.Setenv("MONTYHALL_OTEL_ENDPOINT", "")

	wantErr := errors.New("boom")
	err := RunWithTelemetry(context.Background(), ServiceSimulate, func(context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected run error to propagate, got %v", err)
	}
}
