package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Trials int `env:"MONTYHALL_TEST_TRIALS" envDefault:"250"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Trials != 250 {
		t.Fatalf("expected default trials 250, got %d", cfg.Trials)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("MONTYHALL_TEST_TRIALS", "999")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Trials != 999 {
		t.Fatalf("expected trials 999, got %d", cfg.Trials)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("MONTYHALL_TEST_TRIALS", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
