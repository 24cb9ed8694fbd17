package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Command string   `env:"CHROME_DEVTOOLS_CLI_TEST_COMMAND" envDefault:"npx"`
	Args    []string `env:"CHROME_DEVTOOLS_CLI_TEST_ARGS" envDefault:"-y pkg" envSeparator:" "`
	Retries int      `env:"CHROME_DEVTOOLS_CLI_TEST_RETRIES" envDefault:"0"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Command != "npx" {
		t.Fatalf("expected default command npx, got %q", cfg.Command)
	}
	if len(cfg.Args) != 2 || cfg.Args[0] != "-y" || cfg.Args[1] != "pkg" {
		t.Fatalf("expected default args, got %v", cfg.Args)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CHROME_DEVTOOLS_CLI_TEST_RETRIES", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvFromUsesSuppliedEnvironment(t *testing.T) {
	t.Setenv("CHROME_DEVTOOLS_CLI_TEST_COMMAND", "from-process")

	var cfg envTestConfig
	err := ParseEnvFrom(&cfg, map[string]string{
		"CHROME_DEVTOOLS_CLI_TEST_ARGS": "--isolated --channel=canary",
	})
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Command != "npx" {
		t.Fatalf("expected process env to be ignored, got %q", cfg.Command)
	}
	if len(cfg.Args) != 2 || cfg.Args[1] != "--channel=canary" {
		t.Fatalf("expected supplied args, got %v", cfg.Args)
	}
}

func TestParseEnvFromNilEnvironment(t *testing.T) {
	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, nil); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Command != "npx" {
		t.Fatalf("expected default command, got %q", cfg.Command)
	}
}
