package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing-config.yaml"))
	t.Setenv("TIMEZONE", "UTC")

	cfg := LoadConfig()

	if cfg.DBPath != "./shiftops.db" {
		t.Fatalf("unexpected db path default: %q", cfg.DBPath)
	}
	if cfg.ReportOutputDir != "./reports" {
		t.Fatalf("unexpected report output dir default: %q", cfg.ReportOutputDir)
	}
	if cfg.ShiftSplitHour != 10 {
		t.Fatalf("unexpected shift split hour default: %d", cfg.ShiftSplitHour)
	}
	if cfg.FetchLimit != 1000 {
		t.Fatalf("unexpected fetch limit default: %d", cfg.FetchLimit)
	}
	if cfg.TeamName != "Broadcast Ops" {
		t.Fatalf("unexpected team name default: %q", cfg.TeamName)
	}
	if cfg.Location == nil || cfg.Location.String() != "UTC" {
		t.Fatalf("unexpected location: %v", cfg.Location)
	}

	spec := cfg.WindowSpec()
	if spec.SplitHour != 10 || spec.Location != cfg.Location {
		t.Fatalf("WindowSpec mismatch: %+v", spec)
	}
}

func TestLoadConfigYAMLAndEnvOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
team_name: "YAML Team"
timezone: "Asia/Bangkok"
db_path: "/tmp/yaml.db"
report_output_dir: "/tmp/yaml-reports"
shift_split_hour: 6
chat_target: "group_all"
chat_webhooks:
  group_all: "https://chat.example.com/hook/all"
status_checklist:
  - "Encoders: OK"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_PATH", cfgPath)
	t.Setenv("TEAM_NAME", "Env Team")
	t.Setenv("DB_PATH", "/tmp/env.db")
	t.Setenv("SHIFT_SPLIT_HOUR", "8")

	cfg := LoadConfig()

	if cfg.TeamName != "Env Team" {
		t.Fatalf("expected team name from env override, got %q", cfg.TeamName)
	}
	if cfg.DBPath != "/tmp/env.db" {
		t.Fatalf("expected db path from env override, got %q", cfg.DBPath)
	}
	if cfg.ReportOutputDir != "/tmp/yaml-reports" {
		t.Fatalf("expected report output dir from yaml, got %q", cfg.ReportOutputDir)
	}
	if cfg.ShiftSplitHour != 8 {
		t.Fatalf("expected shift split hour from env override, got %d", cfg.ShiftSplitHour)
	}
	if cfg.ChatWebhooks["group_all"] != "https://chat.example.com/hook/all" {
		t.Fatalf("expected webhook map from yaml, got %+v", cfg.ChatWebhooks)
	}
	if len(cfg.StatusChecklist) != 1 || cfg.StatusChecklist[0] != "Encoders: OK" {
		t.Fatalf("expected status checklist from yaml, got %+v", cfg.StatusChecklist)
	}
	if cfg.Location == nil || cfg.Location.String() != "Asia/Bangkok" {
		t.Fatalf("unexpected location: %v", cfg.Location)
	}
}

func TestLoadConfigMidnightSplitHour(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
timezone: "UTC"
shift_split_hour: 0
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", cfgPath)

	cfg := LoadConfig()

	// 0 means midnight, not "use the default".
	if cfg.ShiftSplitHour != 0 {
		t.Fatalf("expected split hour 0 to survive, got %d", cfg.ShiftSplitHour)
	}
}

func TestEnvOverrideHelpers(t *testing.T) {
	s := "initial"
	t.Setenv("SO_TEST_STR", "value")
	envOverride(&s, "SO_TEST_STR")
	if s != "value" {
		t.Fatalf("envOverride failed, got %q", s)
	}

	unset := "keep"
	envOverride(&unset, "SO_TEST_UNSET")
	if unset != "keep" {
		t.Fatalf("envOverride clobbered value, got %q", unset)
	}

	i := 1
	t.Setenv("SO_TEST_INT", "42")
	envOverrideInt(&i, "SO_TEST_INT")
	if i != 42 {
		t.Fatalf("envOverrideInt failed, got %d", i)
	}
}

func TestLLMConfigured(t *testing.T) {
	if (Config{}).LLMConfigured() {
		t.Fatal("empty config should not report LLM configured")
	}
	if !(Config{AnthropicAPIKey: "key"}).LLMConfigured() {
		t.Fatal("expected LLM configured with API key")
	}
}
