package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath          string `yaml:"db_path"`
	ReportOutputDir string `yaml:"report_output_dir"`

	Timezone       string `yaml:"timezone"`
	ShiftSplitHour int    `yaml:"shift_split_hour"`
	FetchLimit     int    `yaml:"fetch_limit"`

	TeamName        string   `yaml:"team_name"`
	Reporter        string   `yaml:"reporter"`
	ReportSchedule  string   `yaml:"report_schedule"` // 5-field cron, empty disables
	HandoverPath    string   `yaml:"handover_notes_path"`
	StatusChecklist []string `yaml:"status_checklist"`

	ChatWebhooks map[string]string `yaml:"chat_webhooks"`
	ChatTarget   string            `yaml:"chat_target"`

	SlackBotToken  string `yaml:"slack_bot_token"`
	SlackChannelID string `yaml:"slack_channel_id"`

	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	LLMModel        string `yaml:"llm_model"`

	Location *time.Location `yaml:"-"` // computed from Timezone, not from YAML
}

func LoadConfig() Config {
	var cfg Config

	// 0 (midnight) is a legal split hour, so "not set" needs its own value.
	cfg.ShiftSplitHour = -1

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.ReportOutputDir, "REPORT_OUTPUT_DIR")
	envOverride(&cfg.Timezone, "TIMEZONE")
	envOverrideInt(&cfg.ShiftSplitHour, "SHIFT_SPLIT_HOUR")
	envOverrideInt(&cfg.FetchLimit, "FETCH_LIMIT")
	envOverride(&cfg.TeamName, "TEAM_NAME")
	envOverride(&cfg.Reporter, "REPORTER")
	envOverride(&cfg.ReportSchedule, "REPORT_SCHEDULE")
	envOverride(&cfg.HandoverPath, "HANDOVER_NOTES_PATH")
	envOverride(&cfg.ChatTarget, "CHAT_TARGET")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.SlackChannelID, "SLACK_CHANNEL_ID")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&cfg.LLMModel, "LLM_MODEL")

	// Defaults
	if cfg.DBPath == "" {
		cfg.DBPath = "./shiftops.db"
	}
	if cfg.ReportOutputDir == "" {
		cfg.ReportOutputDir = "./reports"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Bangkok"
	}
	if cfg.ShiftSplitHour == -1 {
		cfg.ShiftSplitHour = 10
	}
	if cfg.FetchLimit == 0 {
		cfg.FetchLimit = 1000
	}
	if cfg.TeamName == "" {
		cfg.TeamName = "Broadcast Ops"
	}
	if cfg.Reporter == "" {
		cfg.Reporter = "shiftops"
	}

	// Validate
	if strings.EqualFold(cfg.Timezone, "Local") {
		cfg.Location = time.Local
	} else {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			log.Fatalf("invalid timezone '%s': %v", cfg.Timezone, err)
		}
		cfg.Location = loc
	}
	if cfg.ShiftSplitHour < 0 || cfg.ShiftSplitHour > 23 {
		log.Fatalf("invalid shift_split_hour '%d': must be 0-23", cfg.ShiftSplitHour)
	}
	if cfg.FetchLimit < 1 {
		log.Fatalf("invalid fetch_limit '%d': must be >= 1", cfg.FetchLimit)
	}
	if cfg.ChatTarget != "" {
		if _, ok := cfg.ChatWebhooks[cfg.ChatTarget]; !ok {
			log.Fatalf("chat_target '%s' has no entry in chat_webhooks", cfg.ChatTarget)
		}
	}
	if cfg.SlackBotToken != "" && cfg.SlackChannelID == "" {
		log.Fatalf("slack_channel_id is required when slack_bot_token is set")
	}

	return cfg
}

func (c Config) WindowSpec() WindowSpec {
	return WindowSpec{SplitHour: c.ShiftSplitHour, Location: c.Location}
}

func (c Config) LLMConfigured() bool {
	return c.AnthropicAPIKey != ""
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}
