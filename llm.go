package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

const handoverSystemPrompt = `You condense shift-handover notes for a broadcast operations team.
Rewrite the notes as short bullet lines, one issue per line, keeping ticket
numbers, channel names and times exactly as written. Do not add information.
Reply with the bullet lines only, no preamble.`

// SummarizeHandover condenses free-text shift-transfer notes into the short
// bullet list that goes into the report. Callers fall back to the raw notes
// on any error, so this never blocks a report.
func SummarizeHandover(cfg Config, notes string) (string, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return "", nil
	}

	model := cfg.LLMModel
	if model == "" {
		model = defaultAnthropicModel
	}
	log.Printf("llm handover-summary model=%s chars=%d", model, len(notes))

	client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))
	message, err := client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: handoverSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(notes)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			summary := strings.TrimSpace(block.Text)
			log.Printf("llm handover-summary response size=%d tokens_in=%d tokens_out=%d",
				len(summary), message.Usage.InputTokens, message.Usage.OutputTokens)
			if summary == "" {
				break
			}
			return summary, nil
		}
	}
	return "", fmt.Errorf("no text content in Anthropic response")
}
