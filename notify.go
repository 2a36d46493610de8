package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/slack-go/slack"
)

// PostChatWebhook delivers the report body to a chat webhook (Google Chat
// style: plain JSON with a "text" field).
func PostChatWebhook(url, text string) error {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("webhook payload: %w", err)
	}

	resp, err := chatHTTPClient.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("webhook post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("webhook post: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// DeliverReport sends the chat body to every configured destination. A
// failed destination is logged and reported, but does not block the others.
func DeliverReport(cfg Config, result ReportResult) error {
	var errs []string

	if cfg.ChatTarget != "" {
		url := cfg.ChatWebhooks[cfg.ChatTarget]
		if err := PostChatWebhook(url, result.ChatBody); err != nil {
			log.Printf("Error posting to webhook '%s': %v", cfg.ChatTarget, err)
			errs = append(errs, fmt.Sprintf("webhook %s: %v", cfg.ChatTarget, err))
		} else {
			log.Printf("Report delivered to webhook '%s'", cfg.ChatTarget)
		}
	}

	if cfg.SlackBotToken != "" {
		api := slack.New(cfg.SlackBotToken)
		if err := PostSlackReport(api, cfg.SlackChannelID, result); err != nil {
			log.Printf("Error posting to Slack channel %s: %v", cfg.SlackChannelID, err)
			errs = append(errs, fmt.Sprintf("slack: %v", err))
		} else {
			log.Printf("Report delivered to Slack channel %s", cfg.SlackChannelID)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("deliver report: %v", errs)
	}
	return nil
}

// slackPoster is the subset of the Slack client the notifier needs.
type slackPoster interface {
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}

func PostSlackReport(api slackPoster, channelID string, result ReportResult) error {
	_, _, err := api.PostMessage(channelID, slack.MsgOptionText(result.ChatBody, false))
	return err
}

var _ slackPoster = (*slack.Client)(nil)
