// Package services holds outbound integrations: webhook notifications
// for workflow events.
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/taufanAli65/social-media-todo-api/internal/types"
)

type DiscordWebhookField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type DiscordEmbed struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Color       int                   `json:"color"`
	Fields      []DiscordWebhookField `json:"fields"`
	Timestamp   string                `json:"timestamp"`
}

type DiscordWebhookRequest struct {
	Username string         `json:"username"`
	Embeds   []DiscordEmbed `json:"embeds"`
}

type SlackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

type SlackAttachment struct {
	Color     string       `json:"color"`
	Title     string       `json:"title"`
	Fields    []SlackField `json:"fields"`
	Timestamp int64        `json:"ts"`
}

type SlackWebhookRequest struct {
	Username    string            `json:"username"`
	Text        string            `json:"text"`
	Attachments []SlackAttachment `json:"attachments"`
}

const (
	ColorBlue  = 3447003  // #3498DB - assignment
	ColorGreen = 65280    // #00FF00 - done
	ColorRed   = 16711680 // #FF0000 - deletion

	Username = "Content Tracker"
)

// WebhookNotifier posts workflow events to Discord and/or Slack
// incoming webhooks. Empty URLs disable the corresponding channel.
// It satisfies workflow.Notifier; sends happen in the background so
// request handling never waits on a chat service.
type WebhookNotifier struct {
	DiscordURL string
	SlackURL   string
}

func (n *WebhookNotifier) Notify(event types.ContentEvent) {
	if n.DiscordURL == "" && n.SlackURL == "" {
		return
	}

	go func() {
		if n.DiscordURL != "" {
			if err := sendDiscordWebhook(n.DiscordURL, discordPayload(event)); err != nil {
				log.Printf("Discord webhook failed: %v", err)
			}
		}

		if n.SlackURL != "" {
			if err := sendSlackWebhook(n.SlackURL, slackPayload(event)); err != nil {
				log.Printf("Slack webhook failed: %v", err)
			}
		}
	}()
}

func eventHeadline(event types.ContentEvent) (string, int) {
	switch event.Type {
	case "assigned":
		return "📌 Content assigned", ColorBlue
	case "reassigned":
		return "🔁 Content reassigned", ColorBlue
	case "status":
		if event.Status == types.StatusDone {
			return "✅ Content completed", ColorGreen
		}
		return "🔄 Content status updated", ColorBlue
	case "deleted":
		return "🗑️ Content deleted", ColorRed
	}
	return "Content event", ColorBlue
}

func discordPayload(event types.ContentEvent) DiscordWebhookRequest {
	headline, color := eventHeadline(event)

	fields := []DiscordWebhookField{
		{Name: "Content", Value: event.Title, Inline: true},
	}
	if event.UserID != "" {
		fields = append(fields, DiscordWebhookField{Name: "Assignee", Value: event.UserID, Inline: true})
	}
	if event.Status != "" {
		fields = append(fields, DiscordWebhookField{Name: "Status", Value: event.Status, Inline: true})
	}
	if !event.DueDate.IsZero() {
		fields = append(fields, DiscordWebhookField{Name: "Due", Value: event.DueDate.Format("2006-01-02"), Inline: true})
	}

	return DiscordWebhookRequest{
		Username: Username,
		Embeds: []DiscordEmbed{
			{
				Title:     headline,
				Color:     color,
				Fields:    fields,
				Timestamp: event.At.Format(time.RFC3339),
			},
		},
	}
}

func slackPayload(event types.ContentEvent) SlackWebhookRequest {
	headline, _ := eventHeadline(event)

	fields := []SlackField{
		{Title: "Content", Value: event.Title, Short: true},
	}
	if event.UserID != "" {
		fields = append(fields, SlackField{Title: "Assignee", Value: event.UserID, Short: true})
	}
	if event.Status != "" {
		fields = append(fields, SlackField{Title: "Status", Value: event.Status, Short: true})
	}
	if !event.DueDate.IsZero() {
		fields = append(fields, SlackField{Title: "Due", Value: event.DueDate.Format("2006-01-02"), Short: true})
	}

	color := "good"
	if event.Type == "deleted" {
		color = "danger"
	}

	return SlackWebhookRequest{
		Username: Username,
		Text:     headline,
		Attachments: []SlackAttachment{
			{
				Color:     color,
				Title:     event.Title,
				Fields:    fields,
				Timestamp: event.At.Unix(),
			},
		},
	}
}

func sendDiscordWebhook(webhookURL string, payload DiscordWebhookRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Discord payload: %w", err)
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send Discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("Discord webhook returned status %d", resp.StatusCode)
	}

	return nil
}

func sendSlackWebhook(webhookURL string, payload SlackWebhookRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Slack payload: %w", err)
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send Slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("Slack webhook returned status %d", resp.StatusCode)
	}

	return nil
}
