package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

var colors = map[MessageType]int{
	MessageTypeInfo:    0x3498DB,
	MessageTypeWarning: 0xF1C40F,
	MessageTypeError:   0xE74C3C,
}

// SendMessage posts plain content.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{Content: content, Username: d.config.DefaultUsername})
}

// SendEmbed posts a single embed.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	desc := options.Description
	if len(desc) > maxDescriptionLen {
		desc = desc[:maxDescriptionLen-3] + "..."
	}
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: desc,
			Color:       colors[options.Type],
			Timestamp:   ts.UTC().Format(time.RFC3339),
			Fields:      options.Fields,
		}},
	})
}

// ReportBug posts an error embed.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       "Unhandled error",
		Description: "```" + message + "```",
	})
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	url := fmt.Sprintf("%s/%s/%s", d.baseURL, d.webhook.ID, d.webhook.Token)
	body, status, err := d.client.Post(ctx, url, payload, nil)
	if err != nil {
		d.l.Errorf(ctx, "discord.send: request failed: %v", err)
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		d.l.Errorf(ctx, "discord.send: unexpected status %d: %s", status, string(body))
		return fmt.Errorf("discord: unexpected status %d", status)
	}
	return nil
}
