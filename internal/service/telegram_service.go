package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"
)

// DefaultTelegramAPIURL is the Bot API root.
const DefaultTelegramAPIURL = "https://api.telegram.org"

// TelegramService handles sending messages to Telegram
type TelegramService struct {
	botToken string
	chatID   string
	apiURL   string
	client   *http.Client
}

// NewTelegramService creates a new Telegram service
func NewTelegramService(botToken, chatID string) *TelegramService {
	return &TelegramService{
		botToken: botToken,
		chatID:   chatID,
		apiURL:   DefaultTelegramAPIURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether both the bot token and chat id are set.
func (s *TelegramService) Enabled() bool {
	return s.botToken != "" && s.chatID != ""
}

// telegramMessage represents a Telegram API message
type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// ContactMessageInfo is request metadata attached to a notification.
type ContactMessageInfo struct {
	IPAddress string
	UserAgent string
	Source    string
}

// SendContactMessage sends a contact form message to Telegram
func (s *TelegramService) SendContactMessage(ctx context.Context, name, email, message string, info *ContactMessageInfo) error {
	if !s.Enabled() {
		return fmt.Errorf("telegram bot token or chat ID: %w", ErrNotConfigured)
	}

	payload := telegramMessage{
		ChatID:    s.chatID,
		Text:      formatContactMessage(name, email, message, info),
		ParseMode: "HTML",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	return nil
}

func formatContactMessage(name, email, message string, info *ContactMessageInfo) string {
	text := fmt.Sprintf(
		"🆕 <b>New Contact Form Submission</b>\n\n"+
			"<b>Name:</b> %s\n"+
			"<b>Email:</b> %s\n"+
			"<b>Message:</b>\n%s",
		html.EscapeString(name),
		html.EscapeString(email),
		html.EscapeString(message),
	)

	if info != nil {
		text += "\n\n<i>"
		if info.Source != "" {
			text += "Source: " + html.EscapeString(info.Source) + "\n"
		}
		if info.IPAddress != "" {
			text += "IP: " + html.EscapeString(info.IPAddress) + "\n"
		}
		if info.UserAgent != "" {
			text += "User-Agent: " + html.EscapeString(info.UserAgent) + "\n"
		}
		text += "</i>"
	}

	return text
}
