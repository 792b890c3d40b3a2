package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/models"
)

const telegramAPI = "https://api.telegram.org"

// TelegramService posts operator notifications to a Telegram chat.
type TelegramService struct {
	botToken    string
	adminChatID string
	baseURL     string
	client      *http.Client
}

// NewTelegramService creates a notifier. Without a token or chat id every
// send is a no-op.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
		baseURL:     telegramAPI,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL points the notifier at another Bot API host.
func (s *TelegramService) WithBaseURL(url string) *TelegramService {
	s.baseURL = strings.TrimSuffix(url, "/")
	return s
}

// Enabled reports whether notifications will actually be sent.
func (s *TelegramService) Enabled() bool {
	return s != nil && s.botToken != "" && s.adminChatID != ""
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendToAdmin delivers an HTML-formatted message to the admin chat.
func (s *TelegramService) SendToAdmin(ctx context.Context, text string) error {
	if !s.Enabled() {
		return nil
	}

	body, err := json.Marshal(telegramMessage{ChatID: s.adminChatID, Text: text, ParseMode: "HTML"})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}
	return nil
}

// NotifyContactSubmission announces a new appointment request.
func (s *TelegramService) NotifyContactSubmission(ctx context.Context, sub models.ContactSubmission) error {
	if !s.Enabled() {
		return nil
	}

	preferred := "-"
	if sub.PreferredDate != nil && *sub.PreferredDate != "" {
		preferred = *sub.PreferredDate
	}
	service := sub.Service
	if service == "" {
		service = "-"
	}

	message := fmt.Sprintf(`<b>📅 New appointment request</b>
<b>👤 Name:</b> %s
<b>📞 Phone:</b> %s
<b>✉️ Email:</b> %s
<b>🏥 Service:</b> %s
<b>🗓 Preferred date:</b> %s
<b>💬 Message:</b>
%s`,
		html.EscapeString(sub.Name),
		html.EscapeString(sub.Phone),
		html.EscapeString(sub.Email),
		html.EscapeString(service),
		html.EscapeString(preferred),
		html.EscapeString(sub.Message),
	)
	return s.SendToAdmin(ctx, strings.TrimSpace(message))
}

// NotifyAsync sends the contact notification in the background; failures are
// only logged.
func (s *TelegramService) NotifyAsync(sub models.ContactSubmission) {
	if !s.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.NotifyContactSubmission(ctx, sub); err != nil {
			logger.Error(err, "Failed to send Telegram notification", map[string]interface{}{"submission_id": sub.ID})
		}
	}()
}
