package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/alhayat/internal/models"
)

func TestDisabledNotifierSendsNothing(t *testing.T) {
	s := NewTelegramService("", "")
	assert.False(t, s.Enabled())
	assert.NoError(t, s.NotifyContactSubmission(context.Background(), models.ContactSubmission{Name: "Jane"}))

	var nilService *TelegramService
	assert.False(t, nilService.Enabled())
}

func TestNotifyContactSubmission(t *testing.T) {
	var got telegramMessage
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewTelegramService("token", "42").WithBaseURL(srv.URL)
	date := "2026-03-01"
	err := s.NotifyContactSubmission(context.Background(), models.ContactSubmission{
		Name:          "Jane <b>Doe</b>",
		Phone:         "+1 555",
		Email:         "jane@example.com",
		PreferredDate: &date,
		Message:       "Checkup",
	})
	require.NoError(t, err)

	assert.Equal(t, "/bottoken/sendMessage", path)
	assert.Equal(t, "42", got.ChatID)
	assert.Equal(t, "HTML", got.ParseMode)
	assert.Contains(t, got.Text, "Jane &lt;b&gt;Doe&lt;/b&gt;")
	assert.Contains(t, got.Text, "2026-03-01")
}

func TestNotifyReportsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	s := NewTelegramService("token", "42").WithBaseURL(srv.URL)
	err := s.SendToAdmin(context.Background(), "hello")
	assert.EqualError(t, err, "telegram returned status 400")
}
