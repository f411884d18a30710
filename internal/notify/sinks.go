package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/utils"
)

// LogSink writes every message as a warning.
type LogSink struct {
	logger *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{logger: log}
}

func (s *LogSink) Notify(ctx context.Context, message string) {
	s.logger.Warn().Str("func", "*LogSink.Notify").Msg(message)
}

var (
	toastTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	toastBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1)
)

// ToastSink renders every message as a boxed error toast.
type ToastSink struct {
	mu  sync.Mutex
	out io.Writer
}

func NewToastSink(out io.Writer) *ToastSink {
	return &ToastSink{out: out}
}

func (s *ToastSink) Notify(_ context.Context, message string) {
	toast := toastBoxStyle.Render(toastTitleStyle.Render("Error") + "\n" + message)

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.out, toast)
}

// webhookPayload is the JSON body posted by WebhookSink.
type webhookPayload struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// WebhookSink posts every message to an HTTP endpoint. Delivery failures
// are logged and dropped.
type WebhookSink struct {
	url    string
	client *utils.HTTPClient
	logger *logger.Logger
}

func NewWebhookSink(url string, timeout time.Duration, log *logger.Logger) *WebhookSink {
	return &WebhookSink{
		url:    url,
		client: utils.NewHTTPClient(timeout),
		logger: log,
	}
}

func (s *WebhookSink) Notify(ctx context.Context, message string) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(webhookPayload{Level: "error", Message: message, At: time.Now().UTC()}).
		Post(s.url)
	if err != nil {
		s.logger.Err(err).Str("func", "*WebhookSink.Notify").Str("url", s.url).Msg("webhook delivery failed")
		return
	}
	if resp.IsError() {
		s.logger.Error().Str("func", "*WebhookSink.Notify").Str("url", s.url).Int("status", resp.StatusCode()).Msg("webhook rejected notification")
	}
}
