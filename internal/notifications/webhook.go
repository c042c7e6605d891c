package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kjannette/carprice-stats/internal/httputil"
)

const defaultSender = "CarPriceStats"

// Sender posts operational alerts to a Slack or Discord webhook.
// With no webhook configured it only logs.
type Sender struct {
	webhookURL string
	name       string
	httpClient *http.Client
	retry      httputil.RetryConfig
}

func NewSender(webhookURL, name string) *Sender {
	if name == "" {
		name = defaultSender
	}
	return &Sender{
		webhookURL: webhookURL,
		name:       name,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retry: httputil.RetryConfig{
			MaxAttempts: 3,
			BaseDelay:   1 * time.Second,
			MaxDelay:    5 * time.Second,
		},
	}
}

func (s *Sender) Send(ctx context.Context, msg string) {
	logger := log.WithField("component", "notify")
	logger.Warn(msg)

	if s.webhookURL == "" {
		return
	}

	body, err := json.Marshal(s.formatPayload(fmt.Sprintf("[%s] %s", s.name, msg)))
	if err != nil {
		logger.WithError(err).Error("marshal webhook payload")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := httputil.Do(ctx, s.httpClient, s.retry, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		logger.WithError(err).Error("webhook delivery failed")
		return
	}
	resp.Body.Close()
}

func (s *Sender) formatPayload(msg string) map[string]string {
	if strings.Contains(s.webhookURL, "discord") {
		return map[string]string{"content": msg, "username": s.name}
	}
	return map[string]string{"text": fmt.Sprintf("`%s`", msg), "username": s.name}
}

func (s *Sender) Enabled() bool {
	return s.webhookURL != ""
}
