// Package mail delivers notification emails to the site owner through
// Resend. Delivery is fire-and-forget with one bounded retry: a failure that
// looks like a transient network problem is retried once after a fixed
// backoff, anything else surfaces immediately.
package mail

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/mustafameh/portfolio/internal/log"
)

const (
	// apiKeyEnv is read at send time so a rotated key takes effect without
	// a restart.
	apiKeyEnv = "RESEND_API_KEY"

	// retryBackoff is the fixed wait before the single retry.
	retryBackoff = 1500 * time.Millisecond

	// maxAttempts bounds delivery to one retry.
	maxAttempts = 2
)

// ErrNotConfigured indicates the email API key is absent or a placeholder.
var ErrNotConfigured = errors.New("email service is not configured")

// Message is one outbound notification.
type Message struct {
	Subject string
	HTML    string
}

// Mailer sends a notification to the site owner.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Resend delivers mail through the Resend API.
type Resend struct {
	from   string
	to     string
	logger log.Logger

	// sleep is replaceable in tests to skip the retry backoff.
	sleep func(time.Duration)

	// send is replaceable in tests to avoid the network.
	send func(ctx context.Context, apiKey string, params *resend.SendEmailRequest) error
}

// NewResend creates a mailer that sends from the given address to the owner's
// contact address.
func NewResend(from, to string, logger log.Logger) *Resend {
	return &Resend{
		from:   from,
		to:     to,
		logger: logger,
		sleep:  time.Sleep,
		send: func(ctx context.Context, apiKey string, params *resend.SendEmailRequest) error {
			client := resend.NewClient(apiKey)
			_, err := client.Emails.SendWithContext(ctx, params)
			return err
		},
	}
}

// Send delivers msg with at most two attempts. Only failures classified as
// network-like are retried; the retry waits a fixed backoff first.
func (r *Resend) Send(ctx context.Context, msg Message) error {
	apiKey := apiKeyFromEnv()
	if apiKey == "" {
		return ErrNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    r.from,
		To:      []string{r.to},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = r.send(ctx, apiKey, params)
		if lastErr == nil {
			return nil
		}

		if attempt < maxAttempts && isNetworkError(lastErr) {
			r.logger.Warn("email send failed, retrying",
				"attempt", attempt,
				"error", lastErr,
			)
			r.sleep(retryBackoff)
			continue
		}
		break
	}

	return fmt.Errorf("sending email: %w", lastErr)
}

// apiKeyFromEnv resolves the API key, treating common placeholder values as
// absent so a templated .env never reaches the provider.
func apiKeyFromEnv() string {
	key := strings.TrimSpace(os.Getenv(apiKeyEnv))
	switch key {
	case "", "your-api-key", "changeme":
		return ""
	}
	return key
}

// isNetworkError heuristically classifies an error as a transient
// DNS/network failure worth one retry. The Resend SDK surfaces untyped
// errors, so classification is by message content.
func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"resolve", "fetch", "network", "dns",
		"enotfound", "econnrefused", "connection refused", "timeout",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
