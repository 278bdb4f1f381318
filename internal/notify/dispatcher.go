package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const BrevoAPIURL = "https://api.brevo.com/v3/smtp/email"

var ErrNoRecipient = errors.New("receipt has no recipient email")

// LogDispatcher records receipts in the log instead of sending them.
type LogDispatcher struct {
	logger zerolog.Logger
}

func NewLogDispatcher(logger zerolog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Send(_ context.Context, r Receipt) error {
	if r.Shipment.Sender.Email == "" {
		return ErrNoRecipient
	}
	d.logger.Info().
		Str("booking_ref", r.BookingRef).
		Str("to", r.Shipment.Sender.Email).
		Str("currency", string(r.Currency.Code)).
		Float64("total", r.Breakdown.Total).
		Bool("paid", r.Paid).
		Msg("receipt dispatched")
	return nil
}

type Sender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BrevoDispatcher sends receipts through the Brevo transactional email API.
type BrevoDispatcher struct {
	url    string
	apiKey string
	from   Sender
	client *http.Client
}

func NewBrevoDispatcher(url, apiKey string, from Sender) *BrevoDispatcher {
	if url == "" {
		url = BrevoAPIURL
	}
	return &BrevoDispatcher{
		url:    url,
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *BrevoDispatcher) Send(ctx context.Context, r Receipt) error {
	if r.Shipment.Sender.Email == "" {
		return ErrNoRecipient
	}

	html, err := RenderReceipt(r)
	if err != nil {
		return err
	}

	type recipient struct {
		Email string `json:"email"`
		Name  string `json:"name,omitempty"`
	}
	payload := struct {
		Sender      Sender      `json:"sender"`
		To          []recipient `json:"to"`
		Subject     string      `json:"subject"`
		HTMLContent string      `json:"htmlContent"`
	}{
		Sender:      d.from,
		To:          []recipient{{Email: r.Shipment.Sender.Email, Name: r.Shipment.Sender.FullName()}},
		Subject:     ReceiptSubject,
		HTMLContent: html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode brevo payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build brevo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", d.apiKey)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("brevo send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("brevo send: unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
