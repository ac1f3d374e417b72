package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	portssvc "github.com/SamuelRomaoF/financas-bot/internal/core/ports/services"
)

const sendTimeout = 10 * time.Second

// Sender delivers replies through the Evolution-style WhatsApp gateway
// (POST {baseURL}/message/sendText/{instance} with an apikey header).
type Sender struct {
	baseURL  string
	instance string
	apiKey   string
	client   *http.Client
}

// NewSender creates a gateway-backed message sender.
func NewSender(baseURL, instance, apiKey string) *Sender {
	return &Sender{
		baseURL:  strings.TrimRight(baseURL, "/"),
		instance: instance,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: sendTimeout},
	}
}

// Ensure Sender implements portssvc.MessageSender
var _ portssvc.MessageSender = (*Sender)(nil)

type sendTextPayload struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

// SendText posts a plain text message to the given phone key.
func (s *Sender) SendText(ctx context.Context, phoneKey, text string) error {
	body, err := json.Marshal(sendTextPayload{Number: phoneKey, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal send payload: %w", err)
	}

	url := fmt.Sprintf("%s/message/sendText/%s", s.baseURL, s.instance)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call whatsapp gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}
	return nil
}
