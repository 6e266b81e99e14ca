package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dealership-backend/config"

	"go.uber.org/zap"
)

// GatewaySender posts messages to an HTTP SMS/WhatsApp gateway. Both
// channels run through the same gateway shape, differing only in the
// endpoint and channel tag. Constructed in main, injected where needed.
type GatewaySender struct {
	client  *http.Client
	baseURL string
	apiKey  string
	channel string // "sms" or "whatsapp"
}

func NewSMSSender() *GatewaySender {
	return &GatewaySender{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: config.GetEnv("SMS_GATEWAY_URL"),
		apiKey:  config.GetEnv("SMS_GATEWAY_KEY"),
		channel: "sms",
	}
}

func NewWhatsAppSender() *GatewaySender {
	return &GatewaySender{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: config.GetEnv("WHATSAPP_GATEWAY_URL"),
		apiKey:  config.GetEnv("WHATSAPP_GATEWAY_KEY"),
		channel: "whatsapp",
	}
}

type gatewayPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
	Channel string `json:"channel"`
}

// Send posts one message to the gateway.
func (g *GatewaySender) Send(phone, message string) error {
	if g.baseURL == "" {
		return fmt.Errorf("%s gateway not configured", g.channel)
	}

	body, err := json.Marshal(gatewayPayload{To: phone, Message: message, Channel: g.channel})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, g.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s gateway returned status %d", g.channel, resp.StatusCode)
	}
	return nil
}

// SendAsync fires the message in the background. Channel failures are
// logged but never block or fail the write that triggered them.
func (g *GatewaySender) SendAsync(phone, message string) {
	go func() {
		if err := g.Send(phone, message); err != nil {
			config.Logger.Warn("Notification delivery failed",
				zap.String("channel", g.channel),
				zap.String("phone", phone),
				zap.Error(err),
			)
		}
	}()
}
