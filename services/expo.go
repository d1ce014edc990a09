// services/expo.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultExpoPushURL = "https://exp.host/--/api/v2/push/send"

// PushPayload is the channel-independent notification content.
type PushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
	Tag   string            `json:"tag,omitempty"`
}

// ExpoClient delivers push notifications through the Expo push service.
type ExpoClient struct {
	url    string
	client *http.Client
}

func NewExpoClient(url string) *ExpoClient {
	if url == "" {
		url = defaultExpoPushURL
	}
	return &ExpoClient{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type expoMessage struct {
	To    string            `json:"to"`
	Sound string            `json:"sound"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

type expoResponse struct {
	Data struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"data"`
}

// Send pushes one message to an Expo token. A non-"ok" ticket status counts as
// a delivery failure.
func (e *ExpoClient) Send(ctx context.Context, token string, payload PushPayload) error {
	msg := expoMessage{
		To:    token,
		Sound: "default",
		Title: payload.Title,
		Body:  payload.Body,
		Data:  payload.Data,
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("expo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("expo status %d", resp.StatusCode)
	}

	var ticket expoResponse
	if err := json.NewDecoder(resp.Body).Decode(&ticket); err != nil {
		return fmt.Errorf("expo decode: %w", err)
	}
	if ticket.Data.Status != "ok" {
		return fmt.Errorf("expo ticket status %q: %s", ticket.Data.Status, ticket.Data.Message)
	}
	return nil
}
