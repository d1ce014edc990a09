package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpoClientSend(t *testing.T) {
	var got expoMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"data":{"status":"ok"}}`))
	}))
	defer srv.Close()

	client := NewExpoClient(srv.URL)
	err := client.Send(context.Background(), "ExponentPushToken[xyz]", PushPayload{
		Title: "Dhuhr Time! 🕌",
		Body:  "go pray",
		Data:  map[string]string{"url": "/quran"},
	})
	require.NoError(t, err)

	assert.Equal(t, "ExponentPushToken[xyz]", got.To)
	assert.Equal(t, "default", got.Sound)
	assert.Equal(t, "Dhuhr Time! 🕌", got.Title)
	assert.Equal(t, "go pray", got.Body)
	assert.Equal(t, "/quran", got.Data["url"])
}

func TestExpoClientTicketError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"status":"error","message":"DeviceNotRegistered"}}`))
	}))
	defer srv.Close()

	client := NewExpoClient(srv.URL)
	err := client.Send(context.Background(), "tok", PushPayload{Title: "t", Body: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DeviceNotRegistered")
}

func TestExpoClientHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewExpoClient(srv.URL)
	err := client.Send(context.Background(), "tok", PushPayload{Title: "t", Body: "b"})
	assert.Error(t, err)
}
