package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"deenly-backend/models"
)

func TestWebPushAlwaysFails(t *testing.T) {
	client := NewWebPushClient(zap.NewNop())
	err := client.Send(context.Background(), models.PushSubscription{
		Endpoint: "https://push.example/e1",
	}, PushPayload{Title: "t", Body: "b"})

	assert.ErrorIs(t, err, ErrWebPushNotImplemented)
}
