// services/webpush.go
package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"deenly-backend/models"
)

// ErrWebPushNotImplemented is returned for every Web Push send. VAPID request
// signing is not implemented, and the channel must not pretend otherwise:
// dispatch records these attempts with delivered=false.
var ErrWebPushNotImplemented = errors.New("web push delivery not implemented")

// WebPushClient is the browser push channel. Currently a stub that records
// intent and fails the delivery.
type WebPushClient struct {
	log *zap.Logger
}

func NewWebPushClient(log *zap.Logger) *WebPushClient {
	return &WebPushClient{log: log}
}

func (w *WebPushClient) Send(ctx context.Context, sub models.PushSubscription, payload PushPayload) error {
	w.log.Info("web push skipped, channel not implemented",
		zap.String("endpoint", sub.Endpoint),
		zap.String("title", payload.Title),
	)
	return ErrWebPushNotImplemented
}
