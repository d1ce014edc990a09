// services/dispatch.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"deenly-backend/models"
	"deenly-backend/utils"
)

// Default location (Dhaka) used when a recipient has no coordinates.
const (
	DefaultLatitude  = 23.8103
	DefaultLongitude = 90.4125
)

// ExpoSender delivers to an Expo push token.
type ExpoSender interface {
	Send(ctx context.Context, token string, payload PushPayload) error
}

// WebPushSender delivers to a browser push subscription.
type WebPushSender interface {
	Send(ctx context.Context, sub models.PushSubscription, payload PushPayload) error
}

// SMSSender delivers a plain text to a phone number.
type SMSSender interface {
	Send(to, body string) error
}

// DispatchResult is one delivery attempt in the batch summary.
type DispatchResult struct {
	UserID string `json:"userId"`
	Type   string `json:"type"`
	Sent   bool   `json:"sent"`
}

// DispatchSummary is the JSON body returned by the dispatch trigger.
type DispatchSummary struct {
	Success       bool             `json:"success"`
	Processed     int              `json:"processed"`
	Notifications int              `json:"notifications"`
	Details       []DispatchResult `json:"details"`
}

// DispatchService runs one notification cycle over all opted-in recipients.
type DispatchService struct {
	store   Store
	times   TimesFetcher
	catalog *MessageCatalog
	expo    ExpoSender
	webpush WebPushSender
	sms     SMSSender
	log     *zap.Logger
	now     func() time.Time
}

func NewDispatchService(store Store, times TimesFetcher, catalog *MessageCatalog,
	expo ExpoSender, webpush WebPushSender, sms SMSSender, log *zap.Logger) *DispatchService {
	return &DispatchService{
		store:   store,
		times:   times,
		catalog: catalog,
		expo:    expo,
		webpush: webpush,
		sms:     sms,
		log:     log,
		now:     time.Now,
	}
}

// endpoint is one delivery target resolved for a recipient.
type endpoint struct {
	channel string // expo, webpush, sms
	token   string
	sub     models.PushSubscription
	phone   string
}

// RunCycle processes every opted-in recipient sequentially. A recipient-level
// failure is logged and the cycle moves on; only a resolver failure is
// returned to the caller.
func (s *DispatchService) RunCycle(ctx context.Context) (*DispatchSummary, error) {
	settings, err := s.store.OptedInSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch recipients: %w", err)
	}

	summary := &DispatchSummary{Success: true, Details: []DispatchResult{}}
	summary.Processed = len(settings)

	for _, setting := range settings {
		if err := s.processRecipient(ctx, setting, summary); err != nil {
			s.log.Error("recipient processing failed",
				zap.String("user", setting.UserID.String()),
				zap.Error(err),
			)
		}
	}

	summary.Notifications = len(summary.Details)
	return summary, nil
}

func (s *DispatchService) processRecipient(ctx context.Context, setting models.NotificationSetting, summary *DispatchSummary) error {
	if !setting.OptedIn() {
		return nil
	}

	profile, err := s.store.ProfileByID(ctx, setting.UserID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	subs, err := s.store.ActiveSubscriptions(ctx, setting.UserID)
	if err != nil {
		return fmt.Errorf("load subscriptions: %w", err)
	}

	endpoints := s.resolveEndpoints(profile, subs, setting)
	if len(endpoints) == 0 {
		return nil
	}

	timezone := setting.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	nowMinutes := utils.CurrentMinutes(s.now(), timezone)

	if setting.PrayerStart || setting.PrayerEnding {
		if err := s.processPrayerWindows(ctx, setting, nowMinutes, endpoints, summary); err != nil {
			return err
		}
	}

	if setting.DuaReminders {
		s.processDuaWindows(ctx, setting.UserID, nowMinutes, endpoints, summary)
	}

	return nil
}

func (s *DispatchService) resolveEndpoints(profile *models.Profile, subs []models.PushSubscription, setting models.NotificationSetting) []endpoint {
	var endpoints []endpoint
	if profile.ExpoPushToken != "" {
		endpoints = append(endpoints, endpoint{channel: "expo", token: profile.ExpoPushToken})
	}
	for _, sub := range subs {
		endpoints = append(endpoints, endpoint{channel: "webpush", sub: sub})
	}
	if setting.SMSAlerts && utils.ValidatePhone(profile.Phone) {
		endpoints = append(endpoints, endpoint{channel: "sms", phone: profile.Phone})
	}
	return endpoints
}

func (s *DispatchService) processPrayerWindows(ctx context.Context, setting models.NotificationSetting, nowMinutes int, endpoints []endpoint, summary *DispatchSummary) error {
	lat, lon := setting.Latitude, setting.Longitude
	if lat == 0 && lon == 0 {
		lat, lon = DefaultLatitude, DefaultLongitude
	}

	raw, err := s.times.DailyTimes(ctx, lat, lon, DefaultCalculationMethod)
	if err != nil {
		return fmt.Errorf("fetch prayer times: %w", err)
	}

	timings := make(map[string]int, len(raw))
	for name, clock := range raw {
		offset, err := utils.ParseClock(clock)
		if err != nil {
			// Malformed timing only disables windows that depend on it.
			s.log.Warn("skipping malformed timing",
				zap.String("timing", name),
				zap.String("value", clock),
				zap.Error(err),
			)
			continue
		}
		timings[name] = offset
	}

	for _, window := range utils.ActiveWindows(nowMinutes, timings) {
		switch window.Kind {
		case utils.WindowStart:
			if !setting.PrayerStart {
				continue
			}
			message, err := s.catalog.StartMessage(window.Prayer)
			if err != nil {
				return err
			}
			payload := PushPayload{
				Title: fmt.Sprintf("%s Time! 🕌", window.Prayer),
				Body:  message,
				Data:  map[string]string{"url": "/quran"},
				Tag:   fmt.Sprintf("prayer-start-%s-%d", window.Prayer, s.now().UnixMilli()),
			}
			s.deliver(ctx, setting.UserID, string(utils.WindowStart), window.Prayer, payload, endpoints, summary)

		case utils.WindowEndingSoon:
			if !setting.PrayerEnding {
				continue
			}
			message, err := s.catalog.EndingMessage(window.Prayer)
			if err != nil {
				return err
			}
			payload := PushPayload{
				Title: fmt.Sprintf("⏰ %s Ending Soon!", window.Prayer),
				Body:  message,
				Data:  map[string]string{"url": "/quran"},
				Tag:   fmt.Sprintf("prayer-ending-%s-%d", window.Prayer, s.now().UnixMilli()),
			}
			s.deliver(ctx, setting.UserID, string(utils.WindowEndingSoon), window.Prayer, payload, endpoints, summary)
		}
	}
	return nil
}

func (s *DispatchService) processDuaWindows(ctx context.Context, userID uuid.UUID, nowMinutes int, endpoints []endpoint, summary *DispatchSummary) {
	for _, slot := range utils.ActiveDuaSlots(nowMinutes) {
		message, err := s.catalog.DuaMessage(slot.Name)
		if err != nil {
			s.log.Error("dua message selection failed", zap.String("slot", slot.Name), zap.Error(err))
			continue
		}
		payload := PushPayload{
			Title: fmt.Sprintf("%s Dua Time 🤲", capitalize(slot.Name)),
			Body:  message,
			Data:  map[string]string{"url": "/dashboard"},
			Tag:   fmt.Sprintf("dua-%s-%d", slot.Name, s.now().UnixMilli()),
		}
		s.deliver(ctx, userID, "dua_"+slot.Name, "", payload, endpoints, summary)
	}
}

// deliver attempts every endpoint and appends one log row per attempt.
// Delivery failures are recorded, never retried, never propagated.
func (s *DispatchService) deliver(ctx context.Context, userID uuid.UUID, category, prayer string, payload PushPayload, endpoints []endpoint, summary *DispatchSummary) {
	for _, ep := range endpoints {
		var sendErr error
		switch ep.channel {
		case "expo":
			sendErr = s.expo.Send(ctx, ep.token, payload)
		case "webpush":
			sendErr = s.webpush.Send(ctx, ep.sub, payload)
		case "sms":
			sendErr = s.sms.Send(ep.phone, payload.Body)
		}

		delivered := sendErr == nil
		errMsg := ""
		if sendErr != nil {
			errMsg = sendErr.Error()
			s.log.Warn("delivery failed",
				zap.String("user", userID.String()),
				zap.String("channel", ep.channel),
				zap.String("category", category),
				zap.Error(sendErr),
			)
		}

		entry := &models.NotificationLog{
			UserID:           userID,
			NotificationType: category,
			PrayerName:       prayer,
			Channel:          ep.channel,
			Message:          payload.Body,
			Delivered:        delivered,
			ErrorMessage:     errMsg,
			SentAt:           s.now(),
		}
		if err := s.store.AppendLog(ctx, entry); err != nil {
			s.log.Error("log append failed", zap.String("user", userID.String()), zap.Error(err))
		}

		detailType := category
		if prayer != "" {
			if category == string(utils.WindowStart) {
				detailType = prayer + "_start"
			} else {
				detailType = prayer + "_ending"
			}
		}
		summary.Details = append(summary.Details, DispatchResult{
			UserID: userID.String(),
			Type:   detailType,
			Sent:   delivered,
		})
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
