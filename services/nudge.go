// services/nudge.go
package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"deenly-backend/utils"
)

// NudgeResult is one nudge delivery in the batch summary.
type NudgeResult struct {
	Username string `json:"username"`
	Status   string `json:"status"`
}

// NudgeSummary is the JSON body returned by the daily nudge trigger.
type NudgeSummary struct {
	Success   bool          `json:"success"`
	Processed int           `json:"processed"`
	Details   []NudgeResult `json:"details"`
}

// NudgeService sends one AI-generated reminder to every user who has been
// inactive for over 24 hours and has a push token.
type NudgeService struct {
	store     Store
	generator MessageGenerator
	expo      ExpoSender
	log       *zap.Logger
	now       func() time.Time
}

func NewNudgeService(store Store, generator MessageGenerator, expo ExpoSender, log *zap.Logger) *NudgeService {
	return &NudgeService{
		store:     store,
		generator: generator,
		expo:      expo,
		log:       log,
		now:       time.Now,
	}
}

// RunCycle resolves inactive users and nudges each one. Generation failures
// fall back to the fixed message; delivery failures are recorded per user and
// never abort the batch.
func (n *NudgeService) RunCycle(ctx context.Context) (*NudgeSummary, error) {
	cutoff := utils.InactivityCutoff(n.now())

	profiles, err := n.store.InactiveProfiles(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("fetch inactive users: %w", err)
	}

	summary := &NudgeSummary{Success: true, Details: []NudgeResult{}}

	for _, profile := range profiles {
		if profile.ExpoPushToken == "" {
			continue
		}

		body := GenerateNudge(ctx, n.generator, profile, n.log)

		payload := PushPayload{
			Title: "Meek Reminder 🔔",
			Body:  body,
			Data:  map[string]string{"url": "/dashboard"},
		}

		status := "ok"
		if err := n.expo.Send(ctx, profile.ExpoPushToken, payload); err != nil {
			status = "error"
			n.log.Warn("nudge delivery failed",
				zap.String("user", profile.ID.String()),
				zap.Error(err),
			)
		}
		summary.Details = append(summary.Details, NudgeResult{
			Username: profile.Username,
			Status:   status,
		})
	}

	summary.Processed = len(summary.Details)
	return summary, nil
}
