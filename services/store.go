// services/store.go
package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"deenly-backend/models"
)

// Store is the persistence surface the dispatch and nudge cycles need.
// Backed by gorm in production; tests substitute fakes.
type Store interface {
	// OptedInSettings returns settings rows with at least one push category enabled.
	OptedInSettings(ctx context.Context) ([]models.NotificationSetting, error)
	// ActiveSubscriptions returns a user's active web push subscriptions.
	ActiveSubscriptions(ctx context.Context, userID uuid.UUID) ([]models.PushSubscription, error)
	// ProfileByID returns one user profile.
	ProfileByID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	// InactiveProfiles returns active profiles with a push token whose last
	// activity predates the cutoff.
	InactiveProfiles(ctx context.Context, cutoff time.Time) ([]models.Profile, error)
	// AppendLog inserts one delivery outcome. Rows are never updated.
	AppendLog(ctx context.Context, entry *models.NotificationLog) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) OptedInSettings(ctx context.Context) ([]models.NotificationSetting, error) {
	var settings []models.NotificationSetting
	err := s.db.WithContext(ctx).
		Where("prayer_start = ? OR prayer_ending = ? OR dua_reminders = ?", true, true, true).
		Find(&settings).Error
	return settings, err
}

func (s *gormStore) ActiveSubscriptions(ctx context.Context, userID uuid.UUID) ([]models.PushSubscription, error) {
	var subs []models.PushSubscription
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&subs).Error
	return subs, err
}

func (s *gormStore) ProfileByID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *gormStore) InactiveProfiles(ctx context.Context, cutoff time.Time) ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND expo_push_token <> '' AND last_active_at < ?", true, cutoff).
		Find(&profiles).Error
	return profiles, err
}

func (s *gormStore) AppendLog(ctx context.Context, entry *models.NotificationLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}
