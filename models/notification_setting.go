package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationSetting holds one user's opt-in flags and location used for
// prayer time lookups. Latitude/Longitude of 0 means "use the default city".
type NotificationSetting struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	PrayerStart  bool `gorm:"default:false"`
	PrayerEnding bool `gorm:"default:false"`
	DuaReminders bool `gorm:"default:false"`
	SMSAlerts    bool `gorm:"default:false"`

	Timezone  string  `gorm:"type:varchar(64)"`
	Latitude  float64
	Longitude float64

	gorm.Model
}

func (s *NotificationSetting) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}

// OptedIn reports whether any push notification category is enabled.
func (s *NotificationSetting) OptedIn() bool {
	return s.PrayerStart || s.PrayerEnding || s.DuaReminders
}
