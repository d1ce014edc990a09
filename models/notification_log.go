// models/notification_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationLog records one delivery attempt. Append-only: rows are written
// once per (user, endpoint, window) and never updated.
type NotificationLog struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	NotificationType string `gorm:"type:varchar(30);not null"` // prayer_start, prayer_ending, dua_morning, ..., daily_nudge
	PrayerName       string `gorm:"type:varchar(20)"`          // empty for dua and nudge rows
	Channel          string `gorm:"type:varchar(20)"`          // expo, webpush, sms
	Message          string `gorm:"type:text"`
	Delivered        bool
	ErrorMessage     string `gorm:"type:text"`
	SentAt           time.Time

	gorm.Model
}

func (l *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	l.ID = uuid.New()
	return
}
