package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PushSubscription is one browser Web Push subscription for a user.
type PushSubscription struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Endpoint string `gorm:"type:text;not null"`
	P256dh   string `gorm:"type:text;not null"`
	Auth     string `gorm:"type:text;not null"`
	IsActive bool   `gorm:"default:true"`

	gorm.Model
}

func (s *PushSubscription) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
