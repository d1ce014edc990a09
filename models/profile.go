package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"deenly-backend/utils"
)

type Profile struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Username string    `gorm:"not null"`
	Phone    string

	StreakCount       int    `gorm:"default:0"`
	PreferredLanguage string `gorm:"type:varchar(40);default:'Arabic'"`

	// Expo token used by the mobile app; empty when the user only has web push.
	ExpoPushToken string `gorm:"type:text"`

	LastActiveAt *time.Time
	IsActive     bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID and hash password before creating
func (p *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	hashed, err := utils.HashPassword(p.Password)
	if err != nil {
		return err
	}
	p.Password = hashed
	return
}
