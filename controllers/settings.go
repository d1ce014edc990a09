// controllers/settings.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"deenly-backend/config"
	"deenly-backend/models"
	"deenly-backend/utils"
)

type UpdateSettingsInput struct {
	PrayerStart  *bool    `json:"prayerStart"`
	PrayerEnding *bool    `json:"prayerEnding"`
	DuaReminders *bool    `json:"duaReminders"`
	SMSAlerts    *bool    `json:"smsAlerts"`
	Timezone     *string  `json:"timezone"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}

// GetNotificationSettings returns the caller's settings, creating a disabled
// default row on first access.
func GetNotificationSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var setting models.NotificationSetting
	err := config.DB.Where("user_id = ?", userID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.NotificationSetting{UserID: userID, Timezone: "UTC"}
		if err := config.DB.Create(&setting).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create settings")
			return
		}
	} else if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prayerStart":  setting.PrayerStart,
		"prayerEnding": setting.PrayerEnding,
		"duaReminders": setting.DuaReminders,
		"smsAlerts":    setting.SMSAlerts,
		"timezone":     setting.Timezone,
		"latitude":     setting.Latitude,
		"longitude":    setting.Longitude,
	})
}

// UpdateNotificationSettings applies a partial update to the caller's settings.
func UpdateNotificationSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Timezone != nil && *input.Timezone != "" {
		if _, err := time.LoadLocation(*input.Timezone); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown timezone")
			return
		}
	}

	var setting models.NotificationSetting
	err := config.DB.Where("user_id = ?", userID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.NotificationSetting{UserID: userID, Timezone: "UTC"}
	} else if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if input.PrayerStart != nil {
		setting.PrayerStart = *input.PrayerStart
	}
	if input.PrayerEnding != nil {
		setting.PrayerEnding = *input.PrayerEnding
	}
	if input.DuaReminders != nil {
		setting.DuaReminders = *input.DuaReminders
	}
	if input.SMSAlerts != nil {
		setting.SMSAlerts = *input.SMSAlerts
	}
	if input.Timezone != nil {
		setting.Timezone = *input.Timezone
	}
	if input.Latitude != nil {
		setting.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		setting.Longitude = *input.Longitude
	}

	if err := config.DB.Save(&setting).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated"})
}
