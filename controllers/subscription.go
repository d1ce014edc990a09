// controllers/subscription.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deenly-backend/config"
	"deenly-backend/models"
	"deenly-backend/utils"
)

type SubscribeInput struct {
	Endpoint string `json:"endpoint" binding:"required"`
	P256dh   string `json:"p256dh" binding:"required"`
	Auth     string `json:"auth" binding:"required"`
}

type ExpoTokenInput struct {
	Token string `json:"token" binding:"required"`
}

// RegisterSubscription stores a browser push subscription. Re-registering an
// existing endpoint reactivates it instead of inserting a duplicate.
func RegisterSubscription(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.PushSubscription
	if err := config.DB.Where("user_id = ? AND endpoint = ?", userID, input.Endpoint).
		First(&existing).Error; err == nil {
		existing.P256dh = input.P256dh
		existing.Auth = input.Auth
		existing.IsActive = true
		if err := config.DB.Save(&existing).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update subscription")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subscription updated"})
		return
	}

	sub := models.PushSubscription{
		UserID:   userID,
		Endpoint: input.Endpoint,
		P256dh:   input.P256dh,
		Auth:     input.Auth,
		IsActive: true,
	}
	if err := config.DB.Create(&sub).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create subscription")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Subscription created"})
}

// DeactivateSubscription marks a subscription inactive so dispatch skips it.
func DeactivateSubscription(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Endpoint string `json:"endpoint" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	result := config.DB.Model(&models.PushSubscription{}).
		Where("user_id = ? AND endpoint = ?", userID, input.Endpoint).
		Update("is_active", false)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate subscription")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Subscription not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription deactivated"})
}

// SetExpoToken stores the mobile app's Expo push token on the profile.
func SetExpoToken(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input ExpoTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := config.DB.Model(&models.Profile{}).Where("id = ?", userID).
		Update("expo_push_token", input.Token).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Push token saved"})
}
