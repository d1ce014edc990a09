// controllers/notify.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deenly-backend/services"
	"deenly-backend/utils"
)

// NotifyController exposes the scheduled-job HTTP triggers.
type NotifyController struct {
	Dispatch *services.DispatchService
	Nudge    *services.NudgeService
}

// SendScheduledNotifications runs one dispatch cycle and returns the batch
// summary. Recipient-level failures are already folded into the summary; only
// a resolver failure produces a 500.
func (nc *NotifyController) SendScheduledNotifications(c *gin.Context) {
	summary, err := nc.Dispatch.RunCycle(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SendDailyNudge runs one inactivity-nudge cycle.
func (nc *NotifyController) SendDailyNudge(c *gin.Context) {
	summary, err := nc.Nudge.RunCycle(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}
