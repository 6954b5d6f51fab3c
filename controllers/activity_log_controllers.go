package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ptasnack/snackbar-app/models"
	"github.com/ptasnack/snackbar-app/utils"
)

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

// GetActivityLog -> entries newest first.
func (ac *ActivityLogController) GetActivityLog(c *gin.Context) {
	var entries []models.ActivityLogEntry
	if err := ac.DB.Order("timestamp DESC").Limit(listCap).Find(&entries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateActivityLog -> append one entry. The order reference, if any, is
// stored as-is without checking that such an order exists.
func (ac *ActivityLogController) CreateActivityLog(c *gin.Context) {
	// Details is a required pointer: the field must be present, but an
	// explicit empty string is a valid value.
	type ReqBody struct {
		Action     string  `json:"action" binding:"required"`
		Details    *string `json:"details" binding:"required"`
		OrderID    *string `json:"order_id"`
		DeviceInfo *string `json:"device_info"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	entry := models.ActivityLogEntry{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC().Format(models.TimestampLayout),
		Action:     body.Action,
		Details:    *body.Details,
		OrderID:    body.OrderID,
		DeviceInfo: body.DeviceInfo,
	}

	if err := ac.DB.Create(&entry).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}
