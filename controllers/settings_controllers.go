package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ptasnack/snackbar-app/models"
	"github.com/ptasnack/snackbar-app/utils"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// getOrCreate returns the settings singleton, inserting the defaults first
// if no row exists yet.
func (sc *SettingsController) getOrCreate() (models.AppSettings, error) {
	var settings models.AppSettings
	err := sc.DB.First(&settings, "id = ?", models.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultAppSettings()
		if err := sc.DB.Create(&settings).Error; err != nil {
			return models.AppSettings{}, err
		}
		return settings, nil
	}
	return settings, err
}

// GetSettings -> the singleton settings record, created on first access.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings, err := sc.getOrCreate()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings -> overwrite only the fields present in the request body.
// An explicit empty payment link or explicit false edit mode does overwrite;
// an absent field leaves the stored value alone.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	type ReqBody struct {
		PaymentLink *string `json:"payment_link"`
		IsEditMode  *bool   `json:"is_edit_mode"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if _, err := sc.getOrCreate(); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Map form so zero values (empty link, false flag) are written too.
	updates := map[string]interface{}{}
	if body.PaymentLink != nil {
		updates["payment_link"] = *body.PaymentLink
	}
	if body.IsEditMode != nil {
		updates["is_edit_mode"] = *body.IsEditMode
	}

	if len(updates) > 0 {
		if err := sc.DB.Model(&models.AppSettings{}).
			Where("id = ?", models.SettingsID).
			Updates(updates).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	var settings models.AppSettings
	if err := sc.DB.First(&settings, "id = ?", models.SettingsID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
