package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ptasnack/snackbar-app/controllers"
	"github.com/ptasnack/snackbar-app/models"
)

func setupTestDBForSettings(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.AppSettings{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupSettingsRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	settingsCtrl := controllers.NewSettingsController(db)
	router.GET("/api/settings", settingsCtrl.GetSettings)
	router.PUT("/api/settings", settingsCtrl.UpdateSettings)
	return router
}

func TestGetSettingsCreatesDefaults(t *testing.T) {
	db := setupTestDBForSettings(t)
	router := setupSettingsRouter(db)

	w := doJSON(t, router, "GET", "/api/settings", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var settings models.AppSettings
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, models.SettingsID, settings.ID)
	assert.Equal(t, "", settings.PaymentLink)
	assert.False(t, settings.IsEditMode)

	// First read persisted the defaults.
	var count int64
	assert.NoError(t, db.Model(&models.AppSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// A second read finds the stored row, it does not insert again.
	w = doJSON(t, router, "GET", "/api/settings", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, db.Model(&models.AppSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateSettingsPartialFields(t *testing.T) {
	db := setupTestDBForSettings(t)
	router := setupSettingsRouter(db)

	w := doJSON(t, router, "PUT", "/api/settings", map[string]interface{}{
		"payment_link": "https://tikkie.me/pay/snackbar",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var settings models.AppSettings
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, "https://tikkie.me/pay/snackbar", settings.PaymentLink)
	assert.False(t, settings.IsEditMode)

	// Toggling edit mode leaves the link alone.
	w = doJSON(t, router, "PUT", "/api/settings", map[string]interface{}{
		"is_edit_mode": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, "https://tikkie.me/pay/snackbar", settings.PaymentLink)
	assert.True(t, settings.IsEditMode)
}

func TestUpdateSettingsExplicitZeroValuesOverwrite(t *testing.T) {
	db := setupTestDBForSettings(t)
	router := setupSettingsRouter(db)

	w := doJSON(t, router, "PUT", "/api/settings", map[string]interface{}{
		"payment_link": "https://tikkie.me/pay/snackbar",
		"is_edit_mode": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Explicit empty string and explicit false must both be applied.
	w = doJSON(t, router, "PUT", "/api/settings", map[string]interface{}{
		"payment_link": "",
		"is_edit_mode": false,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var settings models.AppSettings
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, "", settings.PaymentLink)
	assert.False(t, settings.IsEditMode)
}

func TestUpdateSettingsEmptyBodyIsNoOp(t *testing.T) {
	db := setupTestDBForSettings(t)
	router := setupSettingsRouter(db)

	w := doJSON(t, router, "PUT", "/api/settings", map[string]interface{}{})
	assert.Equal(t, http.StatusOK, w.Code)

	var settings models.AppSettings
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, "", settings.PaymentLink)
	assert.False(t, settings.IsEditMode)
}
