package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ptasnack/snackbar-app/config"
	"github.com/ptasnack/snackbar-app/database"
	"github.com/ptasnack/snackbar-app/models"
	"github.com/ptasnack/snackbar-app/router"
	"github.com/ptasnack/snackbar-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupIntegrationRouter(t *testing.T) *gin.Engine {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.ActivityLogEntry{},
		&models.AppSettings{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{
		AdminPIN:    "1990",
		CORSOrigins: []string{"*"},
	}
	return router.SetupRouter(db, cfg)
}

func request(t *testing.T, r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestOrderLifecycle walks the whole counter flow: check the API root, load
// the menu (seeding it), place an order for Jan, mark it paid, shrink it to
// one frikandel, log the activity, store a payment link, and delete the
// order again.
func TestOrderLifecycle(t *testing.T) {
	r := setupIntegrationRouter(t)

	// Root greets.
	w := request(t, r, "GET", "/api/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var root map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &root))
	assert.Equal(t, "P&TA Snack Bestel App API", root["message"])

	// First menu read seeds the catalog.
	w = request(t, r, "GET", "/api/menu", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var menu []models.MenuItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &menu))
	assert.Equal(t, len(database.ReferenceMenu), len(menu))

	// Jan orders two frikandellen.
	w = request(t, r, "POST", "/api/orders", map[string]interface{}{
		"customer_name": "Jan",
		"items": []map[string]interface{}{
			{"menu_item_id": menu[0].ID, "name": "Frikandel", "quantity": 2, "price": 2.25},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.InDelta(t, 4.50, order.TotalPrice, 1e-9)
	assert.False(t, order.IsPaid)

	// Mark paid, nothing else changes.
	w = request(t, r, "PUT", "/api/orders/"+order.ID, map[string]interface{}{
		"is_paid": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var paid models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &paid))
	assert.True(t, paid.IsPaid)
	assert.InDelta(t, 4.50, paid.TotalPrice, 1e-9)

	// Jan changes his mind: one frikandel.
	w = request(t, r, "PUT", "/api/orders/"+order.ID, map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": menu[0].ID, "name": "Frikandel", "quantity": 1, "price": 2.25},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var shrunk models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &shrunk))
	assert.InDelta(t, 2.25, shrunk.TotalPrice, 1e-9)
	assert.True(t, shrunk.IsPaid)

	// Log the change.
	w = request(t, r, "POST", "/api/activity-log", map[string]interface{}{
		"action":   "order_updated",
		"details":  "Jan reduced to one frikandel",
		"order_id": order.ID,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(t, r, "GET", "/api/activity-log", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var entries []models.ActivityLogEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
	assert.Equal(t, "order_updated", entries[0].Action)

	// Store the payment link.
	w = request(t, r, "PUT", "/api/settings", map[string]interface{}{
		"payment_link": "https://tikkie.me/pay/snackbar",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var settings models.AppSettings
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, "https://tikkie.me/pay/snackbar", settings.PaymentLink)

	// Admin checks in.
	w = request(t, r, "POST", "/api/admin/verify", map[string]interface{}{"pin": "1990"})
	assert.Equal(t, http.StatusOK, w.Code)
	var verify map[string]bool
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &verify))
	assert.True(t, verify["success"])

	// Delete the order; the list no longer contains it.
	w = request(t, r, "DELETE", "/api/orders/"+order.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(t, r, "GET", "/api/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Empty(t, orders)
}
