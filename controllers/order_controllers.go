package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ptasnack/snackbar-app/models"
	"github.com/ptasnack/snackbar-app/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// GetAllOrders -> all orders in storage order.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Limit(listCap).Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder -> new order with total computed from the submitted items.
// Item prices are snapshots supplied by the client, not catalog lookups.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type ReqBody struct {
		CustomerName string            `json:"customer_name" binding:"required"`
		Items        models.OrderItems `json:"items" binding:"required,dive"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	order := models.Order{
		ID:           uuid.NewString(),
		CustomerName: body.CustomerName,
		Items:        body.Items,
		TotalPrice:   body.Items.TotalPrice(),
		IsPaid:       false,
		CreatedAt:    time.Now().UTC().Format(models.TimestampLayout),
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %s created for %s, total %.2f", order.ID, order.CustomerName, order.TotalPrice)
	c.JSON(http.StatusOK, order)
}

// UpdateOrder -> replace the item list and/or set the paid flag.
// A supplied item list discards the old one entirely and the total is
// recomputed from the new list in the same write. The read and the write
// are separate store calls, so concurrent updates are last-write-wins.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	var order models.Order
	if err := oc.DB.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Order not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// A nil Items slice means the field was absent (or null) and the stored
	// list stays; an explicit empty list replaces it.
	type ReqBody struct {
		Items  models.OrderItems `json:"items" binding:"omitempty,dive"`
		IsPaid *bool             `json:"is_paid"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	changed := false
	if body.Items != nil {
		order.Items = body.Items
		order.TotalPrice = order.Items.TotalPrice()
		changed = true
	}
	if body.IsPaid != nil {
		order.IsPaid = *body.IsPaid
		changed = true
	}

	if changed {
		if err := oc.DB.Save(&order).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	// Re-read so the response reflects what is actually stored.
	var updated models.Order
	if err := oc.DB.First(&updated, "id = ?", orderID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteOrder -> remove one order, 404 if it never existed.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	result := oc.DB.Delete(&models.Order{}, "id = ?", orderID)
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("Order not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
