package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ptasnack/snackbar-app/database"
	"github.com/ptasnack/snackbar-app/models"
	"github.com/ptasnack/snackbar-app/utils"
)

// listCap bounds every list endpoint. There is no pagination.
const listCap = 1000

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenu -> all menu items; seeds the catalog first if it is empty.
// Two concurrent first reads can both observe an empty catalog and both
// seed it. That race is part of the contract and is left alone.
func (mc *MenuController) GetMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Limit(listCap).Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if len(items) == 0 {
		count, err := database.SeedMenu(mc.DB)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Menu catalog was empty, seeded %d items", count)

		if err := mc.DB.Limit(listCap).Find(&items).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	c.JSON(http.StatusOK, items)
}

// SeedMenu -> wipe the catalog and seed it fresh, with new ids.
func (mc *MenuController) SeedMenu(c *gin.Context) {
	count, err := database.ReseedMenu(mc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Seeded %d menu items", count),
		"count":   count,
	})
}
