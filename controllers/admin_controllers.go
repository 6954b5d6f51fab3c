package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ptasnack/snackbar-app/models"
	"github.com/ptasnack/snackbar-app/utils"
)

type AdminController struct {
	DB  *gorm.DB
	PIN string
}

func NewAdminController(db *gorm.DB, pin string) *AdminController {
	return &AdminController{DB: db, PIN: pin}
}

// VerifyPin -> exact, case-sensitive string comparison against the
// configured PIN. A wrong pin is a normal false response, never an error,
// and there is deliberately no required binding: a missing or empty pin
// just fails the comparison.
func (ac *AdminController) VerifyPin(c *gin.Context) {
	type ReqBody struct {
		Pin string `json:"pin"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": body.Pin == ac.PIN})
}

// ResetApp -> drop every order unconditionally. Succeeds even when there
// were none.
func (ac *AdminController) ResetApp(c *gin.Context) {
	if err := ac.DB.Where("1 = 1").Delete(&models.Order{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Println("All orders have been reset")
	c.JSON(http.StatusOK, gin.H{"message": "All orders have been reset"})
}
