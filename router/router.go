package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ptasnack/snackbar-app/config"
	"github.com/ptasnack/snackbar-app/controllers"
	"github.com/ptasnack/snackbar-app/middlewares"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigins))
	r.Use(middlewares.LoggerMiddleware())

	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	activityCtrl := controllers.NewActivityLogController(db)
	settingsCtrl := controllers.NewSettingsController(db)
	adminCtrl := controllers.NewAdminController(db, cfg.AdminPIN)

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "P&TA Snack Bestel App API"})
		})

		api.GET("/menu", menuCtrl.GetMenu)
		api.POST("/menu/seed", menuCtrl.SeedMenu)

		api.GET("/orders", orderCtrl.GetAllOrders)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.PUT("/orders/:order_id", orderCtrl.UpdateOrder)
		api.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

		api.GET("/activity-log", activityCtrl.GetActivityLog)
		api.POST("/activity-log", activityCtrl.CreateActivityLog)

		api.GET("/settings", settingsCtrl.GetSettings)
		api.PUT("/settings", settingsCtrl.UpdateSettings)

		api.POST("/admin/verify", adminCtrl.VerifyPin)
		api.POST("/reset", adminCtrl.ResetApp)
	}

	return r
}
