package routes

import (
	"net/http"

	"hotelmate/controllers"
	middlewares "hotelmate/middleware"
	"hotelmate/services"
	"hotelmate/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

type Deps struct {
	Grid      *services.RateGridService
	Melody    *melody.Melody
	JWTSecret []byte
	Logger    logger.Logger
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	gridController := controllers.NewRateGridController(deps.Grid, deps.Logger)
	ratePlanController := controllers.NewRatePlanController(deps.Grid, deps.Logger)
	availabilityController := controllers.NewAvailabilityController(deps.Grid, deps.Logger)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	if deps.Melody != nil {
		router.GET("/ws", func(c *gin.Context) {
			deps.Melody.HandleRequest(c.Writer, c.Request)
		})
	}

	auth := middlewares.AuthMiddleware(deps.JWTSecret)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware(), middlewares.ErrorHandler())

	v1.GET("/rateGrid", middlewares.RequireHotel(), gridController.GetRateGrid)
	v1.POST("/rateGrid/override", auth, middlewares.RequireHotel(), gridController.OverrideRate)

	v1.GET("/ratePlans", middlewares.RequireHotel(), ratePlanController.GetRatePlans)
	v1.GET("/ratePlans/:id", middlewares.RequireHotel(), ratePlanController.GetRatePlanDetail)
	v1.POST("/ratePlans", auth, middlewares.RequireHotel(), ratePlanController.CreateRatePlan)

	v1.GET("/availability", middlewares.RequireHotel(), availabilityController.GetAvailability)
	v1.PUT("/availability", auth, middlewares.RequireHotel(), availabilityController.UpdateAvailability)
}
