package controllers

import (
	"strconv"

	"hotelmate/middleware"
	"hotelmate/models"
	"hotelmate/response"
	"hotelmate/services"
	"hotelmate/services/logger"

	"github.com/gin-gonic/gin"
)

type RatePlanController struct {
	service *services.RateGridService
	logger  logger.Logger
}

func NewRatePlanController(service *services.RateGridService, log logger.Logger) *RatePlanController {
	return &RatePlanController{
		service: service,
		logger:  log,
	}
}

func (ctl *RatePlanController) GetRatePlans(c *gin.Context) {
	plans, err := ctl.service.ListRatePlans(c, c.GetString(middleware.HotelCodeKey), c.Query("from"), c.Query("to"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.SuccessWithTotal(c, plans, len(plans))
}

func (ctl *RatePlanController) GetRatePlanDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID gói giá không hợp lệ")
		return
	}

	plan, err := ctl.service.GetRatePlan(c, c.GetString(middleware.HotelCodeKey), uint(id))
	if err != nil {
		// ErrorHandler trả response
		_ = c.Error(err)
		return
	}

	response.Success(c, plan)
}

func (ctl *RatePlanController) CreateRatePlan(c *gin.Context) {
	var plan models.RatePlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := ctl.service.CreateRatePlan(c, c.GetString(middleware.HotelCodeKey), &plan); err != nil {
		ctl.logger.Error("Lỗi khi tạo gói giá: %v", err)
		response.FromError(c, err)
		return
	}

	response.Success(c, plan)
}
