package controllers

import (
	"hotelmate/dto"
	"hotelmate/middleware"
	"hotelmate/response"
	"hotelmate/services"
	"hotelmate/services/logger"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	service *services.RateGridService
	logger  logger.Logger
}

func NewAvailabilityController(service *services.RateGridService, log logger.Logger) *AvailabilityController {
	return &AvailabilityController{
		service: service,
		logger:  log,
	}
}

func (ctl *AvailabilityController) GetAvailability(c *gin.Context) {
	records, err := ctl.service.ListAvailability(c, c.GetString(middleware.HotelCodeKey), c.Query("from"), c.Query("to"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, records)
}

func (ctl *AvailabilityController) UpdateAvailability(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := ctl.service.UpsertAvailability(c, c.GetString(middleware.HotelCodeKey), req); err != nil {
		ctl.logger.Error("Lỗi khi cập nhật tồn phòng: %v", err)
		response.FromError(c, err)
		return
	}

	response.Success(c, nil)
}
