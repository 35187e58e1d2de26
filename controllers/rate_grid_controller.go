package controllers

import (
	"hotelmate/dto"
	"hotelmate/middleware"
	"hotelmate/response"
	"hotelmate/services"
	"hotelmate/services/logger"
	"hotelmate/services/rategrid"

	"github.com/gin-gonic/gin"
)

type RateGridController struct {
	service *services.RateGridService
	logger  logger.Logger
}

func NewRateGridController(service *services.RateGridService, log logger.Logger) *RateGridController {
	return &RateGridController{
		service: service,
		logger:  log,
	}
}

// resolveFilters gộp bộ lọc mới với bộ lọc lần trước của phiên, reset=1 bỏ bộ lọc cũ
func (ctl *RateGridController) resolveFilters(c *gin.Context, hotelCode string) rategrid.Filters {
	filters := rategrid.Filters{
		RoomType: c.Query("roomType"),
		MealPlan: c.Query("mealPlan"),
		RateCode: c.Query("rateCode"),
		Currency: c.Query("currency"),
	}

	sessionID := c.GetString(middleware.SessionIDKey)
	if sessionID == "" {
		return filters
	}
	cache := ctl.service.Cache()

	if c.Query("reset") == "1" {
		if err := services.ClearLastFilters(c, cache, hotelCode, sessionID); err != nil {
			ctl.logger.Warn("Lỗi khi xóa bộ lọc của phiên %s: %v", sessionID, err)
		}
	} else if old, found, err := services.GetLastFilters(c, cache, hotelCode, sessionID); err == nil && found {
		filters = services.MergeFilters(old, filters)
	}

	if !services.IsEmptyFilters(filters) {
		if err := services.SaveLastFilters(c, cache, hotelCode, sessionID, filters); err != nil {
			ctl.logger.Warn("Lỗi khi lưu bộ lọc của phiên %s: %v", sessionID, err)
		}
	}
	return filters
}

func (ctl *RateGridController) GetRateGrid(c *gin.Context) {
	hotelCode := c.GetString(middleware.HotelCodeKey)
	query := dto.GridQuery{
		HotelCode: hotelCode,
		From:      c.Query("from"),
		To:        c.Query("to"),
		Filters:   ctl.resolveFilters(c, hotelCode),
	}

	result, err := ctl.service.Load(c, query)
	if err != nil {
		ctl.logger.Error("Lỗi khi tải lưới giá %s: %v", hotelCode, err)
		response.FromError(c, err)
		return
	}

	response.SuccessWithMeta(c, result.Rooms, result.Meta)
}

func (ctl *RateGridController) OverrideRate(c *gin.Context) {
	var req dto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	req.HotelCode = c.GetString(middleware.HotelCodeKey)

	payloads, err := ctl.service.ApplyOverride(c, req)
	if err != nil {
		ctl.logger.Error("Lỗi khi sửa giá %s: %v", req.PlanKey, err)
		response.FromError(c, err)
		return
	}

	response.Success(c, payloads)
}
