package dto

import "hotelmate/services/rategrid"

// GridQuery là tham số tải lưới giá
type GridQuery struct {
	HotelCode string `json:"hotelCode" validate:"required"`
	From      string `json:"from" validate:"required,datetime=2006-01-02"`
	To        string `json:"to" validate:"required,datetime=2006-01-02"`
	Filters   rategrid.Filters
}

type GridMeta struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Total      int    `json:"total"`
	Suggestion string `json:"suggestion,omitempty"`
}

type GridResult struct {
	Rooms []rategrid.MergedRoom `json:"rooms"`
	Meta  GridMeta              `json:"meta"`
}

// OverrideRequest là yêu cầu sửa một ô trên lưới
type OverrideRequest struct {
	HotelCode  string   `json:"-" validate:"required"`
	RoomTypeID uint     `json:"roomTypeID" validate:"required"`
	PlanKey    string   `json:"planKey" validate:"required"`
	DateFrom   string   `json:"dateFrom" validate:"required,datetime=2006-01-02"`
	DateTo     string   `json:"dateTo" validate:"required,datetime=2006-01-02"`
	Occupancy  int      `json:"occupancy" validate:"required,min=1,max=18"`
	Value      *float64 `json:"value" validate:"required"`
	Mode       string   `json:"mode" validate:"required,oneof=set increase decrease"`
	Percent    bool     `json:"percent"`
}

// GridUpdatedEvent được phát qua websocket sau khi lưu giá
type GridUpdatedEvent struct {
	Event      string `json:"event"`
	HotelCode  string `json:"hotelCode"`
	RoomTypeID uint   `json:"roomTypeID"`
	PlanKey    string `json:"planKey"`
	DateFrom   string `json:"dateFrom"`
	DateTo     string `json:"dateTo"`
}
