package dto

type AvailabilityUpdate struct {
	RoomTypeID uint   `json:"roomTypeID" validate:"required"`
	RoomType   string `json:"roomType"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Count      int    `json:"count" validate:"min=0"`
}

// AvailabilityRequest là yêu cầu cập nhật số phòng trống
type AvailabilityRequest struct {
	Items []AvailabilityUpdate `json:"items" validate:"required,min=1,dive"`
}
