package models

import "time"

type RoomAvailability struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	HotelCode  string    `json:"hotelCode" gorm:"size:32;index:idx_avail_room_date,unique"`
	RoomTypeID uint      `json:"roomTypeID" gorm:"index:idx_avail_room_date,unique"`
	RoomType   string    `json:"roomType"`
	Date       string    `json:"date" gorm:"size:10;index:idx_avail_room_date,unique"`
	Count      int       `json:"count"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
