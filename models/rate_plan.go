package models

import (
	"fmt"
	"time"
)

type RatePlan struct {
	ID               uint        `json:"id" gorm:"primaryKey"`
	HotelCode        string      `json:"hotelCode" gorm:"size:32;index"`
	RoomTypeID       uint        `json:"roomTypeID" gorm:"index"`
	RoomType         string      `json:"roomType"`
	MealPlan         string      `json:"mealPlan" gorm:"size:16"` // mã ngắn, ví dụ "BB"
	MealPlanName     string      `json:"mealPlanName"`
	RateCodeID       *uint       `json:"rateCodeID"`
	RateCode         string      `json:"rateCode"`
	CurrencyCode     string      `json:"currencyCode" gorm:"size:3"`
	SellMode         string      `json:"sellMode"`
	RateMode         string      `json:"rateMode"`
	PrimaryOccupancy int         `json:"primaryOccupancy" gorm:"default:1"`
	RatePlanName     *string     `json:"ratePlan"`
	CreatedAt        time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
	HotelRates       []HotelRate `json:"hotelRates" gorm:"foreignKey:RatePlanID"`
}

// HotelRate là giá của một gói giá trong một ngày
type HotelRate struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	RatePlanID  uint     `json:"ratePlanID" gorm:"index:idx_rate_plan_date,unique"`
	Date        string   `json:"date" gorm:"size:10;index:idx_rate_plan_date,unique"`
	DefaultRate float64  `json:"defaultRate"`
	Pax1        *float64 `json:"pax1" gorm:"column:pax1"`
	Pax2        *float64 `json:"pax2" gorm:"column:pax2"`
	Pax3        *float64 `json:"pax3" gorm:"column:pax3"`
	Pax4        *float64 `json:"pax4" gorm:"column:pax4"`
	Pax5        *float64 `json:"pax5" gorm:"column:pax5"`
	Pax6        *float64 `json:"pax6" gorm:"column:pax6"`
	Pax7        *float64 `json:"pax7" gorm:"column:pax7"`
	Pax8        *float64 `json:"pax8" gorm:"column:pax8"`
	Pax9        *float64 `json:"pax9" gorm:"column:pax9"`
	Pax10       *float64 `json:"pax10" gorm:"column:pax10"`
	Pax11       *float64 `json:"pax11" gorm:"column:pax11"`
	Pax12       *float64 `json:"pax12" gorm:"column:pax12"`
	Pax13       *float64 `json:"pax13" gorm:"column:pax13"`
	Pax14       *float64 `json:"pax14" gorm:"column:pax14"`
	Pax15       *float64 `json:"pax15" gorm:"column:pax15"`
	Pax16       *float64 `json:"pax16" gorm:"column:pax16"`
	Pax17       *float64 `json:"pax17" gorm:"column:pax17"`
	Pax18       *float64 `json:"pax18" gorm:"column:pax18"`
	IncreaseBy  *float64 `json:"increaseBy"`
	DecreaseBy  *float64 `json:"decreaseBy"`
	Child       *float64 `json:"child"`
	ChildRate   *float64 `json:"childRate"`
}

func (r *HotelRate) paxFields() []**float64 {
	return []**float64{
		&r.Pax1, &r.Pax2, &r.Pax3, &r.Pax4, &r.Pax5, &r.Pax6,
		&r.Pax7, &r.Pax8, &r.Pax9, &r.Pax10, &r.Pax11, &r.Pax12,
		&r.Pax13, &r.Pax14, &r.Pax15, &r.Pax16, &r.Pax17, &r.Pax18,
	}
}

// Pax trả về giá của cột pax{n}, nil nếu không có hoặc n ngoài khoảng 1..18
func (r *HotelRate) Pax(n int) *float64 {
	fields := r.paxFields()
	if n < 1 || n > len(fields) {
		return nil
	}
	return *fields[n-1]
}

func (r *HotelRate) SetPax(n int, v *float64) error {
	fields := r.paxFields()
	if n < 1 || n > len(fields) {
		return fmt.Errorf("invalid occupancy: %d, must be between 1 and %d", n, len(fields))
	}
	*fields[n-1] = v
	return nil
}

// HasPax cho biết dòng giá có ít nhất một cột pax
func (r *HotelRate) HasPax() bool {
	for _, f := range r.paxFields() {
		if *f != nil {
			return true
		}
	}
	return false
}

// RowFor trả về dòng giá của ngày date, nếu không có thì lấy dòng đầu tiên
func (p *RatePlan) RowFor(date string) *HotelRate {
	if len(p.HotelRates) == 0 {
		return nil
	}
	for i := range p.HotelRates {
		if p.HotelRates[i].Date == date {
			return &p.HotelRates[i]
		}
	}
	return &p.HotelRates[0]
}
