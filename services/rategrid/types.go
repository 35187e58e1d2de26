// Package rategrid dựng lưới giá/phòng trống từ gói giá và tồn phòng,
// lọc lưới để hiển thị và tính giá khi người dùng sửa một ô.
package rategrid

type (
	RoomTypeID uint
	DateKey    string
	PlanKey    string
)

// RateEntry là giá của một mức số khách trong một ngày của một gói giá
type RateEntry struct {
	PlanKey       PlanKey `json:"planKey"`
	Rate          float64 `json:"rate"`
	Occupancy     int     `json:"occupancy"`
	IsLinked      bool    `json:"isLinked"`
	IsDefaultRate bool    `json:"isDefaultRate"`
	Date          DateKey `json:"date"`
	CurrencyCode  string  `json:"currencyCode"`
}

// PlanMeta là thông tin hiển thị của một gói giá
type PlanMeta struct {
	Label            string  `json:"label"`
	RateCodeID       *uint   `json:"rateCodeID"`
	RateCode         string  `json:"rateCode"`
	CurrencyCode     string  `json:"currencyCode"`
	RatePlanName     *string `json:"ratePlanName"`
	RatePlanID       uint    `json:"ratePlanID"`
	SellMode         string  `json:"sellMode"`
	RateMode         string  `json:"rateMode"`
	PrimaryOccupancy int     `json:"primaryOccupancy"`
}

type DateCount struct {
	Date  DateKey `json:"date"`
	Count int     `json:"count"`
}

type AvailabilityRecord struct {
	RoomTypeID   RoomTypeID  `json:"roomTypeID"`
	RoomType     string      `json:"roomType"`
	Availability []DateCount `json:"availability"`
}

// MergedRoom được dựng lại mỗi lần tải lưới, không lưu xuống DB
type MergedRoom struct {
	RoomTypeID   RoomTypeID                          `json:"roomTypeID"`
	RoomType     string                              `json:"roomType"`
	Availability []DateCount                         `json:"availability"`
	PlanOrder    []PlanKey                           `json:"planOrder"`
	PlansByPlan  map[PlanKey]map[DateKey][]RateEntry `json:"plansByPlan"`
	PlanMetaMap  map[PlanKey]PlanMeta                `json:"planMetaMap"`
}

// Entry tìm giá của một mức số khách trong một ngày
func (r *MergedRoom) Entry(key PlanKey, date DateKey, occupancy int) (RateEntry, bool) {
	for _, e := range r.PlansByPlan[key][date] {
		if e.Occupancy == occupancy {
			return e, true
		}
	}
	return RateEntry{}, false
}

// FindRoom trả về phòng có roomTypeID tương ứng hoặc nil
func FindRoom(rooms []MergedRoom, id RoomTypeID) *MergedRoom {
	for i := range rooms {
		if rooms[i].RoomTypeID == id {
			return &rooms[i]
		}
	}
	return nil
}
