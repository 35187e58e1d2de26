package rategrid

import (
	"fmt"
	"math"
	"strconv"

	"hotelmate/constants"

	json "github.com/goccy/go-json"
)

// Round2 làm tròn 2 chữ số thập phân (half-up), giá âm về 0
func Round2(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Floor(x*100+0.5) / 100
}

// ApplyOp tính giá mới của ô từ giá hiện tại base
func ApplyOp(base float64, mode string, value float64, percent bool) (float64, error) {
	switch mode {
	case constants.OpSet:
		return Round2(value), nil
	case constants.OpIncrease:
		if percent {
			return Round2(base + base*value/100), nil
		}
		return Round2(base + value), nil
	case constants.OpDecrease:
		if percent {
			return Round2(base - base*value/100), nil
		}
		return Round2(base - value), nil
	default:
		return 0, fmt.Errorf("unknown operation %q", mode)
	}
}

// IsEditable: gói tự động chỉ sửa được tại ô giá mặc định
func IsEditable(e RateEntry) bool {
	return !e.IsLinked || e.IsDefaultRate
}

// CellEditable kiểm tra ô (occupancy) của gói meta, entry nil khi ô chưa có giá
func CellEditable(meta PlanMeta, entry *RateEntry, occupancy int) bool {
	if entry != nil {
		return IsEditable(*entry)
	}
	if meta.RateMode != constants.RateModeAuto {
		return true
	}
	return occupancy == meta.PrimaryOccupancy
}

type slotKind uint8

const (
	slotUnchanged slotKind = iota
	slotSet
)

// OccupancySlot là giá trị của một cột pax khi gửi cập nhật:
// Unchanged (giữ nguyên, mã hóa là null) hoặc SetTo(v).
type OccupancySlot struct {
	kind  slotKind
	value float64
}

func Unchanged() OccupancySlot { return OccupancySlot{} }

func SetTo(v float64) OccupancySlot { return OccupancySlot{kind: slotSet, value: v} }

func (s OccupancySlot) IsSet() bool { return s.kind == slotSet }

// Value trả về giá và true nếu slot được đặt
func (s OccupancySlot) Value() (float64, bool) {
	return s.value, s.kind == slotSet
}

func (s OccupancySlot) MarshalJSON() ([]byte, error) {
	if s.kind != slotSet {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

func (s *OccupancySlot) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = Unchanged()
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = SetTo(v)
	return nil
}

// CarryForward là các trường của gói tự động theo đầu người được gửi kèm
type CarryForward struct {
	IncreaseBy *float64 `json:"increaseBy"`
	DecreaseBy *float64 `json:"decreaseBy"`
	Child      *float64 `json:"child"`
	ChildRate  *float64 `json:"childRate"`
}

// OverridePayload là bản cập nhật đầy đủ 18 cột pax cho một (phòng, gói, khoảng ngày)
type OverridePayload struct {
	RatePlanID   uint
	RoomTypeID   RoomTypeID
	PlanKey      PlanKey
	CurrencyCode string
	DateFrom     DateKey
	DateTo       DateKey
	Occupancy    int
	DefaultRate  OccupancySlot
	Pax          [constants.MaxOccupancy]OccupancySlot
	Carry        *CarryForward
}

// PaxKey trả về tên cột "pax{n}"
func PaxKey(n int) string {
	return "pax" + strconv.Itoa(n)
}

// MarshalJSON luôn ghi đủ pax1..pax18; defaultRate và các trường carry
// chỉ xuất hiện khi được đặt.
func (p OverridePayload) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{
		"ratePlanID":   p.RatePlanID,
		"roomTypeID":   p.RoomTypeID,
		"planKey":      p.PlanKey,
		"currencyCode": p.CurrencyCode,
		"dateFrom":     p.DateFrom,
		"dateTo":       p.DateTo,
		"occupancy":    p.Occupancy,
	}
	for i, slot := range p.Pax {
		m[PaxKey(i+1)] = slot
	}
	if p.DefaultRate.IsSet() {
		m["defaultRate"] = p.DefaultRate
	}
	if p.Carry != nil {
		m["increaseBy"] = p.Carry.IncreaseBy
		m["decreaseBy"] = p.Carry.DecreaseBy
		m["child"] = p.Carry.Child
		m["childRate"] = p.Carry.ChildRate
	}
	return json.Marshal(m)
}
