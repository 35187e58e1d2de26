package rategrid

import (
	"strconv"
	"strings"
	"unicode"

	"hotelmate/constants"

	"github.com/fiam/gounidecode/unidecode"
)

// Filters là các bộ lọc của lưới, giá trị rỗng hoặc "all" tắt bộ lọc
type Filters struct {
	RoomType string `form:"roomType" json:"roomType"`
	MealPlan string `form:"mealPlan" json:"mealPlan"`
	RateCode string `form:"rateCode" json:"rateCode"`
	Currency string `form:"currency" json:"currency"`
}

func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, constants.FilterAll)
}

// NormalizeRoomType bỏ dấu, chữ hoa và khoảng trắng
func NormalizeRoomType(s string) string {
	s = strings.ToLower(unidecode.Unidecode(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// HasRoomType cho biết bộ lọc loại phòng đang bật
func (f Filters) HasRoomType() bool {
	return active(f.RoomType)
}

func (f Filters) hasPlanFilter() bool {
	return active(f.MealPlan) || active(f.RateCode) || active(f.Currency)
}

func (f Filters) planMatches(meta PlanMeta) bool {
	if active(f.MealPlan) && !strings.EqualFold(strings.TrimSpace(f.MealPlan), meta.Label) {
		return false
	}
	if active(f.Currency) && !strings.EqualFold(strings.TrimSpace(f.Currency), meta.CurrencyCode) {
		return false
	}
	if active(f.RateCode) {
		want := strings.TrimSpace(f.RateCode)
		byID := meta.RateCodeID != nil && want == strconv.FormatUint(uint64(*meta.RateCodeID), 10)
		if !byID && !strings.EqualFold(want, meta.RateCode) {
			return false
		}
	}
	return true
}

// Apply lọc danh sách phòng. Các bộ lọc kết hợp theo AND; bộ lọc gói giá
// thu hẹp plansByPlan còn những gói thỏa tất cả điều kiện, phòng không còn gói nào bị loại.
func (f Filters) Apply(rooms []MergedRoom) []MergedRoom {
	out := make([]MergedRoom, 0, len(rooms))
	wantRoom := ""
	if active(f.RoomType) {
		wantRoom = NormalizeRoomType(f.RoomType)
	}

	for _, room := range rooms {
		if wantRoom != "" && NormalizeRoomType(room.RoomType) != wantRoom {
			continue
		}
		if !f.hasPlanFilter() {
			out = append(out, room)
			continue
		}

		narrowed := room
		narrowed.PlanOrder = []PlanKey{}
		narrowed.PlansByPlan = make(map[PlanKey]map[DateKey][]RateEntry)
		narrowed.PlanMetaMap = make(map[PlanKey]PlanMeta)
		for _, key := range room.PlanOrder {
			meta := room.PlanMetaMap[key]
			if !f.planMatches(meta) {
				continue
			}
			narrowed.PlanOrder = append(narrowed.PlanOrder, key)
			narrowed.PlansByPlan[key] = room.PlansByPlan[key]
			narrowed.PlanMetaMap[key] = meta
		}
		if len(narrowed.PlanOrder) == 0 {
			continue
		}
		out = append(out, narrowed)
	}

	return out
}
