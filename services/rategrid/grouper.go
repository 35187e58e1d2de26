package rategrid

import (
	"fmt"
	"strconv"

	"hotelmate/constants"
	"hotelmate/models"
)

type planInfo struct {
	key  PlanKey
	meta PlanMeta
}

// GroupedRates gom giá theo roomTypeID → ngày
type GroupedRates struct {
	entries map[RoomTypeID]map[DateKey][]RateEntry
	plans   map[RoomTypeID][]planInfo
}

// PlanKeyFor tạo khóa "<mealPlan>__rc_<rateCodeID|NA>"
func PlanKeyFor(mealPlan string, rateCodeID *uint) PlanKey {
	rc := constants.RateCodeNA
	if rateCodeID != nil {
		rc = strconv.FormatUint(uint64(*rateCodeID), 10)
	}
	return PlanKey(fmt.Sprintf("%s__rc_%s", mealPlan, rc))
}

// Entries trả về giá theo ngày của một loại phòng (có thể rỗng)
func (g *GroupedRates) Entries(room RoomTypeID) map[DateKey][]RateEntry {
	return g.entries[room]
}

// RoomCount là số loại phòng có gói giá
func (g *GroupedRates) RoomCount() int {
	return len(g.plans)
}

// GroupRatePlans gom các gói giá theo loại phòng và ngày.
// Gói không có roomTypeID hoặc không có danh sách giá sẽ bị bỏ qua.
func GroupRatePlans(plans []models.RatePlan) *GroupedRates {
	g := &GroupedRates{
		entries: make(map[RoomTypeID]map[DateKey][]RateEntry),
		plans:   make(map[RoomTypeID][]planInfo),
	}

	for i := range plans {
		plan := &plans[i]
		if plan.RoomTypeID == 0 || plan.HotelRates == nil {
			continue
		}

		room := RoomTypeID(plan.RoomTypeID)
		key := PlanKeyFor(plan.MealPlan, plan.RateCodeID)
		linked := plan.RateMode == constants.RateModeAuto

		g.plans[room] = append(g.plans[room], planInfo{key: key, meta: metaOf(plan)})

		byDate, ok := g.entries[room]
		if !ok {
			byDate = make(map[DateKey][]RateEntry)
			g.entries[room] = byDate
		}

		for j := range plan.HotelRates {
			row := &plan.HotelRates[j]
			date := DateKey(row.Date)

			if row.HasPax() {
				for n := 1; n <= constants.MaxOccupancy; n++ {
					rate := row.Pax(n)
					if rate == nil {
						continue
					}
					byDate[date] = addEntry(byDate[date], RateEntry{
						PlanKey:       key,
						Rate:          *rate,
						Occupancy:     n,
						IsLinked:      linked,
						IsDefaultRate: n == plan.PrimaryOccupancy,
						Date:          date,
						CurrencyCode:  plan.CurrencyCode,
					})
				}
				continue
			}

			byDate[date] = addEntry(byDate[date], RateEntry{
				PlanKey:       key,
				Rate:          row.DefaultRate,
				Occupancy:     plan.PrimaryOccupancy,
				IsLinked:      linked,
				IsDefaultRate: true,
				Date:          date,
				CurrencyCode:  plan.CurrencyCode,
			})
		}
	}

	return g
}

// addEntry giữ occupancy duy nhất trong (planKey, ngày), entry đến trước được giữ
func addEntry(list []RateEntry, e RateEntry) []RateEntry {
	for _, existing := range list {
		if existing.PlanKey == e.PlanKey && existing.Occupancy == e.Occupancy {
			return list
		}
	}
	return append(list, e)
}

func metaOf(plan *models.RatePlan) PlanMeta {
	return PlanMeta{
		Label:            plan.MealPlan,
		RateCodeID:       plan.RateCodeID,
		RateCode:         plan.RateCode,
		CurrencyCode:     plan.CurrencyCode,
		RatePlanName:     plan.RatePlanName,
		RatePlanID:       plan.ID,
		SellMode:         plan.SellMode,
		RateMode:         plan.RateMode,
		PrimaryOccupancy: plan.PrimaryOccupancy,
	}
}
