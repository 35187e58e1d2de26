package rategrid

import "sort"

// MergeRooms ghép tồn phòng với giá đã gom, giữ thứ tự của danh sách tồn phòng.
// Metadata của gói giá lấy theo bản ghi gặp đầu tiên; riêng ratePlanName
// được bổ sung từ bản ghi sau nếu bản đầu không có.
func MergeRooms(availability []AvailabilityRecord, grouped *GroupedRates) []MergedRoom {
	rooms := make([]MergedRoom, 0, len(availability))

	for _, rec := range availability {
		room := MergedRoom{
			RoomTypeID:   rec.RoomTypeID,
			RoomType:     rec.RoomType,
			Availability: rec.Availability,
			PlanOrder:    []PlanKey{},
			PlansByPlan:  make(map[PlanKey]map[DateKey][]RateEntry),
			PlanMetaMap:  make(map[PlanKey]PlanMeta),
		}
		if room.Availability == nil {
			room.Availability = []DateCount{}
		}

		if grouped != nil {
			for _, p := range grouped.plans[rec.RoomTypeID] {
				meta, seen := room.PlanMetaMap[p.key]
				if !seen {
					room.PlanMetaMap[p.key] = p.meta
					room.PlanOrder = append(room.PlanOrder, p.key)
					room.PlansByPlan[p.key] = make(map[DateKey][]RateEntry)
					continue
				}
				if meta.RatePlanName == nil && p.meta.RatePlanName != nil {
					meta.RatePlanName = p.meta.RatePlanName
					room.PlanMetaMap[p.key] = meta
				}
			}

			for date, entries := range grouped.Entries(rec.RoomTypeID) {
				for _, e := range entries {
					byDate, ok := room.PlansByPlan[e.PlanKey]
					if !ok {
						byDate = make(map[DateKey][]RateEntry)
						room.PlansByPlan[e.PlanKey] = byDate
					}
					byDate[date] = append(byDate[date], e)
				}
			}

			for _, byDate := range room.PlansByPlan {
				for _, entries := range byDate {
					sort.Slice(entries, func(i, j int) bool {
						return entries[i].Occupancy < entries[j].Occupancy
					})
				}
			}
		}

		rooms = append(rooms, room)
	}

	return rooms
}
