package rategrid

import (
	"testing"

	"hotelmate/models"
)

func filterFixture() []MergedRoom {
	plans := []models.RatePlan{
		{ID: 1, RoomTypeID: 1, MealPlan: "BB", RateCodeID: u(7), RateCode: "CORP", CurrencyCode: "USD", PrimaryOccupancy: 2,
			HotelRates: []models.HotelRate{{Date: "2025-01-01", DefaultRate: 100}}},
		{ID: 2, RoomTypeID: 1, MealPlan: "RO", CurrencyCode: "USD", PrimaryOccupancy: 2,
			HotelRates: []models.HotelRate{{Date: "2025-01-01", DefaultRate: 90}}},
		{ID: 3, RoomTypeID: 2, MealPlan: "BB", CurrencyCode: "USD", PrimaryOccupancy: 2,
			HotelRates: []models.HotelRate{{Date: "2025-01-01", DefaultRate: 60}}},
		{ID: 4, RoomTypeID: 3, MealPlan: "BB", CurrencyCode: "EUR", PrimaryOccupancy: 2,
			HotelRates: []models.HotelRate{{Date: "2025-01-01", DefaultRate: 80}}},
	}
	availability := []AvailabilityRecord{
		{RoomTypeID: 1, RoomType: "Deluxe"},
		{RoomTypeID: 2, RoomType: "Standard"},
		{RoomTypeID: 3, RoomType: " DE LUXE "},
		{RoomTypeID: 4, RoomType: "Deluxe"},
	}
	return MergeRooms(availability, GroupRatePlans(plans))
}

func TestFiltersComposedWithAnd(t *testing.T) {
	rooms := Filters{RoomType: "deluxe", MealPlan: "BB", Currency: "USD"}.Apply(filterFixture())

	if len(rooms) != 1 || rooms[0].RoomTypeID != 1 {
		t.Fatalf("expected only room 1, got %+v", rooms)
	}
	if len(rooms[0].PlanOrder) != 1 || rooms[0].PlanOrder[0] != "BB__rc_7" {
		t.Fatalf("plans should be narrowed to BB, got %v", rooms[0].PlanOrder)
	}
	if _, ok := rooms[0].PlansByPlan["RO__rc_NA"]; ok {
		t.Fatal("non-matching plan left in plansByPlan")
	}
}

func TestFiltersAllSentinelDisables(t *testing.T) {
	all := filterFixture()
	rooms := Filters{RoomType: "all", MealPlan: "ALL", RateCode: "", Currency: "All"}.Apply(all)
	if len(rooms) != len(all) {
		t.Fatalf("expected %d rooms, got %d", len(all), len(rooms))
	}
}

func TestFiltersRoomTypeIgnoresCaseAndSpaces(t *testing.T) {
	rooms := Filters{RoomType: "DeLuxe"}.Apply(filterFixture())
	ids := map[RoomTypeID]bool{}
	for _, r := range rooms {
		ids[r.RoomTypeID] = true
	}
	if len(rooms) != 3 || !ids[1] || !ids[3] || !ids[4] {
		t.Fatalf("expected rooms 1, 3 and 4, got %+v", ids)
	}
}

func TestFiltersRateCodeByIDOrName(t *testing.T) {
	for _, code := range []string{"7", "corp"} {
		rooms := Filters{RateCode: code}.Apply(filterFixture())
		if len(rooms) != 1 || rooms[0].RoomTypeID != 1 || len(rooms[0].PlanOrder) != 1 {
			t.Fatalf("rate code %q: unexpected rooms %+v", code, rooms)
		}
	}
}

func TestFiltersPlanFilterDropsRoomsWithoutPlans(t *testing.T) {
	rooms := Filters{Currency: "eur"}.Apply(filterFixture())
	if len(rooms) != 1 || rooms[0].RoomTypeID != 3 {
		t.Fatalf("expected only room 3, got %+v", rooms)
	}
}

func TestNormalizeRoomType(t *testing.T) {
	tests := map[string]string{
		"Deluxe Room":   "deluxeroom",
		"  SUITE\t":     "suite",
		"Phòng Đôi":     "phongdoi",
		"Junior  Suíte": "juniorsuite",
	}
	for in, want := range tests {
		if got := NormalizeRoomType(in); got != want {
			t.Errorf("NormalizeRoomType(%q) = %q, want %q", in, got, want)
		}
	}
}
