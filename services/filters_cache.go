package services

import (
	"context"
	"strings"
	"time"

	"hotelmate/services/rategrid"
)

const lastFiltersTTL = 30 * time.Minute

func lastFiltersKey(hotelCode, sessionID string) string {
	return "last_filters:" + hotelCode + ":" + sessionID
}

func SaveLastFilters(ctx context.Context, cache Cache, hotelCode, sessionID string, filters rategrid.Filters) error {
	return cache.Set(ctx, lastFiltersKey(hotelCode, sessionID), filters, lastFiltersTTL)
}

// GetLastFilters trả về bộ lọc lần trước của phiên, found = false nếu chưa có
func GetLastFilters(ctx context.Context, cache Cache, hotelCode, sessionID string) (rategrid.Filters, bool, error) {
	var filters rategrid.Filters
	found, err := cache.Get(ctx, lastFiltersKey(hotelCode, sessionID), &filters)
	return filters, found, err
}

func ClearLastFilters(ctx context.Context, cache Cache, hotelCode, sessionID string) error {
	return cache.Delete(ctx, lastFiltersKey(hotelCode, sessionID))
}

// Merge bộ lọc cũ với bộ lọc mới: giá trị mới được ưu tiên, "all" xóa bộ lọc cũ
func MergeFilters(old, new rategrid.Filters) rategrid.Filters {
	return rategrid.Filters{
		RoomType: orString(new.RoomType, old.RoomType),
		MealPlan: orString(new.MealPlan, old.MealPlan),
		RateCode: orString(new.RateCode, old.RateCode),
		Currency: orString(new.Currency, old.Currency),
	}
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

// IsEmptyFilters cho biết không có bộ lọc nào được gửi lên
func IsEmptyFilters(f rategrid.Filters) bool {
	return strings.TrimSpace(f.RoomType+f.MealPlan+f.RateCode+f.Currency) == ""
}
