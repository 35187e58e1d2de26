package rategrid

import (
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// minSuggestSimilarity là ngưỡng tương đồng tối thiểu để gợi ý
const minSuggestSimilarity = 0.5

// SuggestRoomType gợi ý loại phòng gần nhất với query khi bộ lọc không khớp phòng nào.
// Trả về chuỗi rỗng nếu không có gợi ý đủ gần.
func SuggestRoomType(query string, rooms []MergedRoom) string {
	q := NormalizeRoomType(query)
	if q == "" || len(rooms) == 0 {
		return ""
	}

	byNorm := make(map[string]string, len(rooms))
	keys := make([]string, 0, len(rooms))
	for _, r := range rooms {
		n := NormalizeRoomType(r.RoomType)
		if n == "" {
			continue
		}
		if _, ok := byNorm[n]; !ok {
			byNorm[n] = r.RoomType
			keys = append(keys, n)
		}
	}
	if len(keys) == 0 {
		return ""
	}

	best := closestmatch.New(keys, []int{2, 3}).Closest(q)
	if best == "" {
		// closestmatch không có n-gram chung với query ngắn, so trực tiếp
		bestScore := 0.0
		for _, k := range keys {
			if s := similarity(q, k); s > bestScore {
				best, bestScore = k, s
			}
		}
	}
	if best == "" || similarity(q, best) < minSuggestSimilarity {
		return ""
	}
	return byNorm[best]
}

// similarity tính độ tương đồng giữa hai chuỗi theo khoảng cách levenshtein
func similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}
