package builders

import (
	"time"

	"hotelmate/constants"
	apperrors "hotelmate/errors"
	"hotelmate/models"
	"hotelmate/services/rategrid"
)

// OverridePayloadBuilder dựng payload cập nhật giá từ một ô được sửa trên lưới
type OverridePayloadBuilder struct {
	room      *rategrid.MergedRoom
	planKey   rategrid.PlanKey
	plan      *models.RatePlan
	dateFrom  string
	dateTo    string
	occupancy int
	result    *float64
}

// NewOverridePayloadBuilder tạo instance mới của OverridePayloadBuilder
func NewOverridePayloadBuilder() *OverridePayloadBuilder {
	return &OverridePayloadBuilder{}
}

// WithRoom gắn phòng đã ghép của lưới hiện tại
func (b *OverridePayloadBuilder) WithRoom(room *rategrid.MergedRoom) *OverridePayloadBuilder {
	b.room = room
	return b
}

// WithPlan gắn gói giá; plan có thể nil khi không cần mang theo trường tự động
func (b *OverridePayloadBuilder) WithPlan(key rategrid.PlanKey, plan *models.RatePlan) *OverridePayloadBuilder {
	b.planKey = key
	b.plan = plan
	return b
}

func (b *OverridePayloadBuilder) WithDateRange(from, to string) *OverridePayloadBuilder {
	b.dateFrom = from
	b.dateTo = to
	return b
}

func (b *OverridePayloadBuilder) WithOccupancy(n int) *OverridePayloadBuilder {
	b.occupancy = n
	return b
}

// WithResult là giá mới đã tính cho ô được sửa
func (b *OverridePayloadBuilder) WithResult(v float64) *OverridePayloadBuilder {
	b.result = &v
	return b
}

// Build tạo một payload cho mỗi ngày trong khoảng, không có payload nào được trả về khi thiếu thông tin.
// Các mức số khách không sửa giữ giá hiện có của chính ngày đó.
func (b *OverridePayloadBuilder) Build() ([]*rategrid.OverridePayload, error) {
	if b.room == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy loại phòng", apperrors.ErrRoomNotFound)
	}

	meta, ok := b.room.PlanMetaMap[b.planKey]
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrCodePlanNotFound, "Không tìm thấy gói giá", apperrors.ErrPlanNotFound)
	}

	dates, err := expandRange(b.dateFrom, b.dateTo)
	if err != nil {
		return nil, err
	}

	if b.occupancy < 1 || b.occupancy > constants.MaxOccupancy {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidOccupancy, "Số khách không hợp lệ", nil)
	}

	if b.result == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Chưa có giá mới", apperrors.ErrMissingRequired)
	}

	carry := meta.SellMode == constants.SellModePerPerson && meta.RateMode == constants.RateModeAuto && b.plan != nil

	payloads := make([]*rategrid.OverridePayload, 0, len(dates))
	for _, date := range dates {
		payload := &rategrid.OverridePayload{
			RatePlanID:   meta.RatePlanID,
			RoomTypeID:   b.room.RoomTypeID,
			PlanKey:      b.planKey,
			CurrencyCode: meta.CurrencyCode,
			DateFrom:     date,
			DateTo:       date,
			Occupancy:    b.occupancy,
		}

		for _, e := range b.room.PlansByPlan[b.planKey][date] {
			if e.Occupancy >= 1 && e.Occupancy <= constants.MaxOccupancy {
				payload.Pax[e.Occupancy-1] = rategrid.SetTo(e.Rate)
			}
		}
		payload.Pax[b.occupancy-1] = rategrid.SetTo(*b.result)

		if b.occupancy == meta.PrimaryOccupancy {
			payload.DefaultRate = rategrid.SetTo(*b.result)
		}

		if carry {
			if row := b.plan.RowFor(string(date)); row != nil {
				payload.Carry = &rategrid.CarryForward{
					IncreaseBy: row.IncreaseBy,
					DecreaseBy: row.DecreaseBy,
					Child:      row.Child,
					ChildRate:  row.ChildRate,
				}
			}
		}

		payloads = append(payloads, payload)
	}

	return payloads, nil
}

// expandRange kiểm tra khoảng ngày và trả về từng ngày trong [from, to]
func expandRange(from, to string) ([]rategrid.DateKey, error) {
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	f, _ := time.Parse(constants.DateLayout, from)
	t, _ := time.Parse(constants.DateLayout, to)

	var dates []rategrid.DateKey
	for d := f; !d.After(t); d = d.AddDate(0, 0, 1) {
		dates = append(dates, rategrid.DateKey(d.Format(constants.DateLayout)))
	}
	return dates, nil
}

func checkRange(from, to string) error {
	if from == "" || to == "" {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange, "Chưa chọn khoảng ngày", nil)
	}
	f, err := time.Parse(constants.DateLayout, from)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange, "Ngày bắt đầu không hợp lệ", err)
	}
	t, err := time.Parse(constants.DateLayout, to)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange, "Ngày kết thúc không hợp lệ", err)
	}
	if t.Before(f) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}
	return nil
}
