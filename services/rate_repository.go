package services

import (
	"context"
	"errors"

	apperrors "hotelmate/errors"
	"hotelmate/models"
	"hotelmate/services/rategrid"

	"gorm.io/gorm"
)

// RateRepository đọc/ghi gói giá và tồn phòng
type RateRepository struct {
	db *gorm.DB
}

func NewRateRepository(db *gorm.DB) *RateRepository {
	return &RateRepository{db: db}
}

func (r *RateRepository) DB() *gorm.DB {
	return r.db
}

// ListRatePlans lấy gói giá của khách sạn kèm các dòng giá trong [from, to]
func (r *RateRepository) ListRatePlans(ctx context.Context, hotelCode, from, to string) ([]models.RatePlan, error) {
	var plans []models.RatePlan
	err := r.db.WithContext(ctx).
		Preload("HotelRates", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("date BETWEEN ? AND ?", from, to).Order("date ASC")
		}).
		Where("hotel_code = ?", hotelCode).
		Order("id ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}

	// Gói giá trong DB luôn có danh sách giá, kể cả khi rỗng trong khoảng ngày
	for i := range plans {
		if plans[i].HotelRates == nil {
			plans[i].HotelRates = []models.HotelRate{}
		}
	}
	return plans, nil
}

func (r *RateRepository) GetRatePlan(ctx context.Context, hotelCode string, id uint) (*models.RatePlan, error) {
	var plan models.RatePlan
	err := r.db.WithContext(ctx).
		Preload("HotelRates", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("date ASC")
		}).
		Where("hotel_code = ?", hotelCode).
		First(&plan, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodePlanNotFound, "Không tìm thấy gói giá", apperrors.ErrPlanNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *RateRepository) CreateRatePlan(ctx context.Context, plan *models.RatePlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// ListAvailability gom tồn phòng theo loại phòng, giữ thứ tự roomTypeID tăng dần
func (r *RateRepository) ListAvailability(ctx context.Context, hotelCode, from, to string) ([]rategrid.AvailabilityRecord, error) {
	var rows []models.RoomAvailability
	err := r.db.WithContext(ctx).
		Where("hotel_code = ? AND date BETWEEN ? AND ?", hotelCode, from, to).
		Order("room_type_id ASC, date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	var records []rategrid.AvailabilityRecord
	index := make(map[uint]int)
	for _, row := range rows {
		i, ok := index[row.RoomTypeID]
		if !ok {
			i = len(records)
			index[row.RoomTypeID] = i
			records = append(records, rategrid.AvailabilityRecord{
				RoomTypeID: rategrid.RoomTypeID(row.RoomTypeID),
				RoomType:   row.RoomType,
			})
		}
		if records[i].RoomType == "" {
			records[i].RoomType = row.RoomType
		}
		records[i].Availability = append(records[i].Availability, rategrid.DateCount{
			Date:  rategrid.DateKey(row.Date),
			Count: row.Count,
		})
	}
	return records, nil
}
