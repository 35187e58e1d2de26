package commands

import (
	"errors"
	"fmt"
	"time"

	"hotelmate/constants"
	"hotelmate/models"
	"hotelmate/services/rategrid"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RateCommand định nghĩa interface cho các command ghi giá
type RateCommand interface {
	Execute() error
}

// ApplyOverrideCommand ghi các payload sửa giá trong một transaction
type ApplyOverrideCommand struct {
	payloads []*rategrid.OverridePayload
	db       *gorm.DB
}

func NewApplyOverrideCommand(payloads []*rategrid.OverridePayload, db *gorm.DB) *ApplyOverrideCommand {
	return &ApplyOverrideCommand{
		payloads: payloads,
		db:       db,
	}
}

func (c *ApplyOverrideCommand) Execute() error {
	if len(c.payloads) == 0 {
		return fmt.Errorf("override payload is empty")
	}
	for _, p := range c.payloads {
		if p == nil {
			return fmt.Errorf("override payload is nil")
		}
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		for _, p := range c.payloads {
			dates, err := expandDates(string(p.DateFrom), string(p.DateTo))
			if err != nil {
				return err
			}
			for _, date := range dates {
				if err := savePayload(tx, p, date); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func savePayload(tx *gorm.DB, p *rategrid.OverridePayload, date string) error {
	var row models.HotelRate
	err := tx.Where("rate_plan_id = ? AND date = ?", p.RatePlanID, date).First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.HotelRate{RatePlanID: p.RatePlanID, Date: date}
	}

	applyPayload(&row, p)

	if err := tx.Save(&row).Error; err != nil {
		return fmt.Errorf("save rate %s: %w", date, err)
	}
	return nil
}

// applyPayload chỉ ghi các slot được đặt, slot Unchanged giữ nguyên giá trong DB
func applyPayload(row *models.HotelRate, p *rategrid.OverridePayload) {
	for i, slot := range p.Pax {
		if v, ok := slot.Value(); ok {
			_ = row.SetPax(i+1, &v)
		}
	}
	if v, ok := p.DefaultRate.Value(); ok {
		row.DefaultRate = v
	}
	if p.Carry != nil {
		row.IncreaseBy = p.Carry.IncreaseBy
		row.DecreaseBy = p.Carry.DecreaseBy
		row.Child = p.Carry.Child
		row.ChildRate = p.Carry.ChildRate
	}
}

// UpsertAvailabilityCommand ghi số phòng trống theo (khách sạn, loại phòng, ngày)
type UpsertAvailabilityCommand struct {
	rows []models.RoomAvailability
	db   *gorm.DB
}

func NewUpsertAvailabilityCommand(rows []models.RoomAvailability, db *gorm.DB) *UpsertAvailabilityCommand {
	return &UpsertAvailabilityCommand{
		rows: rows,
		db:   db,
	}
}

func (c *UpsertAvailabilityCommand) Execute() error {
	if len(c.rows) == 0 {
		return nil
	}
	return c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hotel_code"}, {Name: "room_type_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"room_type", "count", "updated_at"}),
	}).Create(&c.rows).Error
}

// PurgeBeforeCommand xóa giá và tồn phòng của các ngày trước cutoff
type PurgeBeforeCommand struct {
	cutoff string
	db     *gorm.DB
}

func NewPurgeBeforeCommand(cutoff string, db *gorm.DB) *PurgeBeforeCommand {
	return &PurgeBeforeCommand{
		cutoff: cutoff,
		db:     db,
	}
}

func (c *PurgeBeforeCommand) Execute() error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date < ?", c.cutoff).Delete(&models.HotelRate{}).Error; err != nil {
			return err
		}
		return tx.Where("date < ?", c.cutoff).Delete(&models.RoomAvailability{}).Error
	})
}

func expandDates(from, to string) ([]string, error) {
	f, err := time.Parse(constants.DateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("invalid dateFrom %q: %w", from, err)
	}
	t, err := time.Parse(constants.DateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("invalid dateTo %q: %w", to, err)
	}
	if t.Before(f) {
		return nil, fmt.Errorf("dateTo %s is before dateFrom %s", to, from)
	}

	var dates []string
	for d := f; !d.After(t); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(constants.DateLayout))
	}
	return dates, nil
}
