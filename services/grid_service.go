package services

import (
	"context"
	"fmt"
	"time"

	"hotelmate/builders"
	"hotelmate/commands"
	"hotelmate/constants"
	"hotelmate/dto"
	apperrors "hotelmate/errors"
	"hotelmate/models"
	"hotelmate/services/logger"
	"hotelmate/services/notification"
	"hotelmate/services/rategrid"
	"hotelmate/validator"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	DefaultGridTTL  = 10 * time.Minute
	gridCachePrefix = "rate_grid:"
	gridGenPrefix   = "rate_grid_gen:"
	// globalGen được đổi khi dữ liệu của mọi khách sạn thay đổi (purge)
	globalGen = "*"
)

type RateGridServiceOptions struct {
	DB       *gorm.DB
	Cache    Cache
	Notifier notification.Service
	Logger   logger.Logger
	TTL      time.Duration
}

// RateGridService dựng lưới giá, lưu giá sửa trên lưới và quản lý tồn phòng
type RateGridService struct {
	repo     *RateRepository
	cache    Cache
	notifier notification.Service
	logger   logger.Logger
	ttl      time.Duration
}

func NewRateGridService(opts RateGridServiceOptions) *RateGridService {
	s := &RateGridService{
		repo:     NewRateRepository(opts.DB),
		cache:    opts.Cache,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		ttl:      opts.TTL,
	}
	if s.cache == nil {
		s.cache = NewMemoryCache()
	}
	if s.logger == nil {
		s.logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if s.ttl <= 0 {
		s.ttl = DefaultGridTTL
	}
	return s
}

func gridCacheKey(hotelCode, gen, from, to string) string {
	return fmt.Sprintf("%s%s:%s:%s:%s", gridCachePrefix, hotelCode, gen, from, to)
}

// generation trả về thế hệ cache hiện tại của khách sạn. Mỗi lần ghi đổi thế hệ,
// lưới dựng từ dữ liệu cũ chỉ được lưu dưới key của thế hệ cũ và không bao giờ được đọc lại.
func (s *RateGridService) generation(ctx context.Context, hotelCode string) (string, error) {
	var hotelGen, allGen string
	if _, err := s.cache.Get(ctx, gridGenPrefix+hotelCode, &hotelGen); err != nil {
		return "", err
	}
	if _, err := s.cache.Get(ctx, gridGenPrefix+globalGen, &allGen); err != nil {
		return "", err
	}
	return hotelGen + "." + allGen, nil
}

func (s *RateGridService) bumpGeneration(ctx context.Context, scope string) error {
	return s.cache.Set(ctx, gridGenPrefix+scope, uuid.NewString(), 0)
}

// build tải tồn phòng và gói giá song song rồi ghép lại
func (s *RateGridService) build(ctx context.Context, hotelCode, from, to string) ([]rategrid.MergedRoom, error) {
	var (
		availability []rategrid.AvailabilityRecord
		plans        []models.RatePlan
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		availability, err = s.repo.ListAvailability(gctx, hotelCode, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		plans, err = s.repo.ListRatePlans(gctx, hotelCode, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể tải dữ liệu lưới giá", err)
	}

	return rategrid.MergeRooms(availability, rategrid.GroupRatePlans(plans)), nil
}

// Load trả về lưới đã lọc; lưới chưa lọc được cache theo (khách sạn, thế hệ, khoảng ngày)
func (s *RateGridService) Load(ctx context.Context, q dto.GridQuery) (*dto.GridResult, error) {
	if err := validator.ValidateGridQuery(&q); err != nil {
		return nil, err
	}

	var (
		rooms []rategrid.MergedRoom
		found bool
		key   string
	)
	gen, err := s.generation(ctx, q.HotelCode)
	if err != nil {
		// không biết thế hệ hiện tại thì không dùng cache
		s.logger.Warn("Lỗi khi đọc thế hệ cache của %s: %v", q.HotelCode, err)
	} else {
		key = gridCacheKey(q.HotelCode, gen, q.From, q.To)
		found, err = s.cache.Get(ctx, key, &rooms)
		if err != nil {
			s.logger.Warn("Lỗi khi đọc cache lưới giá %s: %v", key, err)
			found = false
		}
	}

	if !found {
		rooms, err = s.build(ctx, q.HotelCode, q.From, q.To)
		if err != nil {
			return nil, err
		}
		if key != "" {
			if err := s.cache.Set(ctx, key, rooms, s.ttl); err != nil {
				s.logger.Warn("Lỗi khi lưu cache lưới giá %s: %v", key, err)
			}
		}
	}

	filtered := q.Filters.Apply(rooms)
	result := &dto.GridResult{
		Rooms: filtered,
		Meta: dto.GridMeta{
			From:  q.From,
			To:    q.To,
			Total: len(filtered),
		},
	}
	if len(filtered) == 0 && q.Filters.HasRoomType() {
		result.Meta.Suggestion = rategrid.SuggestRoomType(q.Filters.RoomType, rooms)
	}
	return result, nil
}

// ApplyOverride tính giá mới cho ô được sửa, ghi xuống DB và xóa cache của khách sạn.
// Lưới được dựng lại từ DB, không dùng cache. Trả về một payload cho mỗi ngày.
func (s *RateGridService) ApplyOverride(ctx context.Context, req dto.OverrideRequest) ([]*rategrid.OverridePayload, error) {
	if err := validator.ValidateOverride(&req); err != nil {
		return nil, err
	}

	rooms, err := s.build(ctx, req.HotelCode, req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}

	room := rategrid.FindRoom(rooms, rategrid.RoomTypeID(req.RoomTypeID))
	if room == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy loại phòng", apperrors.ErrRoomNotFound)
	}

	key := rategrid.PlanKey(req.PlanKey)
	meta, ok := room.PlanMetaMap[key]
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrCodePlanNotFound, "Không tìm thấy gói giá", apperrors.ErrPlanNotFound)
	}

	var entry *rategrid.RateEntry
	if e, ok := room.Entry(key, rategrid.DateKey(req.DateFrom), req.Occupancy); ok {
		entry = &e
	}
	if !rategrid.CellEditable(meta, entry, req.Occupancy) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotEditable, "Gói giá tự động chỉ sửa được ở ô giá mặc định", apperrors.ErrNotEditable)
	}

	base := 0.0
	if entry != nil {
		base = entry.Rate
	}
	result, err := rategrid.ApplyOp(base, req.Mode, *req.Value, req.Percent)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, "Thao tác không hợp lệ", err)
	}

	plan, err := s.repo.GetRatePlan(ctx, req.HotelCode, meta.RatePlanID)
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể tải gói giá", err)
	}

	payloads, err := builders.NewOverridePayloadBuilder().
		WithRoom(room).
		WithPlan(key, plan).
		WithDateRange(req.DateFrom, req.DateTo).
		WithOccupancy(req.Occupancy).
		WithResult(result).
		Build()
	if err != nil {
		return nil, err
	}

	if err := commands.NewApplyOverrideCommand(payloads, s.repo.DB().WithContext(ctx)).Execute(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể lưu giá", err)
	}
	s.logger.Info("Đã cập nhật giá %s phòng %d, %s → %s, pax%d = %.2f",
		req.PlanKey, req.RoomTypeID, req.DateFrom, req.DateTo, req.Occupancy, result)

	s.invalidate(ctx, req.HotelCode)
	s.notify(notification.NewGridUpdatedMessageBuilder(req.HotelCode).
		WithCell(req.RoomTypeID, req.PlanKey).
		WithDateRange(req.DateFrom, req.DateTo).
		Build())

	return payloads, nil
}

func (s *RateGridService) ListRatePlans(ctx context.Context, hotelCode, from, to string) ([]models.RatePlan, error) {
	if _, err := validator.ValidateDateRange(from, to); err != nil {
		return nil, err
	}
	plans, err := s.repo.ListRatePlans(ctx, hotelCode, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể tải gói giá", err)
	}
	return plans, nil
}

func (s *RateGridService) GetRatePlan(ctx context.Context, hotelCode string, id uint) (*models.RatePlan, error) {
	plan, err := s.repo.GetRatePlan(ctx, hotelCode, id)
	if err != nil && !apperrors.IsAppError(err) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể tải gói giá", err)
	}
	return plan, err
}

func (s *RateGridService) CreateRatePlan(ctx context.Context, hotelCode string, plan *models.RatePlan) error {
	plan.ID = 0
	plan.HotelCode = hotelCode
	for i := range plan.HotelRates {
		plan.HotelRates[i].ID = 0
		plan.HotelRates[i].RatePlanID = 0
	}
	if err := validator.ValidateRatePlan(plan); err != nil {
		return err
	}
	if err := s.repo.CreateRatePlan(ctx, plan); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể tạo gói giá", err)
	}
	s.invalidate(ctx, hotelCode)
	return nil
}

func (s *RateGridService) ListAvailability(ctx context.Context, hotelCode, from, to string) ([]rategrid.AvailabilityRecord, error) {
	if _, err := validator.ValidateDateRange(from, to); err != nil {
		return nil, err
	}
	records, err := s.repo.ListAvailability(ctx, hotelCode, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể tải tồn phòng", err)
	}
	return records, nil
}

func (s *RateGridService) UpsertAvailability(ctx context.Context, hotelCode string, req dto.AvailabilityRequest) error {
	if err := validator.ValidateAvailability(&req); err != nil {
		return err
	}

	rows := make([]models.RoomAvailability, 0, len(req.Items))
	for _, it := range req.Items {
		rows = append(rows, models.RoomAvailability{
			HotelCode:  hotelCode,
			RoomTypeID: it.RoomTypeID,
			RoomType:   it.RoomType,
			Date:       it.Date,
			Count:      it.Count,
		})
	}
	if err := commands.NewUpsertAvailabilityCommand(rows, s.repo.DB().WithContext(ctx)).Execute(); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể cập nhật tồn phòng", err)
	}

	s.invalidate(ctx, hotelCode)
	s.notify(notification.NewGridUpdatedMessageBuilder(hotelCode).Build())
	return nil
}

// PurgeBefore xóa giá và tồn phòng của các ngày trước cutoff
func (s *RateGridService) PurgeBefore(ctx context.Context, cutoff time.Time) error {
	day := cutoff.Format(constants.DateLayout)
	if err := commands.NewPurgeBeforeCommand(day, s.repo.DB().WithContext(ctx)).Execute(); err != nil {
		return err
	}
	if err := s.bumpGeneration(ctx, globalGen); err != nil {
		s.logger.Warn("Lỗi khi đổi thế hệ cache lưới giá: %v", err)
	}
	if err := s.cache.DeletePrefix(ctx, gridCachePrefix); err != nil {
		s.logger.Warn("Lỗi khi xóa cache lưới giá: %v", err)
	}
	return nil
}

// Cache sử dụng cho bộ lọc theo phiên
func (s *RateGridService) Cache() Cache {
	return s.cache
}

// invalidate chạy sau khi ghi xong: đổi thế hệ trước rồi mới dọn các lưới cũ
func (s *RateGridService) invalidate(ctx context.Context, hotelCode string) {
	if err := s.bumpGeneration(ctx, hotelCode); err != nil {
		s.logger.Warn("Lỗi khi đổi thế hệ cache của %s: %v", hotelCode, err)
	}
	if err := s.cache.DeletePrefix(ctx, gridCachePrefix+hotelCode+":"); err != nil {
		s.logger.Warn("Lỗi khi xóa cache lưới giá của %s: %v", hotelCode, err)
	}
}

func (s *RateGridService) notify(message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Error("Lỗi khi gửi thông báo lưới giá: %v", err)
	}
}
