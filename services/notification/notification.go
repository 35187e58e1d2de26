package notification

import (
	"fmt"

	"hotelmate/constants"
	"hotelmate/dto"

	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// GridUpdatedMessageBuilder tạo thông báo lưới giá đã thay đổi để client tải lại
type GridUpdatedMessageBuilder struct {
	event dto.GridUpdatedEvent
}

func NewGridUpdatedMessageBuilder(hotelCode string) *GridUpdatedMessageBuilder {
	return &GridUpdatedMessageBuilder{
		event: dto.GridUpdatedEvent{
			Event:     constants.EventRateGridUpdated,
			HotelCode: hotelCode,
		},
	}
}

func (b *GridUpdatedMessageBuilder) WithCell(roomTypeID uint, planKey string) *GridUpdatedMessageBuilder {
	b.event.RoomTypeID = roomTypeID
	b.event.PlanKey = planKey
	return b
}

func (b *GridUpdatedMessageBuilder) WithDateRange(from, to string) *GridUpdatedMessageBuilder {
	b.event.DateFrom = from
	b.event.DateTo = to
	return b
}

func (b *GridUpdatedMessageBuilder) Build() string {
	data, err := json.Marshal(b.event)
	if err != nil {
		return fmt.Sprintf(`{"event":%q,"hotelCode":%q}`, b.event.Event, b.event.HotelCode)
	}
	return string(data)
}
