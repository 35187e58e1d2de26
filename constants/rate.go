package constants

// Chế độ bán
const (
	SellModePerRoom   = "Per Room"
	SellModePerPerson = "Per Person"
)

// Chế độ tính giá
const (
	RateModeAuto   = "Auto"
	RateModeManual = "Manual"
)

// Thao tác chỉnh giá trên lưới
const (
	OpSet      = "set"
	OpIncrease = "increase"
	OpDecrease = "decrease"
)

const (
	// MaxOccupancy là số cột pax tối đa của một dòng giá
	MaxOccupancy = 18

	// FilterAll tắt một bộ lọc
	FilterAll = "all"

	// RateCodeNA dùng trong planKey khi gói giá không có rate code
	RateCodeNA = "NA"

	DateLayout = "2006-01-02"
)

// Sự kiện websocket
const (
	EventRateGridUpdated = "rate_grid_updated"
)
