package validator

import (
	stderrors "errors"
	"fmt"
	"time"

	"hotelmate/constants"
	"hotelmate/dto"
	"hotelmate/errors"
	"hotelmate/models"

	"github.com/go-playground/validator/v10"
)

// maxGridDays giới hạn số ngày của một lần tải lưới
const maxGridDays = 62

var validate = validator.New()

// structError chuyển lỗi của validator/v10 thành AppError với thông báo dễ đọc
func structError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return errors.NewAppError(errors.ErrCodeRequiredField, fmt.Sprintf("%s không được để trống", fe.Field()), err)
	case "datetime":
		return errors.NewAppError(errors.ErrCodeInvalidFormat, fmt.Sprintf("%s phải có định dạng yyyy-mm-dd", fe.Field()), err)
	case "oneof":
		return errors.NewAppError(errors.ErrCodeInvalidOperation, fmt.Sprintf("%s phải là một trong: %s", fe.Field(), fe.Param()), err)
	case "min", "max":
		return errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("%s nằm ngoài giới hạn cho phép", fe.Field()), err)
	default:
		return errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("%s không hợp lệ", fe.Field()), err)
	}
}

// ValidateDateRange kiểm tra from <= to, trả về số ngày trong khoảng
func ValidateDateRange(from, to string) (int, error) {
	fromDate, err := time.Parse(constants.DateLayout, from)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	toDate, err := time.Parse(constants.DateLayout, to)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if toDate.Before(fromDate) {
		return 0, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	return int(toDate.Sub(fromDate).Hours()/24) + 1, nil
}

func ValidateGridQuery(q *dto.GridQuery) error {
	if err := structError(validate.Struct(q)); err != nil {
		return err
	}

	days, err := ValidateDateRange(q.From, q.To)
	if err != nil {
		return err
	}
	if days > maxGridDays {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, fmt.Sprintf("Khoảng ngày tối đa là %d ngày", maxGridDays), nil)
	}
	return nil
}

// ValidateOverride kiểm tra yêu cầu sửa giá trước khi dựng payload
func ValidateOverride(req *dto.OverrideRequest) error {
	if err := structError(validate.Struct(req)); err != nil {
		return err
	}

	days, err := ValidateDateRange(req.DateFrom, req.DateTo)
	if err != nil {
		return err
	}
	if days > maxGridDays {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, fmt.Sprintf("Khoảng ngày tối đa là %d ngày", maxGridDays), nil)
	}

	if *req.Value < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá trị không được âm", nil)
	}

	return nil
}

// ValidateRatePlan kiểm tra gói giá và các dòng giá theo ngày
func ValidateRatePlan(plan *models.RatePlan) error {
	if plan.RoomTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID loại phòng không được để trống", nil)
	}

	if plan.MealPlan == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mã gói ăn không được để trống", nil)
	}

	if len(plan.CurrencyCode) != 3 {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Mã tiền tệ phải có 3 ký tự", nil)
	}

	if plan.SellMode != constants.SellModePerRoom && plan.SellMode != constants.SellModePerPerson {
		return errors.NewAppError(errors.ErrCodeValidation, "Chế độ bán không hợp lệ", nil)
	}

	if plan.RateMode != constants.RateModeAuto && plan.RateMode != constants.RateModeManual {
		return errors.NewAppError(errors.ErrCodeValidation, "Chế độ tính giá không hợp lệ", nil)
	}

	if plan.PrimaryOccupancy < 1 || plan.PrimaryOccupancy > constants.MaxOccupancy {
		return errors.NewAppError(errors.ErrCodeInvalidOccupancy, "Số khách mặc định phải từ 1 đến 18", nil)
	}

	seen := make(map[string]bool, len(plan.HotelRates))
	for i := range plan.HotelRates {
		row := &plan.HotelRates[i]
		if _, err := time.Parse(constants.DateLayout, row.Date); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày của dòng giá không hợp lệ: "+row.Date, err)
		}
		if seen[row.Date] {
			return errors.NewAppError(errors.ErrCodeValidation, "Trùng ngày trong danh sách giá: "+row.Date, nil)
		}
		seen[row.Date] = true

		if row.DefaultRate < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
		}
		for n := 1; n <= constants.MaxOccupancy; n++ {
			if v := row.Pax(n); v != nil && *v < 0 {
				return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
			}
		}
	}

	return nil
}

func ValidateAvailability(req *dto.AvailabilityRequest) error {
	return structError(validate.Struct(req))
}
