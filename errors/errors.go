package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken  ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken  ErrorCode = "MISSING_TOKEN"
	ErrCodeMissingHotel  ErrorCode = "MISSING_HOTEL"
	ErrCodeHotelMismatch ErrorCode = "HOTEL_MISMATCH"

	// Grid errors
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodePlanNotFound     ErrorCode = "PLAN_NOT_FOUND"
	ErrCodeNotEditable      ErrorCode = "NOT_EDITABLE"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	ErrCodeInvalidOccupancy ErrorCode = "INVALID_OCCUPANCY"

	// Database errors
	ErrCodeDBError    ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound ErrorCode = "DB_NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode kiểm tra mã lỗi của err
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	ErrRoomNotFound = errors.New("room type not found")
	ErrPlanNotFound = errors.New("rate plan not found")
	ErrNotEditable  = errors.New("cell is not editable")

	ErrMissingRequired = errors.New("missing required field")
)
