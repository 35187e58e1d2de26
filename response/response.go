package response

import (
	"net/http"

	apperrors "hotelmate/errors"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
	Meta interface{} `json:"meta,omitempty"`
}

type ResponseTotal struct {
	Code  int         `json:"code"`
	Mess  string      `json:"mess"`
	Data  interface{} `json:"data,omitempty"`
	Total int         `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// SuccessWithMeta trả về response thành công kèm meta
func SuccessWithMeta(c *gin.Context, data interface{}, meta interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
		Meta: meta,
	})
}

func SuccessWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, ResponseTotal{
		Code:  1,
		Mess:  "Thành công",
		Total: total,
		Data:  data,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Lỗi server",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Chưa xác thực",
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Không có quyền truy cập",
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// UnprocessableEntity trả về response cho thao tác không hợp lệ với trạng thái hiện tại
func UnprocessableEntity(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, Response{
		Code: 0,
		Mess: message,
	})
}

// FromError chuyển AppError thành response phù hợp, lỗi khác trả về 500
func FromError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeRoomNotFound, apperrors.ErrCodePlanNotFound, apperrors.ErrCodeDBNotFound:
		c.JSON(http.StatusNotFound, Response{Code: 0, Mess: appErr.Message})
	case apperrors.ErrCodeNotEditable:
		UnprocessableEntity(c, appErr.Message)
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken, apperrors.ErrCodeMissingToken:
		c.JSON(http.StatusUnauthorized, Response{Code: 0, Mess: appErr.Message})
	case apperrors.ErrCodeHotelMismatch:
		c.JSON(http.StatusForbidden, Response{Code: 0, Mess: appErr.Message})
	case apperrors.ErrCodeDBError:
		ServerError(c)
	default:
		BadRequest(c, appErr.Message)
	}
}
