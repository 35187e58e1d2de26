package middleware

import (
	"strings"

	"hotelmate/errors"
	"hotelmate/response"
	"hotelmate/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xử lý authentication
func AuthMiddleware(secret []byte, roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		info, err := services.ParseToken(tokenString, secret)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == info.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Token gắn với một khách sạn thì không được thao tác khách sạn khác
		if info.HotelCode != "" {
			if current := c.GetString(HotelCodeKey); current != "" && current != info.HotelCode {
				response.FromError(c, errors.NewAppError(errors.ErrCodeHotelMismatch, "Token không thuộc khách sạn đang chọn", nil))
				c.Abort()
				return
			}
			c.Set(HotelCodeKey, info.HotelCode)
		}

		// Lưu thông tin user vào context
		c.Set("userID", info.UserID)
		c.Set("userRole", info.Role)
		c.Next()
	}
}

// RequireHotel chặn request chưa chọn khách sạn
func RequireHotel() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(HotelCodeKey) == "" {
			response.FromError(c, errors.NewAppError(errors.ErrCodeMissingHotel, "Chưa chọn khách sạn", nil))
			c.Abort()
			return
		}
		c.Next()
	}
}

// ErrorHandler xử lý lỗi
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Kiểm tra lỗi
		if len(c.Errors) > 0 && !c.Writer.Written() {
			response.FromError(c, c.Errors.Last().Err)
		}
	}
}
