package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionIDKey = "sessionId"
	HotelCodeKey = "hotelCode"
)

// SessionMiddleware tạo sessionId nếu chưa có và đọc mã khách sạn đang chọn
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader("X-Session-ID")
		if sessionId == "" {
			// Tạo sessionId mới
			sessionId = uuid.NewString()
		}

		// Gán vào context để dùng trong controller hoặc service
		c.Set(SessionIDKey, sessionId)

		// Gán lại header (optional)
		c.Writer.Header().Set("X-Session-ID", sessionId)

		if hotelCode := strings.TrimSpace(c.GetHeader("X-Hotel-Code")); hotelCode != "" {
			c.Set(HotelCodeKey, hotelCode)
		}

		c.Next()
	}
}
