package services

import (
	"fmt"

	"hotelmate/errors"

	"github.com/dgrijalva/jwt-go"
)

// TokenInfo là thông tin lấy từ hotelmate token
type TokenInfo struct {
	UserID    uint
	Role      int
	HotelCode string
}

// ParseToken kiểm tra chữ ký HS256 và lấy userID, role, hotelCode từ token
func ParseToken(tokenString string, secret []byte) (*TokenInfo, error) {
	if len(secret) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Chưa cấu hình khóa token", nil)
	}

	claimsMap := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claimsMap, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}

	// Trích xuất userID và role từ claims
	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
	}

	role, _ := userInfo["role"].(float64)
	hotelCode, _ := claimsMap["hotelCode"].(string)

	return &TokenInfo{
		UserID:    uint(userID),
		Role:      int(role),
		HotelCode: hotelCode,
	}, nil
}

// NewToken ký token HS256, dùng cho công cụ nội bộ và test
func NewToken(info TokenInfo, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid": info.UserID,
			"role":   info.Role,
		},
		"hotelCode": info.HotelCode,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
