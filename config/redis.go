package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

var RedisClient *redis.Client

// Hàm kết nối đến Redis, trả về nil khi REDIS_ADDR chưa được cấu hình
func ConnectRedis() (*redis.Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR chưa được cấu hình, dùng cache trong bộ nhớ")
		return nil, nil
	}

	// Khởi tạo client Redis với các tùy chọn
	RDB := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	// Kiểm tra kết nối
	res, err := RDB.Ping(Ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Kết nối Redis thành công:", res)
	return RDB, nil
}
