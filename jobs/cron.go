package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// retentionDays là số ngày giá và tồn phòng cũ được giữ lại
const retentionDays = 30

// RatePurger định nghĩa interface cho việc xóa giá và tồn phòng cũ
type RatePurger interface {
	PurgeBefore(ctx context.Context, cutoff time.Time) error
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, purger RatePurger) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		RunPurge(context.Background(), purger, time.Now())
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// RunPurge xóa dữ liệu trước now - retentionDays
func RunPurge(ctx context.Context, purger RatePurger, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)
	log.Printf("Đang xóa giá và tồn phòng trước ngày %s", cutoff.Format("2006-01-02"))
	if err := purger.PurgeBefore(ctx, cutoff); err != nil {
		log.Printf("Lỗi khi xóa dữ liệu cũ: %v", err)
	}
}
