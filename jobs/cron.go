package jobs

import (
	"log"
	"time"

	"adboard/config"
	"adboard/services"
	"adboard/services/logger"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	jobLogger := logger.NewDefaultLogger(logger.InfoLevel)

	// Cache availability tính theo ngày nên sang 0h phải xóa để không trả dữ
	// liệu của ngày hôm trước
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		jobLogger.Info("Đang xóa cache inventory lúc: %v", now)

		if config.RedisClient == nil {
			jobLogger.Error("Redis chưa sẵn sàng, bỏ qua lần xóa cache này")
			return
		}
		if err := services.DeleteByPattern(config.Ctx, config.RedisClient, "assets:*"); err != nil {
			jobLogger.Error("Lỗi khi xóa cache inventory: %v", err)
			return
		}

		// Báo cho frontend đang mở biết dữ liệu availability đã sang ngày mới
		if m != nil {
			if err := m.Broadcast([]byte(`{"event":"availability_refresh"}`)); err != nil {
				jobLogger.Error("Lỗi khi broadcast thông báo refresh: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
