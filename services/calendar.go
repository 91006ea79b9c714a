package services

import (
	"fmt"
	"time"
)

// DayLayout là định dạng ngày chuẩn YYYY-MM-DD
const DayLayout = "2006-01-02"

// Các định dạng ISO chấp nhận được; phần giờ (nếu có) sẽ bị cắt bỏ
var dayLayouts = []string{DayLayout, time.RFC3339, "2006-01-02T15:04:05"}

// ParseDay parse chuỗi ngày ISO về đúng ngày lịch, luôn tính theo UTC
// để tránh lệch một ngày khi server và client chạy khác múi giờ.
func ParseDay(value string) (time.Time, error) {
	for _, layout := range dayLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("ngày không hợp lệ: %q", value)
}

// FormatDay render ngày dạng YYYY-MM-DD
func FormatDay(day time.Time) string {
	return day.Format(DayLayout)
}

// AddDays cộng thêm n ngày lịch, không tính lại múi giờ
func AddDays(day time.Time, n int) time.Time {
	return day.AddDate(0, 0, n)
}
