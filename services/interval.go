package services

import (
	"sort"
	"time"
)

// BookingInterval là khoảng ngày [Start, End] đã chuẩn hóa của một booking,
// kèm thông tin campaign để hiển thị. Bất biến sau khi tạo.
type BookingInterval struct {
	Start        time.Time
	End          time.Time
	BookingID    uint
	CampaignID   uint
	CampaignName string
	ClientName   string
	Status       string
}

// Overlaps kiểm tra hai khoảng ngày [aStart, aEnd] và [bStart, bEnd] có giao
// nhau không (bao gồm cả hai đầu). Hai khoảng liền kề KHÔNG tính là giao,
// việc gộp khoảng liền kề do MergeIntervals xử lý riêng.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// MergeIntervals gộp các khoảng chồng lấn hoặc liền kề thành danh sách tối
// thiểu các khoảng rời nhau, sắp theo ngày bắt đầu. Hai booking cùng asset có
// thể chồng nhau trong dữ liệu thô (ví dụ gia hạn đặt trước khi hết hạn) nên
// phép gộp phải chịu được trường hợp đó. Gộp lại lần nữa cho cùng kết quả.
func MergeIntervals(intervals []BookingInterval) []BookingInterval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]BookingInterval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []BookingInterval{sorted[0]}
	for _, current := range sorted[1:] {
		last := &merged[len(merged)-1]
		// Chồng lấn hoặc bắt đầu đúng ngày sau khi khoảng trước kết thúc thì gộp chung
		if !current.Start.After(AddDays(last.End, 1)) {
			if current.End.After(last.End) {
				last.End = current.End
			}
			continue
		}
		merged = append(merged, current)
	}
	return merged
}
