package services

import (
	"time"

	"adboard/constants"
)

// AvailabilityResult là kết quả phân loại một asset cho một khoảng truy vấn.
// Blocking là các khoảng đã gộp gây ra verdict booked, trả kèm để giải thích.
type AvailabilityResult struct {
	Status        string
	AvailableFrom *time.Time
	Blocking      []BookingInterval
}

// ResolveAvailability phân loại một asset cho khoảng [rangeStart, rangeEnd].
// Hàm thuần, không side effect: cùng input luôn cho cùng output.
//
// Lưu ý: asset trống luôn có AvailableFrom = rangeStart (kể cả khi nó trống từ
// trước đó), còn asset booked mới tính ngày trống thực sự. Hành vi bất đối
// xứng này được giữ nguyên vì phía hiển thị sort/filter dựa vào nó.
func ResolveAvailability(active []BookingInterval, rangeStart, rangeEnd time.Time) AvailabilityResult {
	// Booking nằm ngoài cửa sổ truy vấn không liên quan
	var overlapping []BookingInterval
	for _, interval := range active {
		if Overlaps(interval.Start, interval.End, rangeStart, rangeEnd) {
			overlapping = append(overlapping, interval)
		}
	}

	if len(overlapping) == 0 {
		from := rangeStart
		return AvailabilityResult{
			Status:        constants.AvailabilityStatusAvailable,
			AvailableFrom: &from,
		}
	}

	merged := MergeIntervals(overlapping)

	latestEnd := merged[0].End
	for _, interval := range merged[1:] {
		if interval.End.After(latestEnd) {
			latestEnd = interval.End
		}
	}

	result := AvailabilityResult{
		Status:   constants.AvailabilityStatusBooked,
		Blocking: merged,
	}

	// Ngày trống trở lại = ngày kết thúc muộn nhất + 1; chỉ báo khi còn nằm
	// trong cửa sổ truy vấn, ngoài cửa sổ thì coi như kín suốt khoảng hỏi
	candidateFree := AddDays(latestEnd, 1)
	if !candidateFree.After(rangeEnd) {
		result.AvailableFrom = &candidateFree
	}
	return result
}
