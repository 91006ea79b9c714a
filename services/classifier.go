package services

import (
	"sort"
	"sync"
	"time"

	"adboard/constants"
	"adboard/dto"
	"adboard/models"
	"adboard/utils"
)

// ClassifiedBuckets gom kết quả phân loại toàn bộ inventory thành ba nhóm rời nhau
type ClassifiedBuckets struct {
	Available     []dto.ClassifiedAsset
	AvailableSoon []dto.ClassifiedAsset
	FullyBooked   []dto.ClassifiedAsset
}

// ClassifyAssets chạy resolver cho từng asset rồi chia vào ba nhóm:
// trống, sắp trống (booked nhưng có ngày trống trong khoảng hỏi) và kín.
// Mỗi asset chỉ phụ thuộc booking của chính nó nên chấm song song được,
// worker không dùng chung accumulator, kết quả join lại qua channel.
func ClassifyAssets(assets []models.Asset, activeByAsset map[uint][]BookingInterval, historyByAsset map[uint][]dto.BookingInfo, rangeStart, rangeEnd time.Time) ClassifiedBuckets {
	// Join phía trên có thể trả asset trùng id; ghi log cảnh báo rồi bỏ bản trùng
	seen := make(map[uint]bool)
	uniqueAssets := make([]models.Asset, 0, len(assets))
	for _, asset := range assets {
		if seen[asset.ID] {
			utils.LogIntegrityWarning("asset id %d xuất hiện nhiều lần trong kết quả join, bỏ qua bản trùng", asset.ID)
			continue
		}
		seen[asset.ID] = true
		uniqueAssets = append(uniqueAssets, asset)
	}

	resultCh := make(chan dto.ClassifiedAsset, len(uniqueAssets))
	var wg sync.WaitGroup

	for _, asset := range uniqueAssets {
		wg.Add(1)
		go func(asset models.Asset) {
			defer wg.Done()
			resultCh <- classifyAsset(asset, activeByAsset[asset.ID], historyByAsset[asset.ID], rangeStart, rangeEnd)
		}(asset)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	buckets := ClassifiedBuckets{
		Available:     []dto.ClassifiedAsset{},
		AvailableSoon: []dto.ClassifiedAsset{},
		FullyBooked:   []dto.ClassifiedAsset{},
	}
	for classified := range resultCh {
		switch {
		case classified.AvailabilityStatus == constants.AvailabilityStatusAvailable:
			buckets.Available = append(buckets.Available, classified)
		case classified.AvailableFrom != nil:
			buckets.AvailableSoon = append(buckets.AvailableSoon, classified)
		default:
			buckets.FullyBooked = append(buckets.FullyBooked, classified)
		}
	}

	// Thứ tự goroutine hoàn thành không ổn định, sắp lại theo id
	sortByAssetID(buckets.Available)
	sortByAssetID(buckets.AvailableSoon)
	sortByAssetID(buckets.FullyBooked)
	return buckets
}

// classifyAsset phân loại một asset và gắn kèm context booking để hiển thị
func classifyAsset(asset models.Asset, active []BookingInterval, history []dto.BookingInfo, rangeStart, rangeEnd time.Time) dto.ClassifiedAsset {
	result := ResolveAvailability(active, rangeStart, rangeEnd)

	classified := dto.ClassifiedAsset{
		AssetInfo:          convertToAssetInfo(asset),
		AvailabilityStatus: result.Status,
	}
	if result.AvailableFrom != nil {
		from := FormatDay(*result.AvailableFrom)
		classified.AvailableFrom = &from
	}

	if result.Status == constants.AvailabilityStatusBooked {
		// Asset booked mang theo toàn bộ lịch sử booking (kể cả Completed/
		// Cancelled) cho người vận hành, độc lập với các booking gây ra verdict
		classified.AllBookings = history
		classified.CurrentBooking = firstOverlappingBooking(active, rangeStart, rangeEnd)
		for _, blocked := range result.Blocking {
			classified.BlockedRanges = append(classified.BlockedRanges, dto.BlockedRange{
				StartDate: FormatDay(blocked.Start),
				EndDate:   FormatDay(blocked.End),
			})
		}
	}
	return classified
}

// firstOverlappingBooking trả về booking active sớm nhất giao với khoảng truy vấn
func firstOverlappingBooking(active []BookingInterval, rangeStart, rangeEnd time.Time) *dto.BookingInfo {
	var first *BookingInterval
	for i := range active {
		interval := &active[i]
		if !Overlaps(interval.Start, interval.End, rangeStart, rangeEnd) {
			continue
		}
		if first == nil || interval.Start.Before(first.Start) {
			first = interval
		}
	}
	if first == nil {
		return nil
	}
	return &dto.BookingInfo{
		BookingID:    first.BookingID,
		CampaignID:   first.CampaignID,
		CampaignName: first.CampaignName,
		ClientName:   first.ClientName,
		Status:       first.Status,
		StartDate:    FormatDay(first.Start),
		EndDate:      FormatDay(first.End),
	}
}

func convertToAssetInfo(asset models.Asset) dto.AssetInfo {
	return dto.AssetInfo{
		ID:           asset.ID,
		Code:         asset.Code,
		City:         asset.City,
		Area:         asset.Area,
		Location:     asset.Location,
		MediaType:    asset.MediaType,
		WidthFt:      asset.WidthFt,
		HeightFt:     asset.HeightFt,
		AreaSqft:     asset.AreaSqft,
		Illumination: asset.Illumination,
		CardRate:     asset.CardRate,
		Latitude:     asset.Latitude,
		Longitude:    asset.Longitude,
		Avatar:       asset.Avatar,
	}
}

func sortByAssetID(classified []dto.ClassifiedAsset) {
	sort.SliceStable(classified, func(i, j int) bool {
		return classified[i].ID < classified[j].ID
	})
}
