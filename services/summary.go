package services

import "adboard/dto"

// BuildSummary tính các con số tổng hợp mức inventory. Tổng diện tích và
// doanh thu tiềm năng (card rate) chỉ tính trên nhóm đang trống.
func BuildSummary(buckets ClassifiedBuckets) dto.AvailabilitySummary {
	summary := dto.AvailabilitySummary{
		AvailableCount:     len(buckets.Available),
		BookedCount:        len(buckets.FullyBooked),
		AvailableSoonCount: len(buckets.AvailableSoon),
	}
	summary.TotalAssets = summary.AvailableCount + summary.BookedCount + summary.AvailableSoonCount

	for _, asset := range buckets.Available {
		summary.TotalSqftAvailable += asset.AreaSqft
		summary.PotentialRevenue += asset.CardRate
	}
	return summary
}
