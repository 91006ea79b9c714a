package services

import (
	"context"
	"sort"

	"adboard/constants"
	"adboard/dto"
	"adboard/errors"
	"adboard/models"
	"adboard/utils"

	"gorm.io/gorm"
)

// FetchAssets lấy inventory của company theo bộ lọc; city/mediaType để trống
// hoặc "all" nghĩa là không lọc. Context hủy thì cả request dừng theo.
func FetchAssets(ctx context.Context, db *gorm.DB, companyID uint, city, mediaType string) ([]models.Asset, error) {
	tx := db.WithContext(ctx).Model(&models.Asset{}).Where("company_id = ?", companyID)
	if city != "" && city != "all" {
		tx = tx.Where("LOWER(city) = LOWER(?)", city)
	}
	if mediaType != "" && mediaType != "all" {
		tx = tx.Where("LOWER(media_type) = LOWER(?)", mediaType)
	}

	var assets []models.Asset
	if err := tx.Order("id").Find(&assets).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDataFetch, "Không thể lấy danh sách asset", err)
	}
	return assets, nil
}

// FetchBookings lấy toàn bộ booking của các asset kèm thông tin campaign
func FetchBookings(ctx context.Context, db *gorm.DB, assetIDs []uint) ([]models.BookingRecord, error) {
	if len(assetIDs) == 0 {
		return nil, nil
	}
	var bookings []models.BookingRecord
	err := db.WithContext(ctx).Preload("Campaign").Where("asset_id IN ?", assetIDs).Find(&bookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDataFetch, "Không thể lấy danh sách booking", err)
	}
	return bookings, nil
}

// BookingIndex gom booking theo asset: khoảng active cho phần tính toán và
// toàn bộ lịch sử cho phần hiển thị. Dựng một lần rồi truyền xuống classifier,
// không mutate tiếp.
type BookingIndex struct {
	ActiveByAsset  map[uint][]BookingInterval
	HistoryByAsset map[uint][]dto.BookingInfo
}

// BuildBookingIndex dựng index booking theo asset từ các record thô.
// Record hỏng (ngày không parse được, end trước start) chỉ ghi log rồi bỏ
// qua; một booking hỏng không được làm sập cả inventory view.
func BuildBookingIndex(bookings []models.BookingRecord) BookingIndex {
	index := BookingIndex{
		ActiveByAsset:  make(map[uint][]BookingInterval),
		HistoryByAsset: make(map[uint][]dto.BookingInfo),
	}

	for _, booking := range bookings {
		start, err := ParseDay(booking.StartDate)
		if err != nil {
			utils.LogIntegrityWarning("booking %d có ngày bắt đầu không parse được %q: %v", booking.ID, booking.StartDate, err)
			continue
		}
		end, err := ParseDay(booking.EndDate)
		if err != nil {
			utils.LogIntegrityWarning("booking %d có ngày kết thúc không parse được %q: %v", booking.ID, booking.EndDate, err)
			continue
		}
		if end.Before(start) {
			// Không tự đảo ngược ngày cho record hỏng, chỉ bỏ qua
			utils.LogIntegrityWarning("booking %d có end %s trước start %s, bỏ qua", booking.ID, booking.EndDate, booking.StartDate)
			continue
		}

		info := dto.BookingInfo{
			BookingID:    booking.ID,
			CampaignID:   booking.CampaignID,
			CampaignName: booking.Campaign.Name,
			ClientName:   booking.Campaign.ClientName,
			Status:       booking.Campaign.Status,
			StartDate:    FormatDay(start),
			EndDate:      FormatDay(end),
		}
		index.HistoryByAsset[booking.AssetID] = append(index.HistoryByAsset[booking.AssetID], info)

		// Chỉ campaign còn active (Draft/Upcoming/Running) mới chiếm chỗ
		if constants.IsActiveCampaignStatus(booking.Campaign.Status) {
			index.ActiveByAsset[booking.AssetID] = append(index.ActiveByAsset[booking.AssetID], BookingInterval{
				Start:        start,
				End:          end,
				BookingID:    booking.ID,
				CampaignID:   booking.CampaignID,
				CampaignName: booking.Campaign.Name,
				ClientName:   booking.Campaign.ClientName,
				Status:       booking.Campaign.Status,
			})
		}
	}

	// Lịch sử hiển thị theo thứ tự thời gian
	for assetID := range index.HistoryByAsset {
		history := index.HistoryByAsset[assetID]
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].StartDate < history[j].StartDate
		})
	}
	return index
}
