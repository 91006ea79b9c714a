package models

import "time"

// BookingRecord là một campaign giữ chỗ một asset trong khoảng ngày [StartDate, EndDate].
// Ngày lưu dạng chuỗi YYYY-MM-DD, tính theo ngày (không có giờ), bao gồm cả hai đầu.
type BookingRecord struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	AssetID    uint      `json:"assetId" gorm:"index"`
	CampaignID uint      `json:"campaignId"`
	Campaign   Campaign  `json:"campaign" gorm:"foreignKey:CampaignID"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
