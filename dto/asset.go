package dto

import (
	"encoding/json"
	"time"

	"adboard/models"
)

// AssetResponse là DTO cho danh sách asset
type AssetResponse struct {
	ID           uint      `json:"id"`
	Code         string    `json:"code"`
	City         string    `json:"city"`
	Area         string    `json:"area"`
	Location     string    `json:"location"`
	MediaType    string    `json:"mediaType"`
	WidthFt      float64   `json:"widthFt"`
	HeightFt     float64   `json:"heightFt"`
	AreaSqft     float64   `json:"areaSqft"`
	Illumination string    `json:"illumination"`
	CardRate     float64   `json:"cardRate"`
	Avatar       string    `json:"avatar"`
	Status       int       `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AssetDetail là DTO cho thông tin chi tiết của asset
type AssetDetail struct {
	ID           uint            `json:"id"`
	Code         string          `json:"code"`
	City         string          `json:"city"`
	Area         string          `json:"area"`
	Location     string          `json:"location"`
	MediaType    string          `json:"mediaType"`
	WidthFt      float64         `json:"widthFt"`
	HeightFt     float64         `json:"heightFt"`
	AreaSqft     float64         `json:"areaSqft"`
	Illumination string          `json:"illumination"`
	CardRate     float64         `json:"cardRate"`
	Latitude     string          `json:"latitude"`
	Longitude    string          `json:"longitude"`
	Avatar       string          `json:"avatar"`
	Img          json.RawMessage `json:"img"`
	Status       int             `json:"status"`
	Bookings     []BookingInfo   `json:"bookings"`
}

// ScoredAsset là asset kèm điểm phù hợp khi tìm kiếm mờ
type ScoredAsset struct {
	Asset models.Asset `json:"asset"`
	Score int          `json:"score"`
}
