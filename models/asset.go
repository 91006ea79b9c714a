package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Asset struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	CompanyID    uint            `json:"companyId" gorm:"index"`
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
	Img          json.RawMessage `json:"img" gorm:"type:json"`
	Status       int             `json:"status" gorm:"default:1"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings     []BookingRecord `json:"bookings,omitempty" gorm:"foreignKey:AssetID"`
}

func (a *Asset) ValidateStatus() error {
	if a.Status < 0 || a.Status > 2 {
		return fmt.Errorf("invalid status: %d, must be between 0 and 2", a.Status)
	}
	return nil
}
