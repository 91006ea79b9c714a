package models

import "time"

type Campaign struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CompanyID  uint      `json:"companyId" gorm:"index"`
	Name       string    `json:"name"`
	ClientName string    `json:"clientName"`
	Status     string    `json:"status" gorm:"default:Draft"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
