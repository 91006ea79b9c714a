package controllers

import (
	"strconv"
	"time"

	"adboard/config"
	"adboard/constants"
	"adboard/dto"
	"adboard/models"
	"adboard/response"
	"adboard/services"

	"github.com/gin-gonic/gin"
)

// GetAssetBookingDates trả về lịch chiếm chỗ theo từng ngày trong một tháng
// của một asset, kèm thông tin campaign đang giữ chỗ ngày đó.
func GetAssetBookingDates(c *gin.Context) {
	assetID := c.DefaultQuery("id", "")
	date := c.DefaultQuery("date", "")

	if assetID == "" || date == "" {
		response.BadRequest(c, "id và date là bắt buộc")
		return
	}

	layout := "01/2006"
	parsedDate, err := time.Parse(layout, date)
	if err != nil {
		response.BadRequest(c, "Ngày không hợp lệ, vui lòng sử dụng định dạng mm/yyyy")
		return
	}

	// Tính toán ngày đầu tháng và ngày cuối tháng
	firstDay := time.Date(parsedDate.Year(), parsedDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	parsedAssetID, err := strconv.ParseUint(assetID, 10, 64)
	if err != nil {
		response.BadRequest(c, "id không hợp lệ")
		return
	}

	// Lấy toàn bộ booking của asset kèm campaign
	var bookings []models.BookingRecord
	if err := config.DB.Preload("Campaign").Where("asset_id = ?", parsedAssetID).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	index := services.BuildBookingIndex(bookings)
	active := index.ActiveByAsset[uint(parsedAssetID)]

	var dayResponses []map[string]interface{}

	// Duyệt qua tất cả các ngày trong tháng
	for day := firstDay; !day.After(lastDay); day = services.AddDays(day, 1) {
		dayResponse := map[string]interface{}{
			"date":   services.FormatDay(day),
			"status": constants.AvailabilityStatusAvailable,
		}

		// Ngày nào nằm trong một khoảng active thì là ngày bị chiếm
		for _, interval := range active {
			if services.Overlaps(interval.Start, interval.End, day, day) {
				dayResponse["status"] = constants.AvailabilityStatusBooked
				dayResponse["campaign"] = map[string]interface{}{
					"campaign_name": interval.CampaignName,
					"client_name":   interval.ClientName,
				}
				break
			}
		}

		dayResponses = append(dayResponses, dayResponse)
	}

	response.Success(c, dayResponses)
}

// GetBookingHistory trả về lịch sử booking theo thứ tự thời gian của asset,
// bao gồm cả campaign đã Completed/Cancelled
func GetBookingHistory(c *gin.Context) {
	assetID := c.Query("assetId")
	if assetID == "" {
		response.BadRequest(c, "assetId là bắt buộc")
		return
	}

	parsedAssetID, err := strconv.ParseUint(assetID, 10, 64)
	if err != nil {
		response.BadRequest(c, "assetId không hợp lệ")
		return
	}

	var bookings []models.BookingRecord
	if err := config.DB.Preload("Campaign").Where("asset_id = ?", parsedAssetID).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	index := services.BuildBookingIndex(bookings)

	history := index.HistoryByAsset[uint(parsedAssetID)]
	if history == nil {
		history = []dto.BookingInfo{}
	}

	response.Success(c, history)
}
