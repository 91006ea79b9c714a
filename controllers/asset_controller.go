package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"adboard/config"
	"adboard/dto"
	"adboard/models"
	"adboard/response"
	"adboard/services"

	"github.com/gin-gonic/gin"
)

func convertToAssetResponse(asset models.Asset) dto.AssetResponse {
	return dto.AssetResponse{
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
		Avatar:       asset.Avatar,
		Status:       asset.Status,
		CreatedAt:    asset.CreatedAt,
		UpdatedAt:    asset.UpdatedAt,
	}
}

// GetAllAssets trả về danh sách asset của company có phân trang + filter
func GetAllAssets(c *gin.Context) {
	companyIDStr := c.Query("companyId")
	if companyIDStr == "" {
		response.BadRequest(c, "companyId là bắt buộc")
		return
	}
	companyID, err := strconv.ParseUint(companyIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "companyId không hợp lệ")
		return
	}

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	cityFilter := c.Query("city")
	mediaTypeFilter := c.Query("mediaType")
	statusFilter := c.Query("status")

	// Tạo cache key theo company
	cacheKey := fmt.Sprintf("assets:company:%d", companyID)

	// Kết nối Redis
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Không thể kết nối Redis: %v", err)
	}

	var allAssets []models.Asset

	// Lấy dữ liệu từ Redis, không có thì truy vấn DB rồi cache lại
	if rdb == nil || services.GetFromRedis(config.Ctx, rdb, cacheKey, &allAssets) != nil || len(allAssets) == 0 {
		tx := config.DB.Model(&models.Asset{}).Where("company_id = ?", companyID)
		if err := tx.Order("id").Find(&allAssets).Error; err != nil {
			response.ServerError(c)
			return
		}

		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allAssets, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu dữ liệu vào Redis: %v", err)
			}
		}
	}

	// Lọc trên bộ nhớ, dữ liệu inventory một company không lớn
	filteredAssets := make([]models.Asset, 0, len(allAssets))
	for _, asset := range allAssets {
		if cityFilter != "" && cityFilter != "all" && services.NormalizeInput(asset.City) != services.NormalizeInput(cityFilter) {
			continue
		}
		if mediaTypeFilter != "" && mediaTypeFilter != "all" && services.NormalizeInput(asset.MediaType) != services.NormalizeInput(mediaTypeFilter) {
			continue
		}
		if statusFilter != "" {
			status, err := strconv.Atoi(statusFilter)
			if err == nil && asset.Status != status {
				continue
			}
		}
		filteredAssets = append(filteredAssets, asset)
	}

	total := len(filteredAssets)
	start := page * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	filteredAssets = filteredAssets[start:end]

	assetsResponse := make([]dto.AssetResponse, 0, len(filteredAssets))
	for _, asset := range filteredAssets {
		assetsResponse = append(assetsResponse, convertToAssetResponse(asset))
	}

	response.SuccessWithPagination(c, assetsResponse, page, limit, total)
}

// GetAssetDetail trả về chi tiết asset kèm danh sách booking
func GetAssetDetail(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "id không hợp lệ")
		return
	}

	var asset models.Asset
	if err := config.DB.Preload("Bookings").Preload("Bookings.Campaign").First(&asset, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	index := services.BuildBookingIndex(asset.Bookings)

	detail := dto.AssetDetail{
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
		Img:          asset.Img,
		Status:       asset.Status,
		Bookings:     index.HistoryByAsset[asset.ID],
	}
	if detail.Bookings == nil {
		detail.Bookings = []dto.BookingInfo{}
	}

	response.Success(c, detail)
}

// SearchAssetsByQuery tìm kiếm asset theo query tự do (gõ sai chính tả vẫn ra)
func SearchAssetsByQuery(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.BadRequest(c, "query là bắt buộc")
		return
	}

	companyIDStr := c.Query("companyId")
	companyID, err := strconv.ParseUint(companyIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "companyId không hợp lệ")
		return
	}

	var allAssets []models.Asset
	if err := config.DB.Where("company_id = ?", companyID).Find(&allAssets).Error; err != nil {
		response.ServerError(c)
		return
	}

	scored := services.SearchAssets(query, allAssets)

	results := make([]dto.AssetResponse, 0, len(scored))
	for _, scoredAsset := range scored {
		results = append(results, convertToAssetResponse(scoredAsset.Asset))
	}

	response.Success(c, results)
}

// GetCities trả về danh sách city duy nhất cho dropdown filter
func GetCities(c *gin.Context) {
	companyIDStr := c.Query("companyId")
	companyID, err := strconv.ParseUint(companyIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "companyId không hợp lệ")
		return
	}

	cacheKey := fmt.Sprintf("assets:cities:%d", companyID)
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Không thể kết nối Redis: %v", err)
	}

	var cities []string
	if rdb == nil || services.GetFromRedis(config.Ctx, rdb, cacheKey, &cities) != nil || len(cities) == 0 {
		err := config.DB.Model(&models.Asset{}).
			Where("company_id = ?", companyID).
			Distinct().
			Order("city").
			Pluck("city", &cities).Error
		if err != nil {
			response.ServerError(c)
			return
		}
		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKey, cities, 60*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu dữ liệu vào Redis: %v", err)
			}
		}
	}

	response.Success(c, cities)
}
