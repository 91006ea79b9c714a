package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"adboard/config"
	"adboard/dto"
	"adboard/errors"
	"adboard/services"
	"adboard/validator"

	"github.com/gin-gonic/gin"
)

// Thời gian tối đa cho phần fetch dữ liệu của một lần search
const availabilityFetchTimeout = 15 * time.Second

// SearchAvailability là endpoint chính: nhận khoảng ngày truy vấn, phân loại
// toàn bộ inventory thành trống / sắp trống / kín và trả kèm summary.
// Lỗi validation trả 400, lỗi fetch trả 500; cả hai đều trả payload có đủ các
// key top-level như response thành công để frontend không phải rẽ nhánh.
func SearchAvailability(c *gin.Context) {
	var req dto.AvailabilitySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewAvailabilityErrorResponse("Body không hợp lệ: "+err.Error()))
		return
	}

	companyID, rangeStart, rangeEnd, err := validator.ValidateAvailabilityRequest(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewAvailabilityErrorResponse(errorMessage(err)))
		return
	}

	// Fetch chạy dưới context của request kèm timeout; hủy giữa chừng thì bỏ
	// cả request, không trả kết quả dở dang
	ctx, cancel := context.WithTimeout(c.Request.Context(), availabilityFetchTimeout)
	defer cancel()

	assets, err := services.FetchAssets(ctx, config.DB, companyID, req.City, req.MediaType)
	if err != nil {
		log.Printf("Lỗi khi lấy danh sách asset: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewAvailabilityErrorResponse(errorMessage(err)))
		return
	}

	assetIDs := make([]uint, 0, len(assets))
	for _, asset := range assets {
		assetIDs = append(assetIDs, asset.ID)
	}

	bookings, err := services.FetchBookings(ctx, config.DB, assetIDs)
	if err != nil {
		log.Printf("Lỗi khi lấy danh sách booking: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewAvailabilityErrorResponse(errorMessage(err)))
		return
	}

	index := services.BuildBookingIndex(bookings)
	buckets := services.ClassifyAssets(assets, index.ActiveByAsset, index.HistoryByAsset, rangeStart, rangeEnd)
	summary := services.BuildSummary(buckets)

	// Lưu bộ lọc gần nhất để frontend prefill; lỗi cache không chặn response
	if config.RedisClient != nil {
		filters := &dto.SearchFilters{
			CompanyID: req.CompanyID,
			StartDate: services.FormatDay(rangeStart),
			EndDate:   services.FormatDay(rangeEnd),
			City:      req.City,
			MediaType: req.MediaType,
		}
		if err := services.SaveLastSearch(config.Ctx, config.RedisClient, req.CompanyID, filters); err != nil {
			log.Printf("Lỗi khi lưu bộ lọc tìm kiếm: %v", err)
		}
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		AvailableAssets:     buckets.Available,
		BookedAssets:        buckets.FullyBooked,
		AvailableSoonAssets: buckets.AvailableSoon,
		Summary:             summary,
		SearchParams: dto.SearchParams{
			StartDate: services.FormatDay(rangeStart),
			EndDate:   services.FormatDay(rangeEnd),
			City:      orAll(req.City),
			MediaType: orAll(req.MediaType),
		},
	})
}

// GetLastSearch trả về bộ lọc tìm kiếm gần nhất của company (prefill form)
func GetLastSearch(c *gin.Context) {
	companyID := c.Query("company_id")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, dto.NewAvailabilityErrorResponse("company_id là bắt buộc"))
		return
	}

	filters, err := services.GetLastSearch(config.Ctx, config.RedisClient, companyID)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NewAvailabilityErrorResponse("Chưa có tìm kiếm nào được lưu"))
		return
	}
	c.JSON(http.StatusOK, filters)
}

// errorMessage lấy message hiển thị từ AppError, không lộ lỗi nội bộ
func errorMessage(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return "Lỗi server"
}

func orAll(value string) string {
	if value == "" {
		return "all"
	}
	return value
}
