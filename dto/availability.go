package dto

// AvailabilitySearchRequest là body của POST /availability/search.
// city và media_type để trống hoặc "all" nghĩa là không lọc.
type AvailabilitySearchRequest struct {
	CompanyID string `json:"company_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	City      string `json:"city"`
	MediaType string `json:"media_type"`
}

// SearchParams echo lại tham số tìm kiếm trong response
type SearchParams struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	City      string `json:"city"`
	MediaType string `json:"media_type"`
}

// AssetInfo là phần thông tin asset nhúng trong kết quả phân loại
type AssetInfo struct {
	ID           uint    `json:"id"`
	Code         string  `json:"code"`
	City         string  `json:"city"`
	Area         string  `json:"area"`
	Location     string  `json:"location"`
	MediaType    string  `json:"media_type"`
	WidthFt      float64 `json:"width_ft"`
	HeightFt     float64 `json:"height_ft"`
	AreaSqft     float64 `json:"area_sqft"`
	Illumination string  `json:"illumination"`
	CardRate     float64 `json:"card_rate"`
	Latitude     string  `json:"latitude"`
	Longitude    string  `json:"longitude"`
	Avatar       string  `json:"avatar"`
}

// BookingInfo là một booking trong lịch sử của asset, kèm thông tin campaign
type BookingInfo struct {
	BookingID    uint   `json:"booking_id"`
	CampaignID   uint   `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	ClientName   string `json:"client_name"`
	Status       string `json:"status"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

// BlockedRange là một khoảng ngày bị chiếm sau khi đã gộp
type BlockedRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ClassifiedAsset là asset kèm kết quả phân loại availability.
// Với asset booked có thêm booking hiện tại, toàn bộ lịch sử booking
// (kể cả Completed/Cancelled) và các khoảng bị chiếm đã gộp.
type ClassifiedAsset struct {
	AssetInfo
	AvailabilityStatus string        `json:"availability_status"`
	AvailableFrom      *string       `json:"available_from"`
	CurrentBooking     *BookingInfo  `json:"current_booking,omitempty"`
	AllBookings        []BookingInfo `json:"all_bookings,omitempty"`
	BlockedRanges      []BlockedRange `json:"blocked_ranges,omitempty"`
}

// AvailabilitySummary là các con số tổng hợp mức inventory
type AvailabilitySummary struct {
	TotalAssets        int     `json:"total_assets"`
	AvailableCount     int     `json:"available_count"`
	BookedCount        int     `json:"booked_count"`
	AvailableSoonCount int     `json:"available_soon_count"`
	TotalSqftAvailable float64 `json:"total_sqft_available"`
	PotentialRevenue   float64 `json:"potential_revenue"`
}

// AvailabilityResponse là payload 200 của availability search
type AvailabilityResponse struct {
	AvailableAssets     []ClassifiedAsset   `json:"available_assets"`
	BookedAssets        []ClassifiedAsset   `json:"booked_assets"`
	AvailableSoonAssets []ClassifiedAsset   `json:"available_soon_assets"`
	Summary             AvailabilitySummary `json:"summary"`
	SearchParams        SearchParams        `json:"search_params"`
}

// AvailabilityErrorResponse giữ nguyên các key top-level của response thành
// công để frontend render "không có dữ liệu" mà không phải rẽ nhánh
type AvailabilityErrorResponse struct {
	Success             bool                `json:"success"`
	Error               string              `json:"error"`
	AvailableAssets     []ClassifiedAsset   `json:"available_assets"`
	BookedAssets        []ClassifiedAsset   `json:"booked_assets"`
	AvailableSoonAssets []ClassifiedAsset   `json:"available_soon_assets"`
	Summary             AvailabilitySummary `json:"summary"`
}

// NewAvailabilityErrorResponse tạo response lỗi với các tập rỗng và summary về 0
func NewAvailabilityErrorResponse(message string) AvailabilityErrorResponse {
	return AvailabilityErrorResponse{
		Success:             false,
		Error:               message,
		AvailableAssets:     []ClassifiedAsset{},
		BookedAssets:        []ClassifiedAsset{},
		AvailableSoonAssets: []ClassifiedAsset{},
	}
}

// SearchFilters là bộ lọc tìm kiếm gần nhất của một company, cache trong Redis
type SearchFilters struct {
	CompanyID string `json:"company_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	City      string `json:"city"`
	MediaType string `json:"media_type"`
}
