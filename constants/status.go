package constants

// Asset status
const (
	AssetStatusInactive    = 0
	AssetStatusActive      = 1
	AssetStatusMaintenance = 2
)

// Campaign status
const (
	CampaignStatusDraft     = "Draft"
	CampaignStatusUpcoming  = "Upcoming"
	CampaignStatusRunning   = "Running"
	CampaignStatusCompleted = "Completed"
	CampaignStatusCancelled = "Cancelled"
)

// Availability status
const (
	AvailabilityStatusAvailable = "available"
	AvailabilityStatusBooked    = "booked"
)

// IsActiveCampaignStatus kiểm tra campaign có đang chiếm chỗ hay không.
// Completed/Cancelled chỉ là lịch sử, không tính vào availability.
func IsActiveCampaignStatus(status string) bool {
	switch status {
	case CampaignStatusDraft, CampaignStatusUpcoming, CampaignStatusRunning:
		return true
	}
	return false
}
