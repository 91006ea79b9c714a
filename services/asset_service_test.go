package services

import (
	"testing"

	"adboard/constants"
	"adboard/models"
)

func testBooking(id, assetID uint, start, end, campaignStatus string) models.BookingRecord {
	return models.BookingRecord{
		ID:         id,
		AssetID:    assetID,
		CampaignID: id + 100,
		Campaign: models.Campaign{
			ID:         id + 100,
			Name:       "Campaign",
			ClientName: "Client",
			Status:     campaignStatus,
		},
		StartDate: start,
		EndDate:   end,
	}
}

func TestBuildBookingIndexFiltersInactiveCampaigns(t *testing.T) {
	bookings := []models.BookingRecord{
		testBooking(1, 7, "2025-01-01", "2025-01-10", constants.CampaignStatusRunning),
		testBooking(2, 7, "2025-02-01", "2025-02-10", constants.CampaignStatusCancelled),
		testBooking(3, 7, "2025-03-01", "2025-03-10", constants.CampaignStatusCompleted),
		testBooking(4, 7, "2025-04-01", "2025-04-10", constants.CampaignStatusUpcoming),
		testBooking(5, 7, "2025-05-01", "2025-05-10", constants.CampaignStatusDraft),
	}

	index := BuildBookingIndex(bookings)

	// Cancelled/Completed không chiếm chỗ nhưng vẫn nằm trong lịch sử
	if len(index.ActiveByAsset[7]) != 3 {
		t.Fatalf("expected 3 active intervals, got %d", len(index.ActiveByAsset[7]))
	}
	if len(index.HistoryByAsset[7]) != 5 {
		t.Fatalf("expected 5 history entries, got %d", len(index.HistoryByAsset[7]))
	}
}

func TestBuildBookingIndexSkipsInvalidRecords(t *testing.T) {
	bookings := []models.BookingRecord{
		testBooking(1, 7, "2025-01-10", "2025-01-01", constants.CampaignStatusRunning), // end trước start
		testBooking(2, 7, "not-a-date", "2025-01-10", constants.CampaignStatusRunning),
		testBooking(3, 7, "2025-01-01", "garbage", constants.CampaignStatusRunning),
		testBooking(4, 7, "2025-02-01", "2025-02-10", constants.CampaignStatusRunning),
	}

	index := BuildBookingIndex(bookings)

	// Record hỏng bị bỏ qua, record tốt vẫn được xử lý
	if len(index.ActiveByAsset[7]) != 1 {
		t.Fatalf("expected 1 active interval after skipping bad records, got %d", len(index.ActiveByAsset[7]))
	}
	if len(index.HistoryByAsset[7]) != 1 {
		t.Fatalf("expected 1 history entry after skipping bad records, got %d", len(index.HistoryByAsset[7]))
	}
	if index.HistoryByAsset[7][0].StartDate != "2025-02-01" {
		t.Fatalf("wrong surviving record: %+v", index.HistoryByAsset[7][0])
	}
}

func TestBuildBookingIndexHistorySortedChronologically(t *testing.T) {
	bookings := []models.BookingRecord{
		testBooking(1, 7, "2025-06-01", "2025-06-10", constants.CampaignStatusCompleted),
		testBooking(2, 7, "2025-01-01", "2025-01-10", constants.CampaignStatusRunning),
		testBooking(3, 7, "2025-03-15", "2025-03-20", constants.CampaignStatusCancelled),
	}

	index := BuildBookingIndex(bookings)

	history := index.HistoryByAsset[7]
	if len(history) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i-1].StartDate > history[i].StartDate {
			t.Fatalf("history is not chronological at %d: %s > %s", i, history[i-1].StartDate, history[i].StartDate)
		}
	}
}

func TestBuildBookingIndexNormalizesStoredTimestamps(t *testing.T) {
	// Booking lưu kèm giờ vẫn phải ra đúng ngày lịch
	bookings := []models.BookingRecord{
		testBooking(1, 7, "2025-01-01T10:30:00Z", "2025-01-10T23:00:00Z", constants.CampaignStatusRunning),
	}

	index := BuildBookingIndex(bookings)

	active := index.ActiveByAsset[7]
	if len(active) != 1 {
		t.Fatalf("expected 1 active interval, got %d", len(active))
	}
	if FormatDay(active[0].Start) != "2025-01-01" || FormatDay(active[0].End) != "2025-01-10" {
		t.Fatalf("timestamps not truncated to days: [%s, %s]", FormatDay(active[0].Start), FormatDay(active[0].End))
	}
}

func TestBuildBookingIndexGroupsByAsset(t *testing.T) {
	bookings := []models.BookingRecord{
		testBooking(1, 7, "2025-01-01", "2025-01-10", constants.CampaignStatusRunning),
		testBooking(2, 8, "2025-01-05", "2025-01-15", constants.CampaignStatusRunning),
	}

	index := BuildBookingIndex(bookings)

	if len(index.ActiveByAsset) != 2 {
		t.Fatalf("expected bookings grouped under 2 assets, got %d", len(index.ActiveByAsset))
	}
	if len(index.ActiveByAsset[7]) != 1 || len(index.ActiveByAsset[8]) != 1 {
		t.Fatal("bookings grouped under wrong asset")
	}
}
