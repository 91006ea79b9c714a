package services

import (
	"reflect"
	"testing"

	"adboard/constants"
)

func TestResolveAvailabilityNoBookings(t *testing.T) {
	rangeStart := mustDay(t, "2025-01-01")
	rangeEnd := mustDay(t, "2025-01-31")

	result := ResolveAvailability(nil, rangeStart, rangeEnd)

	if result.Status != constants.AvailabilityStatusAvailable {
		t.Fatalf("expected available, got %s", result.Status)
	}
	if result.AvailableFrom == nil || !result.AvailableFrom.Equal(rangeStart) {
		t.Fatalf("expected available_from = rangeStart, got %v", result.AvailableFrom)
	}
	if len(result.Blocking) != 0 {
		t.Fatalf("expected no blocking intervals, got %d", len(result.Blocking))
	}
}

func TestResolveAvailabilityPartialFreedomBoundary(t *testing.T) {
	// Booking hết 10/01, cửa sổ hỏi đến 15/01: trống lại từ 11/01
	active := []BookingInterval{interval(t, "2025-01-01", "2025-01-10")}

	result := ResolveAvailability(active, mustDay(t, "2025-01-01"), mustDay(t, "2025-01-15"))

	if result.Status != constants.AvailabilityStatusBooked {
		t.Fatalf("expected booked, got %s", result.Status)
	}
	if result.AvailableFrom == nil {
		t.Fatal("expected available_from inside range, got nil")
	}
	if FormatDay(*result.AvailableFrom) != "2025-01-11" {
		t.Fatalf("expected available_from 2025-01-11, got %s", FormatDay(*result.AvailableFrom))
	}
}

func TestResolveAvailabilityFullOccupancyBoundary(t *testing.T) {
	// Booking hết 20/01, cửa sổ hỏi đến 15/01: ngày trống 21/01 nằm ngoài cửa sổ
	active := []BookingInterval{interval(t, "2025-01-01", "2025-01-20")}

	result := ResolveAvailability(active, mustDay(t, "2025-01-01"), mustDay(t, "2025-01-15"))

	if result.Status != constants.AvailabilityStatusBooked {
		t.Fatalf("expected booked, got %s", result.Status)
	}
	if result.AvailableFrom != nil {
		t.Fatalf("expected nil available_from, got %s", FormatDay(*result.AvailableFrom))
	}
}

func TestResolveAvailabilityOutsideRangeIgnored(t *testing.T) {
	active := []BookingInterval{interval(t, "2024-01-01", "2024-01-05")}

	result := ResolveAvailability(active, mustDay(t, "2025-01-01"), mustDay(t, "2025-01-31"))

	if result.Status != constants.AvailabilityStatusAvailable {
		t.Fatalf("booking outside the window must not block, got %s", result.Status)
	}
	if result.AvailableFrom == nil || FormatDay(*result.AvailableFrom) != "2025-01-01" {
		t.Fatalf("expected available_from = rangeStart, got %v", result.AvailableFrom)
	}
}

func TestResolveAvailabilityFreeDateExactlyRangeEnd(t *testing.T) {
	// Ngày trống đúng bằng rangeEnd vẫn tính là trong cửa sổ
	active := []BookingInterval{interval(t, "2025-01-01", "2025-01-14")}

	result := ResolveAvailability(active, mustDay(t, "2025-01-01"), mustDay(t, "2025-01-15"))

	if result.AvailableFrom == nil || FormatDay(*result.AvailableFrom) != "2025-01-15" {
		t.Fatalf("expected available_from 2025-01-15, got %v", result.AvailableFrom)
	}
}

func TestResolveAvailabilityMergesBlocking(t *testing.T) {
	// Hai booking liền kề gộp thành một khoảng chiếm chỗ liên tục
	active := []BookingInterval{
		interval(t, "2025-02-11", "2025-02-20"),
		interval(t, "2025-02-01", "2025-02-10"),
	}

	result := ResolveAvailability(active, mustDay(t, "2025-02-01"), mustDay(t, "2025-02-28"))

	if len(result.Blocking) != 1 {
		t.Fatalf("expected 1 merged blocking interval, got %d", len(result.Blocking))
	}
	if FormatDay(result.Blocking[0].Start) != "2025-02-01" || FormatDay(result.Blocking[0].End) != "2025-02-20" {
		t.Fatalf("expected merged [2025-02-01, 2025-02-20], got [%s, %s]",
			FormatDay(result.Blocking[0].Start), FormatDay(result.Blocking[0].End))
	}
	if result.AvailableFrom == nil || FormatDay(*result.AvailableFrom) != "2025-02-21" {
		t.Fatalf("expected available_from 2025-02-21, got %v", result.AvailableFrom)
	}
}

func TestResolveAvailabilityDeterministic(t *testing.T) {
	active := []BookingInterval{
		interval(t, "2025-01-05", "2025-01-12"),
		interval(t, "2025-01-01", "2025-01-03"),
		interval(t, "2025-01-20", "2025-01-25"),
	}
	rangeStart := mustDay(t, "2025-01-01")
	rangeEnd := mustDay(t, "2025-01-31")

	first := ResolveAvailability(active, rangeStart, rangeEnd)
	second := ResolveAvailability(active, rangeStart, rangeEnd)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolver is not deterministic: %+v != %+v", first, second)
	}
}
