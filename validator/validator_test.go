package validator

import (
	"testing"

	"adboard/dto"
	"adboard/errors"
	"adboard/models"
	"adboard/services"
)

func searchRequest(companyID, start, end string) *dto.AvailabilitySearchRequest {
	return &dto.AvailabilitySearchRequest{
		CompanyID: companyID,
		StartDate: start,
		EndDate:   end,
	}
}

func TestValidateAvailabilityRequest(t *testing.T) {
	tests := []struct {
		name     string
		req      *dto.AvailabilitySearchRequest
		wantCode errors.ErrorCode
	}{
		{"valid", searchRequest("12", "2025-01-01", "2025-01-31"), ""},
		{"single day window", searchRequest("12", "2025-01-15", "2025-01-15"), ""},
		{"missing company_id", searchRequest("", "2025-01-01", "2025-01-31"), errors.ErrCodeRequiredField},
		{"non numeric company_id", searchRequest("abc", "2025-01-01", "2025-01-31"), errors.ErrCodeInvalidFormat},
		{"missing start_date", searchRequest("12", "", "2025-01-31"), errors.ErrCodeRequiredField},
		{"missing end_date", searchRequest("12", "2025-01-01", ""), errors.ErrCodeRequiredField},
		{"bad start_date format", searchRequest("12", "01/01/2025", "2025-01-31"), errors.ErrCodeParse},
		{"bad end_date format", searchRequest("12", "2025-01-01", "garbage"), errors.ErrCodeParse},
		{"end before start", searchRequest("12", "2025-01-31", "2025-01-01"), errors.ErrCodeInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			companyID, rangeStart, rangeEnd, err := ValidateAvailabilityRequest(tt.req)

			if tt.wantCode != "" {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				appErr, ok := err.(*errors.AppError)
				if !ok {
					t.Fatalf("expected AppError, got %T", err)
				}
				if appErr.Code != tt.wantCode {
					t.Fatalf("expected code %s, got %s", tt.wantCode, appErr.Code)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if companyID != 12 {
				t.Fatalf("expected companyID 12, got %d", companyID)
			}
			if rangeEnd.Before(rangeStart) {
				t.Fatalf("returned inverted range [%s, %s]", services.FormatDay(rangeStart), services.FormatDay(rangeEnd))
			}
		})
	}
}

func TestValidateBookingRecord(t *testing.T) {
	tests := []struct {
		name    string
		booking models.BookingRecord
		wantErr bool
	}{
		{"valid", models.BookingRecord{StartDate: "2025-01-01", EndDate: "2025-01-10"}, false},
		{"inverted", models.BookingRecord{StartDate: "2025-01-10", EndDate: "2025-01-01"}, true},
		{"bad start", models.BookingRecord{StartDate: "??", EndDate: "2025-01-10"}, true},
		{"bad end", models.BookingRecord{StartDate: "2025-01-01", EndDate: "??"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBookingRecord(&tt.booking)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateAsset(t *testing.T) {
	valid := models.Asset{Code: "MUM-BB-001", AreaSqft: 400, CardRate: 50000, Status: 1}
	if err := ValidateAsset(&valid); err != nil {
		t.Fatalf("unexpected error for valid asset: %v", err)
	}

	tests := []struct {
		name  string
		asset models.Asset
	}{
		{"missing code", models.Asset{AreaSqft: 400, Status: 1}},
		{"negative sqft", models.Asset{Code: "A", AreaSqft: -1, Status: 1}},
		{"negative rate", models.Asset{Code: "A", CardRate: -1, Status: 1}},
		{"unknown status", models.Asset{Code: "A", Status: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateAsset(&tt.asset); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
