package validator

import (
	"strconv"
	"time"

	"adboard/dto"
	"adboard/errors"
	"adboard/models"
	"adboard/services"
)

// ValidateAvailabilityRequest validate body của availability search và trả về
// companyID cùng hai mốc ngày đã parse. Lỗi ở đây là lỗi của request (400),
// không phải lỗi dữ liệu.
func ValidateAvailabilityRequest(req *dto.AvailabilitySearchRequest) (uint, time.Time, time.Time, error) {
	if req.CompanyID == "" {
		return 0, time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "company_id không được để trống", nil)
	}
	companyID, err := strconv.ParseUint(req.CompanyID, 10, 64)
	if err != nil {
		return 0, time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "company_id không hợp lệ", err)
	}

	if req.StartDate == "" {
		return 0, time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "start_date không được để trống", nil)
	}
	if req.EndDate == "" {
		return 0, time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "end_date không được để trống", nil)
	}

	rangeStart, err := services.ParseDay(req.StartDate)
	if err != nil {
		return 0, time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeParse, "Định dạng start_date không hợp lệ", err)
	}
	rangeEnd, err := services.ParseDay(req.EndDate)
	if err != nil {
		return 0, time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeParse, "Định dạng end_date không hợp lệ", err)
	}

	if rangeEnd.Before(rangeStart) {
		return 0, time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidRange, "end_date phải sau hoặc bằng start_date", nil)
	}

	return uint(companyID), rangeStart, rangeEnd, nil
}

// ValidateBookingRecord kiểm tra một booking record lưu trong DB có hợp lệ
// không. Record hỏng là cảnh báo dữ liệu, caller ghi log rồi bỏ qua.
func ValidateBookingRecord(booking *models.BookingRecord) error {
	start, err := services.ParseDay(booking.StartDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDataIntegrity, "Ngày bắt đầu của booking không parse được", err)
	}
	end, err := services.ParseDay(booking.EndDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDataIntegrity, "Ngày kết thúc của booking không parse được", err)
	}
	if end.Before(start) {
		return errors.NewAppError(errors.ErrCodeDataIntegrity, "Booking có ngày kết thúc trước ngày bắt đầu", errors.ErrBookingInverted)
	}
	return nil
}

// ValidateAsset kiểm tra asset trước khi đưa vào inventory
func ValidateAsset(asset *models.Asset) error {
	if asset.Code == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Code của asset không được để trống", nil)
	}
	if asset.AreaSqft < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Diện tích không được âm", nil)
	}
	if asset.CardRate < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Card rate không được âm", nil)
	}
	if err := asset.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Trạng thái asset không hợp lệ", err)
	}
	return nil
}
