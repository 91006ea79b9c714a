package services

import (
	"encoding/json"
	"strings"

	"adboard/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetCompanyFromToken lấy userID và companyID từ token
func GetCompanyFromToken(tokenString string) (uint, uint, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	// Giải mã phần payload của token
	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể giải mã token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse token", err)
	}

	// Trích xuất userID và companyID từ claims
	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
	}

	companyID, okCompany := userInfo["companyid"].(float64)
	if !okCompany {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy company trong token", nil)
	}

	return uint(userID), uint(companyID), nil
}
