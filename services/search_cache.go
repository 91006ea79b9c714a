package services

import (
	"context"
	"encoding/json"
	"time"

	"adboard/dto"

	"github.com/redis/go-redis/v9"
)

func SaveLastSearch(ctx context.Context, rdb *redis.Client, key string, filters *dto.SearchFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_search:"+key, b, 30*time.Minute).Err()
}

func GetLastSearch(ctx context.Context, rdb *redis.Client, key string) (*dto.SearchFilters, error) {
	val, err := rdb.Get(ctx, "last_search:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.SearchFilters
	json.Unmarshal([]byte(val), &filters)
	return &filters, nil
}

func ClearLastSearch(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_search:"+key).Err()
}

// MergeSearchFilters gộp bộ lọc cũ với bộ lọc mới: field mới để trống thì giữ
// giá trị của lần tìm trước
func MergeSearchFilters(old *dto.SearchFilters, new *dto.SearchFilters) *dto.SearchFilters {
	new.CompanyID = orString(new.CompanyID, old.CompanyID)
	new.StartDate = orString(new.StartDate, old.StartDate)
	new.EndDate = orString(new.EndDate, old.EndDate)
	new.City = orString(new.City, old.City)
	new.MediaType = orString(new.MediaType, old.MediaType)
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}
