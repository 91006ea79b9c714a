package services

import (
	"sort"
	"strings"
	"sync"

	"adboard/dto"
	"adboard/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// parseMediaType đoán loại media từ query người dùng gõ tự do
func parseMediaType(query string) string {
	mediaKeywords := map[string][]string{
		"billboard":   {"billboard", "bill board", "bb"},
		"hoarding":    {"hoarding", "hording"},
		"unipole":     {"unipole", "uni pole", "pole"},
		"gantry":      {"gantry", "overhead"},
		"bus shelter": {"bus shelter", "shelter", "bus stop"},
	}

	normalizedQuery := NormalizeInput(query)
	for mediaType, keywords := range mediaKeywords {
		matcher := createMatcher(keywords)
		match := matcher.Closest(normalizedQuery)
		if match != "" && strings.Contains(normalizedQuery, match) {
			return mediaType
		}
	}
	return ""
}

// prepareUniqueList tạo danh sách giá trị duy nhất từ inventory cho closestmatch
func prepareUniqueList(assets []models.Asset, field string) []string {
	uniqueValues := make(map[string]bool)

	for _, asset := range assets {
		var value string
		switch field {
		case "city":
			value = asset.City
		case "area":
			value = asset.Area
		}
		if value != "" {
			uniqueValues[NormalizeInput(value)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// calculateScore tính điểm phù hợp của asset với query
func calculateScore(query string, asset models.Asset, cmCity, cmArea *closestmatch.ClosestMatch) int {
	normalizedQuery := NormalizeInput(query)
	score := 0

	if mediaType := parseMediaType(normalizedQuery); mediaType != "" && mediaType == NormalizeInput(asset.MediaType) {
		score += 20
	}
	if cmCity.Closest(normalizedQuery) == NormalizeInput(asset.City) {
		score += 13
	}
	if cmArea.Closest(normalizedQuery) == NormalizeInput(asset.Area) {
		score += 5
	}

	normalizedLocation := NormalizeInput(asset.Location)
	if normalizedLocation != "" {
		similarity := calculateSimilarity(normalizedQuery, normalizedLocation)
		if similarity > 0.7 || strings.Contains(normalizedQuery, normalizedLocation) {
			score += 8
		}
	}
	if strings.Contains(normalizedQuery, NormalizeInput(asset.Code)) && asset.Code != "" {
		score += 25
	}

	return score
}

// SearchAssets chấm điểm toàn bộ inventory với query tự do và trả về danh
// sách đã sắp theo độ phù hợp giảm dần. Mỗi asset chấm trên một goroutine.
func SearchAssets(query string, assets []models.Asset) []dto.ScoredAsset {
	cmCity := createMatcher(prepareUniqueList(assets, "city"))
	cmArea := createMatcher(prepareUniqueList(assets, "area"))

	var scoredAssets []dto.ScoredAsset
	scoreCh := make(chan dto.ScoredAsset, len(assets))
	var wg sync.WaitGroup

	for _, asset := range assets {
		wg.Add(1)
		go func(asset models.Asset) {
			defer wg.Done()
			score := calculateScore(query, asset, cmCity, cmArea)
			if score > 0 {
				scoreCh <- dto.ScoredAsset{
					Asset: asset,
					Score: score,
				}
			}
		}(asset)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredAsset := range scoreCh {
		scoredAssets = append(scoredAssets, scoredAsset)
	}

	sort.SliceStable(scoredAssets, func(i, j int) bool {
		if scoredAssets[i].Score == scoredAssets[j].Score {
			return scoredAssets[i].Asset.ID < scoredAssets[j].Asset.ID
		}
		return scoredAssets[i].Score > scoredAssets[j].Score
	})
	return scoredAssets
}
