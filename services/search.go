package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"vista/models"
)

// ScoredProperty là property kèm điểm phù hợp với query tìm kiếm
type ScoredProperty struct {
	Property models.Property
	Score    int
}

// NormalizeInput chuẩn hóa chuỗi tìm kiếm: bỏ dấu tiếng Việt, về chữ thường
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// CreateMatcher tạo đối tượng closestmatch cho danh sách từ khóa
func CreateMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// CalculateSimilarity tính độ tương đồng giữa hai chuỗi theo khoảng cách levenshtein
func CalculateSimilarity(a, b string) float64 {
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

var starRatingPattern = regexp.MustCompile(`(\d+)\s*sao`)

// ExtractRatingFromQuery lấy xếp hạng sao từ query, ví dụ "khách sạn 5 sao"
func ExtractRatingFromQuery(query string) int {
	match := starRatingPattern.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}

	rating, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return rating
}

// PrepareProvinceList gom danh sách tỉnh thành duy nhất từ properties cho closestmatch
func PrepareProvinceList(properties []models.Property) []string {
	uniqueValues := make(map[string]bool)
	for _, property := range properties {
		if property.Province != "" {
			uniqueValues[NormalizeInput(property.Province)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

func calculateNameScore(query string, property models.Property) int {
	normalizedName := NormalizeInput(property.Name)
	if normalizedName == "" {
		return 0
	}
	if strings.Contains(query, normalizedName) || strings.Contains(normalizedName, query) {
		return 20
	}
	if CalculateSimilarity(query, normalizedName) > 0.7 {
		return 12
	}
	return 0
}

func calculateLocationScore(query string, property models.Property, cmProvince *closestmatch.ClosestMatch) int {
	score := 0
	if cmProvince.Closest(query) == NormalizeInput(property.Province) {
		score += 13
	}
	if property.District != "" && strings.Contains(query, NormalizeInput(property.District)) {
		score += 5
	}
	return score
}

func calculateAmenityScore(query string, amenities []string) int {
	maxAmenityScore := 12
	amenityScore := 0

	for _, amenity := range amenities {
		normalizedAmenity := NormalizeInput(amenity)
		similarity := CalculateSimilarity(query, normalizedAmenity)
		if similarity > 0.7 || strings.Contains(query, normalizedAmenity) {
			amenityScore += 4
			if amenityScore >= maxAmenityScore {
				break
			}
		}
	}
	return amenityScore
}

// CalculateScore tính điểm phù hợp của property với query tìm kiếm
func CalculateScore(query string, property models.Property, cmProvince *closestmatch.ClosestMatch) int {
	normalizedQuery := NormalizeInput(query)
	rating := ExtractRatingFromQuery(normalizedQuery)

	score := 0
	if rating != -1 && property.StarRating == rating {
		score += 15
	}
	score += calculateNameScore(normalizedQuery, property)
	score += calculateLocationScore(normalizedQuery, property, cmProvince)
	score += calculateAmenityScore(normalizedQuery, property.Amenities)

	return score
}

// FilterAndScoreProperties chấm điểm song song toàn bộ properties,
// loại các property điểm 0 và sắp xếp giảm dần theo điểm.
func FilterAndScoreProperties(query string, properties []models.Property, cmProvince *closestmatch.ClosestMatch) []ScoredProperty {
	var scored []ScoredProperty
	scoreCh := make(chan ScoredProperty, len(properties))
	var wg sync.WaitGroup

	for _, property := range properties {
		wg.Add(1)
		go func(property models.Property) {
			defer wg.Done()
			score := CalculateScore(query, property, cmProvince)
			if score > 0 {
				scoreCh <- ScoredProperty{
					Property: property,
					Score:    score,
				}
			}
		}(property)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredProperty := range scoreCh {
		scored = append(scored, scoredProperty)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
