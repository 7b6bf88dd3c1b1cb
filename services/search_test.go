package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vista/models"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "da nang", NormalizeInput("  Đà Nẵng "))
	assert.Equal(t, "khach san vung tau", NormalizeInput("Khách Sạn Vũng Tàu"))
	assert.Equal(t, "", NormalizeInput("   "))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, CalculateSimilarity("", ""))
	assert.Equal(t, 1.0, CalculateSimilarity("hanoi", "hanoi"))
	assert.Greater(t, CalculateSimilarity("ha noi", "hanoi"), 0.7)
	assert.Less(t, CalculateSimilarity("hue", "can tho"), 0.5)
}

func TestExtractRatingFromQuery(t *testing.T) {
	assert.Equal(t, 5, ExtractRatingFromQuery("khach san 5 sao da lat"))
	assert.Equal(t, 3, ExtractRatingFromQuery("resort 3sao"))
	assert.Equal(t, -1, ExtractRatingFromQuery("homestay gan bien"))
}

func TestPrepareProvinceList(t *testing.T) {
	properties := []models.Property{
		{Province: "Đà Nẵng"},
		{Province: "đà nẵng"},
		{Province: "Lâm Đồng"},
		{Province: ""},
	}

	list := PrepareProvinceList(properties)
	assert.Len(t, list, 2)
	assert.Contains(t, list, "da nang")
	assert.Contains(t, list, "lam dong")
}

func TestFilterAndScoreProperties(t *testing.T) {
	properties := []models.Property{
		{Name: "Vista Beach Hotel", Province: "Đà Nẵng", StarRating: 5, Amenities: []string{"hồ bơi", "wifi"}},
		{Name: "Mountain View Homestay", Province: "Lâm Đồng", StarRating: 3, Amenities: []string{"bếp riêng"}},
	}
	cmProvince := CreateMatcher(PrepareProvinceList(properties))

	scored := FilterAndScoreProperties("khách sạn 5 sao đà nẵng có hồ bơi", properties, cmProvince)

	if assert.NotEmpty(t, scored) {
		assert.Equal(t, "Vista Beach Hotel", scored[0].Property.Name)
		assert.Greater(t, scored[0].Score, 0)
	}

	// Điểm giảm dần
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
}
