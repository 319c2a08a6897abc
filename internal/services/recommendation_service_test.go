package services

import (
	"strings"
	"testing"
	"time"

	"imovelBack/internal/models"
)

func TestScoreProperty(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		p    models.Property
		req  models.RecommendationRequest
		want float64
	}{
		{
			"popularity only",
			models.Property{Views: 100, Favorites: 10, CreatedAt: now.Add(-40 * 24 * time.Hour)},
			models.RecommendationRequest{},
			15.0,
		},
		{
			"fresh listing gets recency bonus",
			models.Property{CreatedAt: now.Add(-10 * 24 * time.Hour)},
			models.RecommendationRequest{},
			4.0,
		},
		{
			"cheap listing inside price band",
			models.Property{Price: 100000, CreatedAt: now.Add(-40 * 24 * time.Hour)},
			models.RecommendationRequest{PriceRange: &models.PriceBand{Max: 400000}},
			7.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreProperty(tt.p, tt.req)
			// Allow a little slack for the age term computed off wall time.
			if got < tt.want-0.1 || got > tt.want+0.1 {
				t.Errorf("score = %v, want about %v", got, tt.want)
			}
		})
	}
}

func TestMatchReasons(t *testing.T) {
	bedrooms := 3
	p := models.Property{
		PropertyType: models.PropertyTypeHouse,
		Price:        300000,
		Bedrooms:     3,
		Bathrooms:    2,
		Amenities:    []string{"pool", "garage"},
		Views:        150,
		Favorites:    12,
	}
	req := models.RecommendationRequest{
		PriceRange:    &models.PriceBand{Min: 200000, Max: 400000},
		PropertyTypes: []string{models.PropertyTypeHouse},
		Bedrooms:      &bedrooms,
		Amenities:     []string{"pool", "elevator"},
	}

	reasons := matchReasons(p, req)
	joined := strings.Join(reasons, "; ")

	for _, want := range []string{
		"Within your price range",
		"preferred house type",
		"3 bedrooms",
		"pool",
		"Popular property",
		"Highly favorited",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("reasons %q missing %q", joined, want)
		}
	}
	if strings.Contains(joined, "elevator") {
		t.Error("unmatched amenity should not be listed")
	}
}

func TestMatchReasonsEmptyForNoCriteria(t *testing.T) {
	reasons := matchReasons(models.Property{}, models.RecommendationRequest{})
	if len(reasons) != 0 {
		t.Errorf("expected no reasons, got %v", reasons)
	}
}
