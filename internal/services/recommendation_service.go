package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"imovelBack/internal/models"
	"imovelBack/internal/repositories"
)

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 50
	viewHistoryWindow          = 50
	preferredTypeCount         = 3
	similarFetchLimit          = 20
	similarReturnLimit         = 5
)

type RecommendationService struct {
	PropertyRepo *repositories.PropertyRepository
	InfoLog      *log.Logger
	ErrorLog     *log.Logger
}

// Recommend ranks available listings against the explicit criteria, filling
// gaps from the caller's viewing history: a 30% price band around the average
// viewed price, the three most viewed types, and already seen listings
// excluded.
func (s *RecommendationService) Recommend(ctx context.Context, req models.RecommendationRequest) (models.RecommendationResult, error) {
	if req.Limit < 1 {
		req.Limit = defaultRecommendationLimit
	}
	if req.Limit > maxRecommendationLimit {
		req.Limit = maxRecommendationLimit
	}

	q := models.PropertyQuery{
		Status:       models.StatusAvailable,
		AmenitiesAny: req.Amenities,
		Locations:    req.Locations,
		SortBy:       "popularity",
		Limit:        req.Limit,
	}
	if req.PriceRange != nil {
		q.PriceMin = req.PriceRange.Min
		q.PriceMax = req.PriceRange.Max
	}
	if len(req.PropertyTypes) > 0 {
		q.PropertyTypes = req.PropertyTypes
	}
	if req.Bedrooms != nil {
		q.BedroomsMin = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		q.BathroomsMin = *req.Bathrooms
	}

	if req.UserID != "" {
		s.applyViewHistory(ctx, req, &q)
	}

	properties, err := s.PropertyRepo.List(ctx, q)
	if err != nil {
		return models.RecommendationResult{}, err
	}

	scored := make([]models.ScoredProperty, 0, len(properties))
	for _, p := range properties {
		scored = append(scored, models.ScoredProperty{
			Property:            p,
			RecommendationScore: scoreProperty(p, req),
			MatchReasons:        matchReasons(p, req),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RecommendationScore > scored[j].RecommendationScore
	})

	s.InfoLog.Printf("generated %d recommendations for user %q", len(scored), req.UserID)

	return models.RecommendationResult{
		Recommendations: scored,
		TotalFound:      len(scored),
		Criteria:        req,
	}, nil
}

// applyViewHistory derives implicit preferences from the user's recent views.
// History errors are tolerated; the explicit criteria still apply.
func (s *RecommendationService) applyViewHistory(ctx context.Context, req models.RecommendationRequest, q *models.PropertyQuery) {
	viewed, err := s.PropertyRepo.ViewedProperties(ctx, req.UserID, viewHistoryWindow)
	if err != nil {
		s.ErrorLog.Printf("failed to load view history for user %s: %v", req.UserID, err)
		return
	}
	if len(viewed) == 0 {
		return
	}

	if req.PriceRange == nil {
		var sum float64
		for _, p := range viewed {
			sum += p.Price
		}
		avg := sum / float64(len(viewed))
		band := avg * 0.3
		q.PriceMin = math.Max(0, avg-band)
		q.PriceMax = avg + band
	}

	if len(req.PropertyTypes) == 0 {
		freq := make(map[string]int)
		for _, p := range viewed {
			freq[p.PropertyType]++
		}
		types := make([]string, 0, len(freq))
		for t := range freq {
			types = append(types, t)
		}
		sort.Slice(types, func(i, j int) bool {
			if freq[types[i]] != freq[types[j]] {
				return freq[types[i]] > freq[types[j]]
			}
			return types[i] < types[j]
		})
		if len(types) > preferredTypeCount {
			types = types[:preferredTypeCount]
		}
		q.PropertyTypes = types
	}

	for _, p := range viewed {
		q.ExcludeIDs = append(q.ExcludeIDs, p.ID)
	}
}

func scoreProperty(p models.Property, req models.RecommendationRequest) float64 {
	score := float64(p.Views)*0.1 + float64(p.Favorites)*0.5

	daysSinceCreated := time.Since(p.CreatedAt).Hours() / 24
	score += math.Max(0, 30-daysSinceCreated) * 0.2

	if req.PriceRange != nil && req.PriceRange.Max > 0 {
		score += (1 - p.Price/req.PriceRange.Max) * 10
	}
	return math.Round(score*100) / 100
}

func matchReasons(p models.Property, req models.RecommendationRequest) []string {
	reasons := []string{}

	if req.PriceRange != nil && p.Price >= req.PriceRange.Min &&
		(req.PriceRange.Max == 0 || p.Price <= req.PriceRange.Max) {
		reasons = append(reasons, "Within your price range")
	}
	for _, t := range req.PropertyTypes {
		if t == p.PropertyType {
			reasons = append(reasons, fmt.Sprintf("Matches your preferred %s type", strings.ToLower(p.PropertyType)))
			break
		}
	}
	if req.Bedrooms != nil && *req.Bedrooms > 0 && p.Bedrooms >= *req.Bedrooms {
		reasons = append(reasons, fmt.Sprintf("Has %d bedrooms as requested", p.Bedrooms))
	}
	if req.Bathrooms != nil && *req.Bathrooms > 0 && p.Bathrooms >= *req.Bathrooms {
		reasons = append(reasons, fmt.Sprintf("Has %d bathrooms as requested", p.Bathrooms))
	}
	var matched []string
	for _, a := range req.Amenities {
		for _, have := range p.Amenities {
			if a == have {
				matched = append(matched, a)
				break
			}
		}
	}
	if len(matched) > 0 {
		reasons = append(reasons, "Includes desired amenities: "+strings.Join(matched, ", "))
	}
	if p.Views > 100 {
		reasons = append(reasons, "Popular property with high interest")
	}
	if p.Favorites > 10 {
		reasons = append(reasons, "Highly favorited by other users")
	}
	return reasons
}

// AnalyzeMarket compares one listing against available listings of the same
// type and city with similar size.
func (s *RecommendationService) AnalyzeMarket(ctx context.Context, propertyID string) (models.MarketAnalysisResult, error) {
	property, err := s.PropertyRepo.GetPropertyByID(ctx, propertyID)
	if err != nil {
		return models.MarketAnalysisResult{}, err
	}

	similar, err := s.PropertyRepo.SimilarProperties(ctx, property, similarFetchLimit)
	if err != nil {
		return models.MarketAnalysisResult{}, err
	}

	if len(similar) == 0 {
		return models.MarketAnalysisResult{
			Analysis: models.MarketAnalysis{
				MarketPosition:  models.MarketPositionUnique,
				AveragePrice:    property.Price,
				PriceComparison: models.PriceComparisonNone,
				MarketTrend:     "STABLE",
			},
			SimilarProperties: []models.Property{},
		}, nil
	}

	var sum, minPrice, maxPrice float64
	minPrice = similar[0].Price
	maxPrice = similar[0].Price
	for _, p := range similar {
		sum += p.Price
		if p.Price < minPrice {
			minPrice = p.Price
		}
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
	}
	averagePrice := sum / float64(len(similar))

	priceComparison := models.PriceComparisonAverage
	if property.Price < averagePrice*0.9 {
		priceComparison = models.PriceComparisonBelow
	} else if property.Price > averagePrice*1.1 {
		priceComparison = models.PriceComparisonAbove
	}

	priceDiff := (property.Price - averagePrice) / averagePrice
	var marketPosition string
	switch {
	case math.Abs(priceDiff) < 0.1:
		marketPosition = models.MarketPositionCompetitive
	case priceDiff < -0.2:
		marketPosition = models.MarketPositionBargain
	case priceDiff > 0.2:
		marketPosition = models.MarketPositionPremium
	default:
		marketPosition = models.MarketPositionFair
	}

	competitorCount := len(similar)
	if len(similar) > similarReturnLimit {
		similar = similar[:similarReturnLimit]
	}
	// Echoed comparables carry only their cover image.
	for i := range similar {
		if len(similar[i].Images) > 1 {
			similar[i].Images = similar[i].Images[:1]
		}
	}

	return models.MarketAnalysisResult{
		Analysis: models.MarketAnalysis{
			MarketPosition:  marketPosition,
			AveragePrice:    math.Round(averagePrice),
			PriceComparison: priceComparison,
			PriceRange:      &models.PriceRange{Min: minPrice, Max: maxPrice},
			MarketTrend:     "STABLE",
			CompetitorCount: competitorCount,
		},
		SimilarProperties: similar,
	}, nil
}
