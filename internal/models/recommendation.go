package models

type RecommendationRequest struct {
	UserID        string      `json:"userId,omitempty"`
	PriceRange    *PriceBand  `json:"priceRange,omitempty"`
	PropertyTypes []string    `json:"propertyTypes,omitempty"`
	Locations     []string    `json:"locations,omitempty"`
	Bedrooms      *int        `json:"bedrooms,omitempty"`
	Bathrooms     *int        `json:"bathrooms,omitempty"`
	Amenities     []string    `json:"amenities,omitempty"`
	Limit         int         `json:"limit,omitempty"`
}

type PriceBand struct {
	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`
}

type ScoredProperty struct {
	Property
	RecommendationScore float64  `json:"recommendationScore"`
	MatchReasons        []string `json:"matchReasons"`
}

type RecommendationResult struct {
	Recommendations []ScoredProperty      `json:"recommendations"`
	TotalFound      int                   `json:"totalFound"`
	Criteria        RecommendationRequest `json:"criteria"`
}

const (
	MarketPositionUnique      = "UNIQUE"
	MarketPositionCompetitive = "COMPETITIVE"
	MarketPositionBargain     = "BARGAIN"
	MarketPositionPremium     = "PREMIUM"
	MarketPositionFair        = "FAIR"

	PriceComparisonBelow   = "BELOW_MARKET"
	PriceComparisonAbove   = "ABOVE_MARKET"
	PriceComparisonAverage = "MARKET_AVERAGE"
	PriceComparisonNone    = "NO_COMPARISON"
)

type MarketAnalysis struct {
	MarketPosition  string      `json:"marketPosition"`
	AveragePrice    float64     `json:"averagePrice"`
	PriceComparison string      `json:"priceComparison"`
	PriceRange      *PriceRange `json:"priceRange,omitempty"`
	MarketTrend     string      `json:"marketTrend"`
	CompetitorCount int         `json:"competitorCount"`
}

type MarketAnalysisResult struct {
	Analysis          MarketAnalysis `json:"analysis"`
	SimilarProperties []Property     `json:"similarProperties"`
}
