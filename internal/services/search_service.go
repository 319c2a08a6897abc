package services

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"imovelBack/internal/models"
)

// SearchStore is the storage collaborator behind the public search. The list
// fetch and the count are independent reads over the same predicate; no
// snapshot isolation is provided between them.
type SearchStore interface {
	List(ctx context.Context, q models.PropertyQuery) ([]models.Property, error)
	Count(ctx context.Context, q models.PropertyQuery) (int, error)
	PriceRange(ctx context.Context, propertyType string) (min, max float64, ok bool, err error)
	DistinctTypes(ctx context.Context) ([]string, error)
	DistinctCities(ctx context.Context) ([]string, error)
}

const (
	defaultLimit = 20
	maxLimit     = 100

	fallbackPriceMin = 0
	fallbackPriceMax = 1000000
)

// typeSynonyms maps localized property-type tokens onto canonical values.
// Unknown tokens pass through uppercased unchanged.
var typeSynonyms = map[string]string{
	"CASA":        models.PropertyTypeHouse,
	"APARTAMENTO": models.PropertyTypeApartment,
	"TERRENO":     models.PropertyTypeLand,
	"COMERCIAL":   models.PropertyTypeCommercial,
	"CONDOMINIO":  models.PropertyTypeCondo,
	"CONDOMÍNIO":  models.PropertyTypeCondo,
}

var validSortFields = map[string]bool{
	"price":     true,
	"createdAt": true,
	"views":     true,
	"favorites": true,
	"area":      true,
}

type SearchService struct {
	Store    SearchStore
	InfoLog  *log.Logger
	ErrorLog *log.Logger

	synonyms map[string]string
}

func NewSearchService(store SearchStore, infoLog, errorLog *log.Logger) *SearchService {
	synonyms := make(map[string]string, len(typeSynonyms))
	for k, v := range typeSynonyms {
		synonyms[k] = v
	}
	return &SearchService{
		Store:    store,
		InfoLog:  infoLog,
		ErrorLog: errorLog,
		synonyms: synonyms,
	}
}

// NormalizeType uppercases a property-type token and resolves localized
// synonyms to canonical values.
func (s *SearchService) NormalizeType(token string) string {
	upper := strings.ToUpper(strings.TrimSpace(token))
	if mapped, ok := s.synonyms[upper]; ok {
		return mapped
	}
	return upper
}

// Normalize applies pagination, sorting and vocabulary defaults and returns
// both the echoed filter set and the storage predicate.
func (s *SearchService) Normalize(params models.SearchParams) (models.SearchParams, models.PropertyQuery) {
	if params.Page < 1 {
		params.Page = 1
	}
	// Zero means "not provided"; anything else is clamped into [1, max].
	if params.Limit == 0 {
		params.Limit = defaultLimit
	}
	if params.Limit < 1 {
		params.Limit = 1
	}
	if params.Limit > maxLimit {
		params.Limit = maxLimit
	}

	if !validSortFields[params.SortBy] {
		params.SortBy = "createdAt"
	}
	if params.SortOrder != "asc" && params.SortOrder != "desc" {
		params.SortOrder = "desc"
	}

	if params.Type != "" {
		params.Type = s.NormalizeType(params.Type)
	}

	// Public search only sees available listings unless the caller says
	// otherwise.
	if params.Status == "" {
		params.Status = models.StatusAvailable
	}

	// Zero or negative price bounds mean "not provided".
	if params.PriceMin < 0 {
		params.PriceMin = 0
	}
	if params.PriceMax < 0 {
		params.PriceMax = 0
	}

	q := models.PropertyQuery{
		Status:           params.Status,
		PropertyType:     params.Type,
		PriceMin:         params.PriceMin,
		PriceMax:         params.PriceMax,
		City:             params.City,
		State:            params.State,
		BedroomsMin:      params.BedroomsMin,
		BedroomsMax:      params.BedroomsMax,
		BathroomsMin:     params.BathroomsMin,
		BathroomsMax:     params.BathroomsMax,
		AreaMin:          params.AreaMin,
		AreaMax:          params.AreaMax,
		ParkingSpacesMin: params.ParkingSpacesMin,
		Amenities:        params.Amenities,
		SortBy:           params.SortBy,
		SortOrder:        params.SortOrder,
		Limit:            params.Limit,
		Offset:           (params.Page - 1) * params.Limit,
	}
	return params, q
}

// Search runs the primary listing search: one paginated fetch plus one count
// over the same predicate. Any storage failure surfaces as a SearchFailure;
// there is no retry and no partial result.
func (s *SearchService) Search(ctx context.Context, params models.SearchParams) (models.SearchResult, error) {
	start := time.Now()

	params, q := s.Normalize(params)

	properties, err := s.Store.List(ctx, q)
	if err != nil {
		s.ErrorLog.Printf("property search failed after %dms: %v (filters: %+v)",
			time.Since(start).Milliseconds(), err, params)
		return models.SearchResult{}, &models.SearchFailure{Cause: err}
	}

	total, err := s.Store.Count(ctx, q)
	if err != nil {
		s.ErrorLog.Printf("property count failed after %dms: %v (filters: %+v)",
			time.Since(start).Milliseconds(), err, params)
		return models.SearchResult{}, &models.SearchFailure{Cause: err}
	}

	if properties == nil {
		properties = []models.Property{}
	}

	return models.SearchResult{
		Properties: properties,
		Pagination: models.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(params.Limit))),
		},
		Filters:       params,
		ExecutionTime: time.Since(start).Milliseconds(),
	}, nil
}

// GetAvailablePropertyTypes returns the distinct types among available
// listings. Best-effort: storage errors degrade to an empty list.
func (s *SearchService) GetAvailablePropertyTypes(ctx context.Context) []string {
	types, err := s.Store.DistinctTypes(ctx)
	if err != nil {
		s.ErrorLog.Printf("failed to fetch property types: %v", err)
		return []string{}
	}
	if types == nil {
		return []string{}
	}
	return types
}

// GetPriceRange returns the min/max price among available listings,
// optionally narrowed by type. Best-effort: errors and empty result sets
// degrade to the {0, 1000000} fallback, which callers must read as "no data".
func (s *SearchService) GetPriceRange(ctx context.Context, propertyType string) models.PriceRange {
	fallback := models.PriceRange{Min: fallbackPriceMin, Max: fallbackPriceMax}

	filter := ""
	if propertyType != "" {
		// Only the house/apartment vocabulary narrows the range; other
		// tokens are ignored rather than rejected.
		upper := strings.ToUpper(propertyType)
		switch upper {
		case "CASA", models.PropertyTypeHouse:
			filter = models.PropertyTypeHouse
		case "APARTAMENTO", models.PropertyTypeApartment:
			filter = models.PropertyTypeApartment
		}
	}

	min, max, ok, err := s.Store.PriceRange(ctx, filter)
	if err != nil {
		s.ErrorLog.Printf("failed to fetch price range: %v", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return models.PriceRange{Min: min, Max: max}
}

// GetAvailableCities returns the distinct cities among available listings in
// ascending lexicographic order. Best-effort: errors degrade to an empty
// list.
func (s *SearchService) GetAvailableCities(ctx context.Context) []string {
	cities, err := s.Store.DistinctCities(ctx)
	if err != nil {
		s.ErrorLog.Printf("failed to fetch cities: %v", err)
		return []string{}
	}
	if cities == nil {
		return []string{}
	}
	return cities
}
