package services

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"imovelBack/internal/models"
)

type stubSearchStore struct {
	listResult  []models.Property
	listErr     error
	countResult int
	countErr    error

	priceMin float64
	priceMax float64
	priceOK  bool
	priceErr error

	types    []string
	typesErr error

	cities    []string
	citiesErr error

	lastQuery     models.PropertyQuery
	lastPriceType string
}

func (s *stubSearchStore) List(ctx context.Context, q models.PropertyQuery) ([]models.Property, error) {
	s.lastQuery = q
	return s.listResult, s.listErr
}

func (s *stubSearchStore) Count(ctx context.Context, q models.PropertyQuery) (int, error) {
	return s.countResult, s.countErr
}

func (s *stubSearchStore) PriceRange(ctx context.Context, propertyType string) (float64, float64, bool, error) {
	s.lastPriceType = propertyType
	return s.priceMin, s.priceMax, s.priceOK, s.priceErr
}

func (s *stubSearchStore) DistinctTypes(ctx context.Context) ([]string, error) {
	return s.types, s.typesErr
}

func (s *stubSearchStore) DistinctCities(ctx context.Context) ([]string, error) {
	return s.cities, s.citiesErr
}

// filteringSearchStore evaluates the predicate in memory against a fixture
// set, so composed filter requests can be checked end to end.
type filteringSearchStore struct {
	properties []models.Property
}

func (s *filteringSearchStore) matches(q models.PropertyQuery, p models.Property) bool {
	if q.Status != "" && p.Status != q.Status {
		return false
	}
	if q.PropertyType != "" && p.PropertyType != q.PropertyType {
		return false
	}
	if q.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(q.City)) {
		return false
	}
	if q.PriceMin > 0 && p.Price < q.PriceMin {
		return false
	}
	if q.PriceMax > 0 && p.Price > q.PriceMax {
		return false
	}
	if q.BedroomsMin > 0 && p.Bedrooms < q.BedroomsMin {
		return false
	}
	return true
}

func (s *filteringSearchStore) List(ctx context.Context, q models.PropertyQuery) ([]models.Property, error) {
	var out []models.Property
	for _, p := range s.properties {
		if s.matches(q, p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *filteringSearchStore) Count(ctx context.Context, q models.PropertyQuery) (int, error) {
	count := 0
	for _, p := range s.properties {
		if s.matches(q, p) {
			count++
		}
	}
	return count, nil
}

func (s *filteringSearchStore) PriceRange(ctx context.Context, propertyType string) (float64, float64, bool, error) {
	return 0, 0, false, nil
}

func (s *filteringSearchStore) DistinctTypes(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (s *filteringSearchStore) DistinctCities(ctx context.Context) ([]string, error) {
	return nil, nil
}

func newTestSearchService(store *stubSearchStore) *SearchService {
	quiet := log.New(os.Stderr, "", 0)
	return NewSearchService(store, quiet, quiet)
}

func TestNormalizePagination(t *testing.T) {
	svc := newTestSearchService(&stubSearchStore{})

	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, 20, 0},
		{"negative page", -5, 10, 1, 10, 0},
		{"limit above cap", 2, 500, 2, 100, 100},
		{"negative limit clamps to one", 3, -1, 3, 1, 2},
		{"large negative limit clamps to one", 2, -50, 2, 1, 1},
		{"exact cap", 1, 100, 1, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, q := svc.Normalize(models.SearchParams{Page: tt.page, Limit: tt.limit})
			if params.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", params.Page, tt.wantPage)
			}
			if params.Limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", params.Limit, tt.wantLimit)
			}
			if q.Offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", q.Offset, tt.wantOffset)
			}
		})
	}
}

func TestNormalizeType(t *testing.T) {
	svc := newTestSearchService(&stubSearchStore{})

	tests := []struct {
		in   string
		want string
	}{
		{"CASA", "HOUSE"},
		{"casa", "HOUSE"},
		{"  Casa  ", "HOUSE"},
		{"APARTAMENTO", "APARTMENT"},
		{"TERRENO", "LAND"},
		{"COMERCIAL", "COMMERCIAL"},
		{"CONDOMINIO", "CONDO"},
		{"CONDOMÍNIO", "CONDO"},
		{"condomínio", "CONDO"},
		{"HOUSE", "HOUSE"},
		{"chalé", "CHALÉ"},
		{"warehouse", "WAREHOUSE"},
	}

	for _, tt := range tests {
		if got := svc.NormalizeType(tt.in); got != tt.want {
			t.Errorf("NormalizeType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSortAndStatus(t *testing.T) {
	svc := newTestSearchService(&stubSearchStore{})

	params, _ := svc.Normalize(models.SearchParams{SortBy: "popularity", SortOrder: "sideways"})
	if params.SortBy != "createdAt" {
		t.Errorf("sortBy = %q, want createdAt", params.SortBy)
	}
	if params.SortOrder != "desc" {
		t.Errorf("sortOrder = %q, want desc", params.SortOrder)
	}
	if params.Status != models.StatusAvailable {
		t.Errorf("status = %q, want AVAILABLE", params.Status)
	}

	params, _ = svc.Normalize(models.SearchParams{SortBy: "price", SortOrder: "asc", Status: models.StatusSold})
	if params.SortBy != "price" || params.SortOrder != "asc" {
		t.Errorf("valid sort was rewritten: %q %q", params.SortBy, params.SortOrder)
	}
	if params.Status != models.StatusSold {
		t.Errorf("explicit status was overridden: %q", params.Status)
	}
}

func TestNormalizeNegativePrices(t *testing.T) {
	svc := newTestSearchService(&stubSearchStore{})

	_, q := svc.Normalize(models.SearchParams{PriceMin: -100, PriceMax: -1})
	if q.PriceMin != 0 || q.PriceMax != 0 {
		t.Errorf("negative prices not zeroed: min=%v max=%v", q.PriceMin, q.PriceMax)
	}
}

func TestSearchPagesMath(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		limit     int
		wantPages int
	}{
		{"exact division", 40, 20, 2},
		{"remainder rounds up", 41, 20, 3},
		{"zero total", 0, 20, 0},
		{"single partial page", 7, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubSearchStore{countResult: tt.total}
			svc := newTestSearchService(store)

			result, err := svc.Search(context.Background(), models.SearchParams{Limit: tt.limit})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Pagination.Pages != tt.wantPages {
				t.Errorf("pages = %d, want %d", result.Pagination.Pages, tt.wantPages)
			}
			if result.Pagination.Total != tt.total {
				t.Errorf("total = %d, want %d", result.Pagination.Total, tt.total)
			}
		})
	}
}

func TestSearchEmptyResultIsNotNil(t *testing.T) {
	svc := newTestSearchService(&stubSearchStore{})

	result, err := svc.Search(context.Background(), models.SearchParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Properties == nil {
		t.Error("properties should be an empty slice, not nil")
	}
	if len(result.Properties) != 0 {
		t.Errorf("expected no properties, got %d", len(result.Properties))
	}
}

func TestSearchFailureOnStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")

	for _, tt := range []struct {
		name  string
		store *stubSearchStore
	}{
		{"list error", &stubSearchStore{listErr: storeErr}},
		{"count error", &stubSearchStore{countErr: storeErr}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestSearchService(tt.store)

			_, err := svc.Search(context.Background(), models.SearchParams{})
			var failure *models.SearchFailure
			if !errors.As(err, &failure) {
				t.Fatalf("expected SearchFailure, got %v", err)
			}
			if !errors.Is(err, storeErr) {
				t.Error("SearchFailure should wrap the store error")
			}
		})
	}
}

func TestSearchCombinedFilters(t *testing.T) {
	store := &filteringSearchStore{properties: []models.Property{
		{ID: "a", City: "São Paulo", Price: 450000, Bedrooms: 3, Status: models.StatusAvailable},
		{ID: "b", City: "São Paulo", Price: 800000, Bedrooms: 4, Status: models.StatusAvailable},
		{ID: "c", City: "Campinas", Price: 300000, Bedrooms: 3, Status: models.StatusAvailable},
		{ID: "d", City: "São Paulo", Price: 400000, Bedrooms: 2, Status: models.StatusAvailable},
		{ID: "e", City: "São Paulo", Price: 420000, Bedrooms: 3, Status: models.StatusSold},
	}}
	quiet := log.New(os.Stderr, "", 0)
	svc := NewSearchService(store, quiet, quiet)

	result, err := svc.Search(context.Background(), models.SearchParams{
		City:        "paulo",
		PriceMax:    500000,
		BedroomsMin: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Properties) != 1 || result.Properties[0].ID != "a" {
		t.Fatalf("properties = %+v, want only listing a", result.Properties)
	}
	if result.Pagination.Total != 1 || result.Pagination.Pages != 1 {
		t.Errorf("pagination = %+v, want total 1 pages 1", result.Pagination)
	}
}

func TestSearchTypeSynonymReachesStore(t *testing.T) {
	store := &stubSearchStore{}
	svc := newTestSearchService(store)

	if _, err := svc.Search(context.Background(), models.SearchParams{Type: "casa"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastQuery.PropertyType != models.PropertyTypeHouse {
		t.Errorf("store saw type %q, want HOUSE", store.lastQuery.PropertyType)
	}
}

func TestGetPriceRange(t *testing.T) {
	tests := []struct {
		name     string
		store    *stubSearchStore
		arg      string
		want     models.PriceRange
		wantType string
	}{
		{
			"data present",
			&stubSearchStore{priceMin: 120000, priceMax: 900000, priceOK: true},
			"", models.PriceRange{Min: 120000, Max: 900000}, "",
		},
		{
			"casa narrows to house",
			&stubSearchStore{priceMin: 1, priceMax: 2, priceOK: true},
			"casa", models.PriceRange{Min: 1, Max: 2}, models.PropertyTypeHouse,
		},
		{
			"apartamento narrows to apartment",
			&stubSearchStore{priceOK: true},
			"APARTAMENTO", models.PriceRange{}, models.PropertyTypeApartment,
		},
		{
			"unknown type ignored",
			&stubSearchStore{priceMin: 5, priceMax: 6, priceOK: true},
			"TERRENO", models.PriceRange{Min: 5, Max: 6}, "",
		},
		{
			"no rows falls back",
			&stubSearchStore{priceOK: false},
			"", models.PriceRange{Min: 0, Max: 1000000}, "",
		},
		{
			"store error falls back",
			&stubSearchStore{priceErr: errors.New("boom")},
			"", models.PriceRange{Min: 0, Max: 1000000}, "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestSearchService(tt.store)
			got := svc.GetPriceRange(context.Background(), tt.arg)
			if got != tt.want {
				t.Errorf("range = %+v, want %+v", got, tt.want)
			}
			if tt.store.lastPriceType != tt.wantType {
				t.Errorf("store saw type %q, want %q", tt.store.lastPriceType, tt.wantType)
			}
		})
	}
}

func TestAggregatesDegradeToEmpty(t *testing.T) {
	svc := newTestSearchService(&stubSearchStore{
		typesErr:  errors.New("boom"),
		citiesErr: errors.New("boom"),
	})

	if got := svc.GetAvailablePropertyTypes(context.Background()); got == nil || len(got) != 0 {
		t.Errorf("types = %v, want empty slice", got)
	}
	if got := svc.GetAvailableCities(context.Background()); got == nil || len(got) != 0 {
		t.Errorf("cities = %v, want empty slice", got)
	}
}

func TestAggregatesPassThrough(t *testing.T) {
	svc := newTestSearchService(&stubSearchStore{
		types:  []string{"APARTMENT", "HOUSE"},
		cities: []string{"Campinas", "São Paulo"},
	})

	types := svc.GetAvailablePropertyTypes(context.Background())
	if len(types) != 2 || types[0] != "APARTMENT" {
		t.Errorf("types = %v", types)
	}
	cities := svc.GetAvailableCities(context.Background())
	if len(cities) != 2 || cities[0] != "Campinas" || cities[1] != "São Paulo" {
		t.Errorf("cities = %v", cities)
	}
}
