package handlers

import (
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/search?page=3&limit=abc", nil)

	if got, err := queryInt(r, "page"); err != nil || got != 3 {
		t.Errorf("page = %d, %v; want 3, nil", got, err)
	}
	if _, err := queryInt(r, "limit"); err == nil {
		t.Error("expected error for non-numeric limit")
	}
	if got, err := queryInt(r, "missing"); err != nil || got != 0 {
		t.Errorf("missing = %d, %v; want 0, nil", got, err)
	}
}

func TestQueryList(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/search?amenities=pool,%20gym,,garage", nil)

	got := queryList(r, "amenities")
	want := []string{"pool", "gym", "garage"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("queryList = %v, want %v", got, want)
	}

	if got := queryList(r, "missing"); got != nil {
		t.Errorf("missing param should yield nil, got %v", got)
	}
}

func TestParseSearchParamsRejectsBadNumbers(t *testing.T) {
	for _, raw := range []string{
		"/api/search?priceMin=abc",
		"/api/search?bedroomsMin=two",
		"/api/search?page=x",
	} {
		r := httptest.NewRequest("GET", raw, nil)
		if _, err := parseSearchParams(r); err == nil {
			t.Errorf("expected error for %s", raw)
		}
	}
}

func TestParseSearchParamsReadsFilters(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/search?type=casa&priceMin=100000&priceMax=500000&city=Campinas&amenities=pool,gym&page=2&limit=50", nil)

	params, err := parseSearchParams(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Type != "casa" || params.City != "Campinas" {
		t.Errorf("string filters: %+v", params)
	}
	if params.PriceMin != 100000 || params.PriceMax != 500000 {
		t.Errorf("price filters: %+v", params)
	}
	if len(params.Amenities) != 2 {
		t.Errorf("amenities = %v", params.Amenities)
	}
	if params.Page != 2 || params.Limit != 50 {
		t.Errorf("pagination: %+v", params)
	}
}
