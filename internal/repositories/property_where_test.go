package repositories

import (
	"strings"
	"testing"

	"imovelBack/internal/models"
)

func TestBuildPropertyWhereEmpty(t *testing.T) {
	where, args := BuildPropertyWhere(models.PropertyQuery{})
	if where != "" {
		t.Errorf("where = %q, want empty", where)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildPropertyWhereConditions(t *testing.T) {
	tests := []struct {
		name     string
		query    models.PropertyQuery
		wantSQL  []string
		wantArgs []interface{}
	}{
		{
			"status and type",
			models.PropertyQuery{Status: "AVAILABLE", PropertyType: "HOUSE"},
			[]string{"p.status = $1", "p.property_type = $2"},
			[]interface{}{"AVAILABLE", "HOUSE"},
		},
		{
			"price bounds only when positive",
			models.PropertyQuery{PriceMin: 100000, PriceMax: 0},
			[]string{"p.price >= $1"},
			[]interface{}{100000.0},
		},
		{
			"city substring match",
			models.PropertyQuery{City: "Camp"},
			[]string{"p.city ILIKE $1"},
			[]interface{}{"%Camp%"},
		},
		{
			"amenity superset",
			models.PropertyQuery{Amenities: []string{"pool", "gym"}},
			[]string{"p.amenities @> $1::jsonb"},
			[]interface{}{`["pool","gym"]`},
		},
		{
			"amenity overlap",
			models.PropertyQuery{AmenitiesAny: []string{"pool", "gym"}},
			[]string{"p.amenities ?| ARRAY[$1,$2]"},
			[]interface{}{"pool", "gym"},
		},
		{
			"type list",
			models.PropertyQuery{PropertyTypes: []string{"HOUSE", "CONDO"}},
			[]string{"p.property_type IN ($1,$2)"},
			[]interface{}{"HOUSE", "CONDO"},
		},
		{
			"excluded ids",
			models.PropertyQuery{ExcludeIDs: []string{"a", "b"}},
			[]string{"p.id NOT IN ($1,$2)"},
			[]interface{}{"a", "b"},
		},
		{
			"owner scope",
			models.PropertyQuery{OwnerID: "owner-1"},
			[]string{"p.owner_id = $1"},
			[]interface{}{"owner-1"},
		},
		{
			"location group",
			models.PropertyQuery{Locations: []string{"Recife"}},
			[]string{"(p.city ILIKE $1 OR p.state ILIKE $1)"},
			[]interface{}{"%Recife%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := BuildPropertyWhere(tt.query)
			if !strings.HasPrefix(where, " WHERE ") {
				t.Fatalf("where = %q, expected WHERE prefix", where)
			}
			for _, fragment := range tt.wantSQL {
				if !strings.Contains(where, fragment) {
					t.Errorf("where %q missing fragment %q", where, fragment)
				}
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("got %d args, want %d: %v", len(args), len(tt.wantArgs), args)
			}
			for i, want := range tt.wantArgs {
				if args[i] != want {
					t.Errorf("args[%d] = %v, want %v", i, args[i], want)
				}
			}
		})
	}
}

func TestBuildPropertyWhereNumericRanges(t *testing.T) {
	where, args := BuildPropertyWhere(models.PropertyQuery{
		BedroomsMin:      2,
		BedroomsMax:      4,
		BathroomsMin:     1,
		AreaMin:          50,
		AreaMax:          120,
		ParkingSpacesMin: 1,
	})

	for _, fragment := range []string{
		"p.bedrooms >=", "p.bedrooms <=", "p.bathrooms >=",
		"p.area >=", "p.area <=", "p.parking_spaces >=",
	} {
		if !strings.Contains(where, fragment) {
			t.Errorf("where %q missing %q", where, fragment)
		}
	}
	if len(args) != 6 {
		t.Errorf("got %d args, want 6", len(args))
	}
	if !strings.Contains(where, " AND ") {
		t.Error("multiple conditions should be joined with AND")
	}
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		sortBy    string
		sortOrder string
		want      string
	}{
		{"price", "asc", " ORDER BY p.price ASC"},
		{"createdAt", "desc", " ORDER BY p.created_at DESC"},
		{"views", "", " ORDER BY p.views DESC"},
		{"bogus", "asc", " ORDER BY p.created_at ASC"},
		{"popularity", "", " ORDER BY p.views DESC, p.favorites DESC, p.created_at DESC"},
	}

	for _, tt := range tests {
		if got := orderClause(tt.sortBy, tt.sortOrder); got != tt.want {
			t.Errorf("orderClause(%q, %q) = %q, want %q", tt.sortBy, tt.sortOrder, got, tt.want)
		}
	}
}
