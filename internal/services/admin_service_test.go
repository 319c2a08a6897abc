package services

import "testing"

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int
		wantPages int
	}{
		{"exact fit", 1, 20, 40, 2},
		{"round up", 1, 20, 41, 3},
		{"empty", 1, 20, 0, 0},
		{"partial", 2, 10, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(tt.page, tt.limit, tt.total)
			if got.Pages != tt.wantPages {
				t.Errorf("pages = %d, want %d", got.Pages, tt.wantPages)
			}
			if got.Page != tt.page || got.Limit != tt.limit || got.Total != tt.total {
				t.Errorf("pagination echo mismatch: %+v", got)
			}
		})
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 20},
		{-3, 500, 1, 100},
		{5, 50, 5, 50},
	}

	for _, tt := range tests {
		page, limit := clampPage(tt.page, tt.limit)
		if page != tt.wantPage || limit != tt.wantLimit {
			t.Errorf("clampPage(%d, %d) = (%d, %d), want (%d, %d)",
				tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
		}
	}
}
