package listutil

import (
	"net/url"
	"testing"
)

func TestRequested(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"no params", "", false},
		{"unrelated params", "format=csv", false},
		{"page only", "page=2", true},
		{"per_page only", "per_page=50", true},
		{"both", "page=2&per_page=50", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			if got := Requested(q); got != tt.want {
				t.Errorf("Requested(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"defaults", "", 1, DefaultPerPage},
		{"valid values", "page=3&per_page=50", 3, 50},
		{"zero page clamps to 1", "page=0", 1, DefaultPerPage},
		{"negative page clamps to 1", "page=-5", 1, DefaultPerPage},
		{"garbage page clamps to 1", "page=abc", 1, DefaultPerPage},
		{"disallowed per_page falls back", "per_page=37", 1, DefaultPerPage},
		{"largest allowed per_page", "per_page=200", 1, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			got := ParsePageParams(q)
			if got.Page != tt.wantPage || got.PerPage != tt.wantPerPage {
				t.Errorf("ParsePageParams(%q) = %+v, want page=%d per_page=%d",
					tt.query, got, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name           string
		page, perPage  int
		total          int
		wantPage       int
		wantTotalPages int
		wantOffset     int
		wantEnd        int
	}{
		{"empty collection", 1, 20, 0, 1, 1, 0, 0},
		{"first page of many", 1, 20, 45, 1, 3, 0, 20},
		{"middle page", 2, 20, 45, 2, 3, 20, 40},
		{"short last page", 3, 20, 45, 3, 3, 40, 45},
		{"page past end clamps", 9, 20, 45, 3, 3, 40, 45},
		{"exact multiple", 2, 10, 20, 2, 2, 10, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.page, tt.perPage, tt.total)
			if info.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", info.Page, tt.wantPage)
			}
			if info.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", info.TotalPages, tt.wantTotalPages)
			}
			if info.Offset() != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", info.Offset(), tt.wantOffset)
			}
			if info.End() != tt.wantEnd {
				t.Errorf("End() = %d, want %d", info.End(), tt.wantEnd)
			}
		})
	}
}
