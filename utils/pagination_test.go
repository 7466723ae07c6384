package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(25, 2, 10)
	if p.Pages != 3 || p.Total != 25 || p.Page != 2 || p.Limit != 10 {
		t.Fatalf("unexpected pagination: %+v", p)
	}

	if p := NewPagination(30, 1, 10); p.Pages != 3 {
		t.Fatalf("exact multiple: got %d pages, want 3", p.Pages)
	}
	if p := NewPagination(0, 1, 10); p.Pages != 0 {
		t.Fatalf("empty: got %d pages, want 0", p.Pages)
	}
}

func testContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParsePageQuery(t *testing.T) {
	cases := []struct {
		query string
		page  int
		limit int
	}{
		{"", 1, 10},
		{"page=3&limit=25", 3, 25},
		{"page=0&limit=0", 1, 10},
		{"page=-2&limit=1000", 1, 100},
		{"page=abc&limit=xyz", 1, 10},
	}
	for _, tc := range cases {
		page, limit := ParsePageQuery(testContext(tc.query))
		if page != tc.page || limit != tc.limit {
			t.Errorf("%q: got (%d,%d), want (%d,%d)", tc.query, page, limit, tc.page, tc.limit)
		}
	}
}
