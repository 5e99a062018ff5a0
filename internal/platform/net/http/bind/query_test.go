package bind

import (
	"net/http/httptest"
	"testing"
)

type pageQuery struct {
	SortBy string   `query:"sortBy" validate:"omitempty,oneof=revenue employees name"`
	Order  string   `query:"order" validate:"omitempty,oneof=asc desc"`
	Limit  int      `query:"limit"`
	Cursor string   `query:"cursor"`
	Types  []string `query:"eventTypes"`
	Flag   bool     `query:"flag"`
}

func TestParseQuery_Basics(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/businesses?sortBy=revenue&order=desc&limit=50&cursor=abc&eventTypes=a,b&eventTypes=c&flag=true", nil)
	q, err := ParseQuery[pageQuery](r)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if q.SortBy != "revenue" || q.Order != "desc" || q.Limit != 50 || q.Cursor != "abc" || !q.Flag {
		t.Fatalf("parsed = %+v", q)
	}
	if len(q.Types) != 3 || q.Types[0] != "a" || q.Types[2] != "c" {
		t.Fatalf("Types = %v", q.Types)
	}
}

func TestParseQuery_UnparseableScalarKeepsZero(t *testing.T) {
	r := httptest.NewRequest("GET", "/businesses?limit=plenty&flag=maybe", nil)
	q, err := ParseQuery[pageQuery](r)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if q.Limit != 0 || q.Flag {
		t.Fatalf("parsed = %+v", q)
	}
}

func TestParseQuery_ValidationFailureSurfaces(t *testing.T) {
	r := httptest.NewRequest("GET", "/businesses?sortBy=profit", nil)
	if _, err := ParseQuery[pageQuery](r); err == nil {
		t.Fatal("expected validation error for unknown sort key")
	}
}

func TestParseQuery_AbsentKeysLeaveDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/businesses", nil)
	q, err := ParseQuery[pageQuery](r)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if q.SortBy != "" || q.Limit != 0 || q.Types != nil {
		t.Fatalf("parsed = %+v", q)
	}
}
