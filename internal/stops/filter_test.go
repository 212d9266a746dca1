package stops

import (
	"strings"
	"testing"
)

func TestCompileNoFilters(t *testing.T) {
	sql, args, err := Filters{}.Compile()
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	if strings.Contains(sql, "WHERE") {
		t.Errorf("zero filters must compile without a WHERE clause: %s", sql)
	}
	if !strings.Contains(sql, "ORDER BY stop_date DESC") {
		t.Errorf("missing fixed ordering: %s", sql)
	}
	if !strings.Contains(sql, "LIMIT 100") {
		t.Errorf("missing row cap: %s", sql)
	}
	if len(args) != 0 {
		t.Errorf("expected no bound args, got %v", args)
	}
}

func TestCompileSingleFilter(t *testing.T) {
	sql, args, err := Filters{Country: "India"}.Compile()
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	if !strings.Contains(sql, "country_name = $1") {
		t.Errorf("expected bound country clause: %s", sql)
	}
	if strings.Contains(sql, "India") {
		t.Errorf("filter value leaked into query text: %s", sql)
	}
	if len(args) != 1 || args[0] != "India" {
		t.Errorf("expected [India], got %v", args)
	}
}

func TestCompileAllFiltersFixedOrder(t *testing.T) {
	sql, args, err := Filters{Country: "Canada", Violation: "Speeding", Vehicle: "KA-01-1234"}.Compile()
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	country := strings.Index(sql, "country_name = $1")
	violation := strings.Index(sql, "violation = $2")
	vehicle := strings.Index(sql, "vehicle_number = $3")
	if country < 0 || violation < 0 || vehicle < 0 {
		t.Fatalf("missing bound clauses: %s", sql)
	}
	if !(country < violation && violation < vehicle) {
		t.Errorf("clause order must be country, violation, vehicle: %s", sql)
	}
	if strings.Count(sql, " AND ") != 2 {
		t.Errorf("expected two AND joins, got: %s", sql)
	}
	if len(args) != 3 || args[0] != "Canada" || args[1] != "Speeding" || args[2] != "KA-01-1234" {
		t.Errorf("unexpected bound args: %v", args)
	}
}

func TestCompileSkipsEmptyFilters(t *testing.T) {
	sql, args, err := Filters{Violation: "DUI"}.Compile()
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	if strings.Contains(sql, "country_name =") {
		t.Errorf("empty country must contribute no clause: %s", sql)
	}
	if !strings.Contains(sql, "violation = $1") {
		t.Errorf("violation should bind to $1 when it is the only filter: %s", sql)
	}
	if len(args) != 1 || args[0] != "DUI" {
		t.Errorf("expected [DUI], got %v", args)
	}
}

func TestCompileInjectionAttemptStaysBound(t *testing.T) {
	hostile := "x'; DROP TABLE traffic_stops; --"
	sql, args, err := Filters{Vehicle: hostile}.Compile()
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	if strings.Contains(sql, "DROP TABLE") {
		t.Errorf("operator text leaked into query: %s", sql)
	}
	if len(args) != 1 || args[0] != hostile {
		t.Errorf("hostile value must travel as a parameter, got %v", args)
	}
}

func TestCompileDeterministic(t *testing.T) {
	f := Filters{Country: "India", Violation: "Speeding"}
	first, _, _ := f.Compile()
	second, _, _ := f.Compile()
	if first != second {
		t.Errorf("same filters must compile identically:\n%s\n%s", first, second)
	}
}
