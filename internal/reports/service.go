// Package reports composes the pipeline behind every dashboard panel:
// build a query, execute it, normalize the result.
package reports

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Vishnupradeep-dot/police-log/internal/catalog"
	"github.com/Vishnupradeep-dot/police-log/internal/stops"
	"github.com/Vishnupradeep-dot/police-log/internal/store"
	"github.com/Vishnupradeep-dot/police-log/internal/table"
)

// ErrNoStops is returned when a summary is requested but the listing came
// back empty.
var ErrNoStops = errors.New("no stop records available")

const (
	kpiTotalSQL  = `SELECT COUNT(*) AS total_stops FROM traffic_stops`
	kpiSearchSQL = `SELECT COUNT(*) AS search_count FROM traffic_stops WHERE search_conducted = TRUE`
	kpiArrestSQL = `SELECT COUNT(*) AS arrest_count FROM traffic_stops WHERE is_arrested = TRUE`

	topViolationsSQL = `SELECT violation, COUNT(*) AS stop_count
FROM traffic_stops
GROUP BY violation
ORDER BY stop_count DESC
LIMIT 10`

	highRiskSQL = `SELECT vehicle_number,
       COUNT(*) AS total_stops,
       SUM(CASE WHEN search_conducted = TRUE THEN 1 ELSE 0 END) AS searches,
       SUM(CASE WHEN is_arrested = TRUE THEN 1 ELSE 0 END) AS arrests
FROM traffic_stops
GROUP BY vehicle_number
HAVING SUM(CASE WHEN search_conducted = TRUE THEN 1 ELSE 0 END) > 2
    OR SUM(CASE WHEN is_arrested = TRUE THEN 1 ELSE 0 END) > 1
ORDER BY arrests DESC, searches DESC
LIMIT 20`
)

type KPISummary struct {
	TotalStops  int64 `json:"total_stops"`
	SearchCount int64 `json:"search_count"`
	ArrestCount int64 `json:"arrest_count"`
}

type Service struct {
	q   store.Querier
	cat *catalog.Catalog
}

func New(q store.Querier, cat *catalog.Catalog) *Service {
	return &Service{q: q, cat: cat}
}

// QueryNames exposes the catalog selection list.
func (s *Service) QueryNames() []string {
	return s.cat.Names()
}

// Run executes a catalog query by name. An unknown name is an error and
// nothing is executed; a store-level failure degrades to an empty table so
// the dashboard stays interactive.
func (s *Service) Run(ctx context.Context, name string) (table.Table, error) {
	entry, err := s.cat.Lookup(name)
	if err != nil {
		return table.Empty(), err
	}
	return s.execute(ctx, entry.SQL)
}

// ListStops compiles the operator's filters and returns the matching
// records, newest first, capped at 100.
func (s *Service) ListStops(ctx context.Context, f stops.Filters) (table.Table, error) {
	sql, args, err := f.Compile()
	if err != nil {
		return table.Empty(), fmt.Errorf("compile filters: %w", err)
	}
	return s.execute(ctx, sql, args...)
}

// KPIs returns the headline counts. A failing count reports as zero.
func (s *Service) KPIs(ctx context.Context) (KPISummary, error) {
	return KPISummary{
		TotalStops:  s.countOf(ctx, kpiTotalSQL),
		SearchCount: s.countOf(ctx, kpiSearchSQL),
		ArrestCount: s.countOf(ctx, kpiArrestSQL),
	}, nil
}

func (s *Service) TopViolations(ctx context.Context) (table.Table, error) {
	return s.execute(ctx, topViolationsSQL)
}

func (s *Service) HighRiskVehicles(ctx context.Context) (table.Table, error) {
	return s.execute(ctx, highRiskSQL)
}

// LatestStopSummary summarizes the most recent stop on record.
func (s *Service) LatestStopSummary(ctx context.Context) (string, error) {
	t, err := s.ListStops(ctx, stops.Filters{})
	if err != nil {
		return "", err
	}
	if t.Len() == 0 {
		return "", ErrNoStops
	}
	return stops.Summarize(t.Rows[0]), nil
}

func (s *Service) execute(ctx context.Context, sql string, args ...any) (table.Table, error) {
	rows, cols, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		slog.Error("query failed", "error", err)
		return table.Empty(), err
	}
	return table.Normalize(rows, cols), nil
}

func (s *Service) countOf(ctx context.Context, sql string) int64 {
	t, err := s.execute(ctx, sql)
	if err != nil || t.Len() == 0 || len(t.Columns) == 0 {
		return 0
	}
	switch v := t.Rows[0][t.Columns[0]].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}
