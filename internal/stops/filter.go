// Package stops owns the record-listing side of the system: compiling
// operator filters into a parameterized query, the bucketing helpers the
// derived metrics rely on, and the one-line summary of a retrieved record.
package stops

import (
	sq "github.com/Masterminds/squirrel"
)

// ListLimit caps every record listing.
const ListLimit = 100

// listColumns is the fixed projection for vehicle log listings.
var listColumns = []string{
	"stop_date", "stop_time", "country_name", "driver_gender", "driver_age",
	"driver_race", "violation", "search_conducted", "is_arrested",
	"vehicle_number",
}

// Filters carries the optional equality predicates an operator may supply.
// All three values are untrusted free text; they only ever reach the
// database as bound parameters.
type Filters struct {
	Country   string
	Violation string
	Vehicle   string
}

func (f Filters) IsEmpty() bool {
	return f.Country == "" && f.Violation == "" && f.Vehicle == ""
}

// Compile builds the listing query. Empty filters contribute no clause, so
// a blank Filters lists the whole table up to the cap. Clause order is fixed
// country, violation, vehicle; predicates are AND-joined; ordering is stop
// date descending.
func (f Filters) Compile() (string, []any, error) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(listColumns...).
		From("traffic_stops")

	if f.Country != "" {
		b = b.Where(sq.Eq{"country_name": f.Country})
	}
	if f.Violation != "" {
		b = b.Where(sq.Eq{"violation": f.Violation})
	}
	if f.Vehicle != "" {
		b = b.Where(sq.Eq{"vehicle_number": f.Vehicle})
	}

	return b.OrderBy("stop_date DESC").Limit(ListLimit).ToSql()
}
