// Package catalog holds the fixed set of named analytical queries an
// operator can run. Names are the only thing accepted from outside; the SQL
// text itself is never operator-supplied.
package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownQuery is returned when a requested name has no definition.
// An unknown name must never fall through to executing anything.
var ErrUnknownQuery = errors.New("unknown catalog query")

type Entry struct {
	Name string
	SQL  string
}

// Catalog is an immutable name -> query mapping built once at startup.
type Catalog struct {
	byName map[string]Entry
	names  []string
}

// New validates the entry list and builds the catalog. A duplicated name is
// a construction-time error: silently shadowing one definition with another
// is exactly the bug this replaces.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New("catalog: entry with empty name")
		}
		if e.SQL == "" {
			return nil, fmt.Errorf("catalog: entry %q has no query text", e.Name)
		}
		if _, dup := c.byName[e.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate entry %q", e.Name)
		}
		c.byName[e.Name] = e
		c.names = append(c.names, e.Name)
	}
	return c, nil
}

// Names returns the entry names in definition order, for presentation to
// pick from.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Catalog) Lookup(name string) (Entry, error) {
	e, ok := c.byName[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownQuery, name)
	}
	return e, nil
}
