// Package tz resolves geographic coordinates to IANA timezone names.
package tz

import "github.com/ringsaturn/tzf"

// Finder looks up the timezone an activity was recorded in. It is an
// injected collaborator so callers and tests can substitute their own.
type Finder interface {
	// TimezoneAt returns the IANA name for a position, or "" when the
	// position resolves to nothing useful (open ocean, bad fix).
	TimezoneAt(lat, lon float64) string
}

// Lookup is a Finder backed by an embedded timezone boundary index.
type Lookup struct {
	finder tzf.F
}

// NewLookup builds the boundary index. It is cheap enough to do once at
// startup and reuse.
func NewLookup() (*Lookup, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, err
	}
	return &Lookup{finder: finder}, nil
}

// TimezoneAt implements Finder.
func (l *Lookup) TimezoneAt(lat, lon float64) string {
	return l.finder.GetTimezoneName(lon, lat)
}

// Fixed is a Finder that always answers with the same name. The empty
// value never resolves, which is handy as a fallback and in tests.
type Fixed string

// TimezoneAt implements Finder.
func (f Fixed) TimezoneAt(lat, lon float64) string {
	return string(f)
}
