// Package movies holds the read models served by the movie lookup API.
package movies

// NoCastMessage is rendered in place of an empty cast list in legacy mode.
const NoCastMessage = "No cast information found"

// MovieRecord is a movie item as stored, keyed by its integer "id" attribute.
type MovieRecord map[string]interface{}

// CastRecord is a cast item; its "movieId" attribute references a MovieRecord.
type CastRecord map[string]interface{}

// CastResult is the outcome of a cast lookup. Available is false when the
// store returned no rows for the movie.
type CastResult struct {
	Members   []CastRecord
	Available bool
}

// NewCastResult wraps the rows returned by the store.
func NewCastResult(members []CastRecord) CastResult {
	if members == nil {
		members = []CastRecord{}
	}
	return CastResult{
		Members:   members,
		Available: len(members) > 0,
	}
}

// Clone returns a shallow copy so callers can add fields without touching
// the stored item.
func (m MovieRecord) Clone() MovieRecord {
	out := make(MovieRecord, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
