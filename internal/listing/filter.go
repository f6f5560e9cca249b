package listing

import "strings"

// All is the sentinel selector value meaning "no restriction".
const All = "All"

// Quick-filter pill identifiers. Unrecognized pill ids are vacuously
// true so a stale saved search never hides every listing.
const (
	PillLuxury    = "Luxury"
	PillBudget    = "Budget"
	PillGirls     = "Girls"
	PillBoys      = "Boys"
	PillNearAllen = "Near Allen"
	PillNearPW    = "Near PW"
	PillAC        = "AC"
	PillFood      = "Food"
)

// Criteria is one filter state: three selectors plus the set of active
// quick-filter pills. The zero value of a selector is not valid; use
// DefaultCriteria for the no-restriction state.
type Criteria struct {
	Coaching    string   `json:"coaching"`
	Gender      string   `json:"gender"`
	Area        string   `json:"area"`
	ActivePills []string `json:"activePills"`
}

// DefaultCriteria returns the no-restriction filter state.
func DefaultCriteria() Criteria {
	return Criteria{Coaching: All, Gender: All, Area: All, ActivePills: []string{}}
}

// IsFiltering reports whether the criteria restrict the feed at all.
// Derivable from the criteria alone; there is no separate state.
func (c Criteria) IsFiltering() bool {
	return c.Coaching != All || c.Gender != All || c.Area != All || len(c.ActivePills) > 0
}

// Matches reports whether the listing satisfies the criteria. Pending
// listings never match, regardless of criteria: the public feed only
// ever shows approved records.
func Matches(l Listing, c Criteria) bool {
	if l.ApprovalStatus != StatusApproved {
		return false
	}

	// The coaching selector is an exact-name lookup in the distance
	// matrix; it never matches against the area field, and unlike the
	// "Near ..." pills it does not substring-match.
	if c.Coaching != All && !hasInstitute(l, c.Coaching) {
		return false
	}
	if c.Gender != All && string(l.Gender) != c.Gender {
		return false
	}
	if c.Area != All && l.Area != c.Area {
		return false
	}

	for _, pill := range c.ActivePills {
		if !matchesPill(l, pill) {
			return false
		}
	}

	return true
}

// Filter returns the listings matching the criteria, preserving the
// relative order of the source collection.
func Filter(listings []Listing, c Criteria) []Listing {
	matched := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if Matches(l, c) {
			matched = append(matched, l)
		}
	}
	return matched
}

func matchesPill(l Listing, pill string) bool {
	switch pill {
	case PillLuxury:
		return l.RentDouble > 15000
	case PillBudget:
		return l.RentDouble < 10000
	case PillGirls:
		return l.Gender == GenderGirls
	case PillBoys:
		return l.Gender == GenderBoys
	case PillNearAllen:
		return hasNearbyInstitute(l, "Allen")
	case PillNearPW:
		return hasNearbyInstitute(l, "PW")
	case PillAC:
		return l.HasFacility("AC")
	case PillFood:
		return l.HasFacility("Mess Facility")
	default:
		return true
	}
}

// hasInstitute reports whether the distance matrix names the institute
// exactly.
func hasInstitute(l Listing, name string) bool {
	for _, entry := range l.InstituteDistances {
		if entry.Name == name {
			return true
		}
	}
	return false
}

// hasNearbyInstitute reports whether any matrix entry's name contains
// substr and sits closer than half a kilometer.
func hasNearbyInstitute(l Listing, substr string) bool {
	for _, entry := range l.InstituteDistances {
		if strings.Contains(entry.Name, substr) && entry.Distance < 0.5 {
			return true
		}
	}
	return false
}
