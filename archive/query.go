package archive

import (
	"fmt"
	"strings"
)

const (
	// BaseQuery matches every text item tagged as a magazine or periodical
	BaseQuery = "mediatype:texts AND format:(magazine OR periodical)"

	// OpenRangeMinYear is the lower bound used when only a max year is given
	OpenRangeMinYear = 1800
	// OpenRangeMaxYear is the upper bound used when only a min year is given
	OpenRangeMaxYear = 2025
)

// Filters narrows a search. Zero values mean the filter is not set.
type Filters struct {
	Collection string
	MinYear    int
	MaxYear    int
}

// HasYearRange reports whether either year bound is set
func (f Filters) HasYearRange() bool {
	return f.MinYear != 0 || f.MaxYear != 0
}

// BuildQuery assembles the search query for the given filters.
// The collection name is passed through verbatim.
func BuildQuery(f Filters) string {
	clauses := []string{BaseQuery}

	if f.Collection != "" {
		clauses = append(clauses, "collection:"+f.Collection)
	}

	switch {
	case f.MinYear != 0 && f.MaxYear != 0:
		clauses = append(clauses, yearRange(f.MinYear, f.MaxYear))
	case f.MinYear != 0:
		clauses = append(clauses, yearRange(f.MinYear, OpenRangeMaxYear))
	case f.MaxYear != 0:
		clauses = append(clauses, yearRange(OpenRangeMinYear, f.MaxYear))
	}

	return strings.Join(clauses, " AND ")
}

func yearRange(from, to int) string {
	return fmt.Sprintf("year:[%d TO %d]", from, to)
}
