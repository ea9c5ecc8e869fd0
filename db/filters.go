package db

import (
	"github.com/huandu/go-sqlbuilder"

	"skylight/query"
)

// MediaTypeFilter restricts archived items to one media type
type MediaTypeFilter struct {
	MediaType string
}

func (f *MediaTypeFilter) ApplyFilter(sb *sqlbuilder.SelectBuilder) {
	if f.MediaType != "" {
		sb.Where(sb.Equal("media_type", f.MediaType))
	}
}

// DateRangeFilter restricts archived items to an inclusive ISO-date range
type DateRangeFilter struct {
	From string
	To   string
}

func (f *DateRangeFilter) ApplyFilter(sb *sqlbuilder.SelectBuilder) {
	if f.From != "" {
		sb.Where(sb.GreaterEqualThan("date", f.From))
	}
	if f.To != "" {
		sb.Where(sb.LessEqualThan("date", f.To))
	}
}

var _ query.FilterStrategy = (*MediaTypeFilter)(nil)
var _ query.FilterStrategy = (*DateRangeFilter)(nil)
