package feed

import (
	"fmt"
	"strings"

	"github.com/lysyi3m/rss-toast/app/config"
)

type Filterer struct {
	filters []config.Filter
}

func NewFilterer(filters []config.Filter) *Filterer {
	return &Filterer{filters: filters}
}

// Muted reports whether an entry should be kept quiet, and why
func (f *Filterer) Muted(entry Entry) (bool, string) {
	for _, filter := range f.filters {
		value := f.getFieldValue(entry, filter.Field)

		for _, exclude := range filter.Excludes {
			if f.matchesFilter(value, exclude) {
				return true, fmt.Sprintf("Excluded by %s filter: contains '%s'", filter.Field, exclude)
			}
		}

		if len(filter.Includes) > 0 {
			matched := false
			for _, include := range filter.Includes {
				if f.matchesFilter(value, include) {
					matched = true
					break
				}
			}
			if !matched {
				return true, fmt.Sprintf("Excluded by %s filter: does not contain any of %v", filter.Field, filter.Includes)
			}
		}
	}

	return false, ""
}

func (f *Filterer) matchesFilter(value, pattern string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}

func (f *Filterer) getFieldValue(entry Entry, field string) string {
	switch field {
	case "title":
		return entry.Title
	case "link":
		return entry.Link
	default:
		return ""
	}
}
