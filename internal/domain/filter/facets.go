package filter

import (
	"sort"

	"eventhub/internal/domain/entities"
)

// Facets are the distinct value sets a filter UI can offer for each
// filterable dimension of the current event collection.
type Facets struct {
	Locations  []string
	Categories []string
	Organizers []string
}

// ExtractFacets derives the facet value sets from events. Empty and missing
// values are skipped, tag labels are taken from the normalized tag list, and
// each set is deduplicated and sorted so output is deterministic.
func ExtractFacets(events []entities.Event) Facets {
	locations := map[string]struct{}{}
	categories := map[string]struct{}{}
	organizers := map[string]struct{}{}
	for i := range events {
		e := &events[i]
		if e.Location != "" {
			locations[e.Location] = struct{}{}
		}
		if e.Organizer != "" {
			organizers[e.Organizer] = struct{}{}
		}
		for _, label := range e.Tags {
			categories[label] = struct{}{}
		}
	}
	return Facets{
		Locations:  sortedKeys(locations),
		Categories: sortedKeys(categories),
		Organizers: sortedKeys(organizers),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
