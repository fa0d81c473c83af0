package filter

import (
	"reflect"
	"testing"

	"eventhub/internal/domain/entities"
)

func TestExtractFacets(t *testing.T) {
	events := []entities.Event{
		{Location: "Berlin", Organizer: "GoBerlin", Tags: entities.ParseTags("tech, music")},
		{Location: "Paris", Organizer: "BlueNote", Tags: entities.TagList{"music"}},
		{Location: "Berlin"}, // duplicate location, no organizer, no tags
		{},                   // nothing to contribute
	}

	got := ExtractFacets(events)

	if want := []string{"Berlin", "Paris"}; !reflect.DeepEqual(got.Locations, want) {
		t.Errorf("locations = %v, want %v", got.Locations, want)
	}
	if want := []string{"music", "tech"}; !reflect.DeepEqual(got.Categories, want) {
		t.Errorf("categories = %v, want %v", got.Categories, want)
	}
	if want := []string{"BlueNote", "GoBerlin"}; !reflect.DeepEqual(got.Organizers, want) {
		t.Errorf("organizers = %v, want %v", got.Organizers, want)
	}
}

func TestExtractFacetsEmptyInput(t *testing.T) {
	got := ExtractFacets(nil)
	if len(got.Locations) != 0 || len(got.Categories) != 0 || len(got.Organizers) != 0 {
		t.Errorf("expected empty facets, got %+v", got)
	}
}

func TestExtractFacetsNormalizesStringTags(t *testing.T) {
	// Comma-joined and slice representations yield the same labels.
	events := []entities.Event{
		{Tags: entities.ParseTags(" tech ,  music,")},
		{Tags: entities.TagList{"tech", "music"}},
	}
	got := ExtractFacets(events)
	if want := []string{"music", "tech"}; !reflect.DeepEqual(got.Categories, want) {
		t.Errorf("categories = %v, want %v", got.Categories, want)
	}
}
