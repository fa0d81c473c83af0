package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// TagList is the canonical form of an event's category labels. Events arrive
// with tags either as a comma-joined string or as an array; both are
// normalized here so matching behaves the same regardless of the source.
type TagList []string

// ParseTags splits a comma-joined tag string into normalized labels.
// Whitespace around each label is trimmed and empty labels are dropped.
func ParseTags(s string) TagList {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return normalizeTags(strings.Split(s, ","))
}

func normalizeTags(raw []string) TagList {
	out := make(TagList, 0, len(raw))
	for _, label := range raw {
		label = strings.TrimSpace(label)
		if label != "" {
			out = append(out, label)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// UnmarshalJSON accepts both `"tech, music"` and `["tech", "music"]`.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = ParseTags(s)
		return nil
	}
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = normalizeTags(raw)
	return nil
}

func (t TagList) MarshalJSON() ([]byte, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(t))
}

// Contains reports whether label is one of the normalized tags.
func (t TagList) Contains(label string) bool {
	for _, tag := range t {
		if tag == label {
			return true
		}
	}
	return false
}

// String renders the canonical comma-joined storage form.
func (t TagList) String() string {
	return strings.Join(t, ",")
}

type Event struct {
	ID          uint
	Title       string
	Description string
	Location    string
	Date        time.Time
	Price       *float64 // nil means no price was set; treated as free
	Tags        TagList
	Organizer   string
	Attendees   int // derived registration count, populated on reads only
	CreatedAt   time.Time
}

// PriceOrZero returns the event price with a missing price treated as free.
func (e *Event) PriceOrZero() float64 {
	if e.Price == nil {
		return 0
	}
	return *e.Price
}

// IsUpcoming reports whether the event starts strictly after now.
func (e *Event) IsUpcoming(now time.Time) bool {
	return e.Date.After(now)
}
