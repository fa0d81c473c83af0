package filter

import (
	"strings"
	"time"

	"eventhub/internal/domain/entities"
)

// Filters holds the active value for each facet of the event list. An empty
// string means the facet is unconstrained. Filters is an ephemeral value
// passed in by the caller; it is never persisted.
type Filters struct {
	Search     string
	Location   string
	Category   string
	DateRange  string
	PriceRange string
	Organizer  string
	Status     string
}

// Date range buckets.
const (
	DateToday     = "today"
	DateTomorrow  = "tomorrow"
	DateThisWeek  = "this-week"
	DateNextWeek  = "next-week"
	DateThisMonth = "this-month"
	DateNextMonth = "next-month"
)

// Price range buckets.
const (
	PriceFree    = "free"
	PriceUpTo25  = "0-25"
	Price25To50  = "25-50"
	Price50To100 = "50-100"
	PriceOver100 = "100+"
)

// Status values.
const (
	StatusUpcoming = "upcoming"
	StatusPast     = "past"
)

// Apply returns the order-preserving subsequence of events satisfying every
// active facet of f. Predicates are combined with logical AND; an event must
// pass all of them to be retained. The result is recomputed in full on every
// call and depends only on the inputs and now.
func Apply(events []entities.Event, f Filters, now time.Time) []entities.Event {
	out := make([]entities.Event, 0, len(events))
	for i := range events {
		if matches(&events[i], f, now) {
			out = append(out, events[i])
		}
	}
	return out
}

func matches(e *entities.Event, f Filters, now time.Time) bool {
	if f.Search != "" && !matchesSearch(e, f.Search) {
		return false
	}
	// Events missing a location or organizer never match an active filter on
	// that facet: the empty value is excluded, not wildcarded.
	if f.Location != "" && (e.Location == "" || e.Location != f.Location) {
		return false
	}
	if f.Category != "" && !e.Tags.Contains(f.Category) {
		return false
	}
	if f.DateRange != "" && !inDateBucket(e.Date, f.DateRange, now) {
		return false
	}
	if f.PriceRange != "" && !inPriceBucket(e.PriceOrZero(), f.PriceRange) {
		return false
	}
	if f.Organizer != "" && (e.Organizer == "" || e.Organizer != f.Organizer) {
		return false
	}
	if f.Status != "" && !matchesStatus(e, f.Status, now) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against the title,
// description and organizer; any one of the three matching retains the event.
func matchesSearch(e *entities.Event, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.Description), term) ||
		strings.Contains(strings.ToLower(e.Organizer), term)
}

func matchesStatus(e *entities.Event, status string, now time.Time) bool {
	switch status {
	case StatusUpcoming:
		return e.IsUpcoming(now)
	case StatusPast:
		return !e.IsUpcoming(now)
	default:
		return false
	}
}

func inPriceBucket(price float64, bucket string) bool {
	switch bucket {
	case PriceFree:
		return price == 0
	case PriceUpTo25:
		return price >= 0 && price <= 25
	case Price25To50:
		return price > 25 && price <= 50
	case Price50To100:
		return price > 50 && price <= 100
	case PriceOver100:
		return price > 100
	default:
		return false
	}
}

// inDateBucket assigns t to a bucket computed relative to the start of the
// current day in now's location. All buckets are half-open intervals so a
// timestamp at a bucket boundary lands in exactly one bucket.
func inDateBucket(t time.Time, bucket string, now time.Time) bool {
	sod := startOfDay(now)
	var lo, hi time.Time
	switch bucket {
	case DateToday:
		lo, hi = sod, sod.AddDate(0, 0, 1)
	case DateTomorrow:
		lo, hi = sod.AddDate(0, 0, 1), sod.AddDate(0, 0, 2)
	case DateThisWeek:
		lo, hi = sod, nextMonday(sod)
	case DateNextWeek:
		lo = nextMonday(sod)
		hi = lo.AddDate(0, 0, 7)
	case DateThisMonth:
		lo, hi = sod, firstOfNextMonth(sod)
	case DateNextMonth:
		lo = firstOfNextMonth(sod)
		hi = lo.AddDate(0, 1, 0)
	default:
		return false
	}
	return !t.Before(lo) && t.Before(hi)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// nextMonday returns the start of the next calendar week. Weeks run Monday
// through Sunday; when sod is a Monday the following Monday is returned.
func nextMonday(sod time.Time) time.Time {
	days := (8 - int(sod.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	return sod.AddDate(0, 0, days)
}

func firstOfNextMonth(sod time.Time) time.Time {
	return time.Date(sod.Year(), sod.Month(), 1, 0, 0, 0, 0, sod.Location()).AddDate(0, 1, 0)
}
