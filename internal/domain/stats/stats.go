// Package stats turns the raw registration log into the dashboard's daily
// time series and per-event popularity ranking. Both aggregations are pure
// functions of their input: callers scope the log to the reporting window
// before handing it over.
package stats

import (
	"sort"
	"time"

	"eventhub/internal/domain/entities"
)

// WindowDays is the trailing span dashboard statistics are computed over.
const WindowDays = 30

// TopEventsLimit caps the popularity ranking.
const TopEventsLimit = 5

// DateFormat is the calendar-date key used for daily grouping.
const DateFormat = "2006-01-02"

// WindowStart returns the cutoff for the reporting window: the start of the
// day WindowDays days before now, so the comparison is made against calendar
// dates rather than raw timestamps.
func WindowStart(now time.Time) time.Time {
	sod := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return sod.AddDate(0, 0, -WindowDays)
}

// DailyCount is one day of the registration time series.
type DailyCount struct {
	Date  string
	Count int
}

// PopularEvent is one entry of the popularity ranking.
type PopularEvent struct {
	EventID            uint
	Title              string
	TotalRegistrations int
}

// Options tunes the aggregations.
type Options struct {
	// FillGaps synthesizes zero-count entries for dates with no
	// registrations between the first and last date present. The default
	// emits only dates that actually appear in the log.
	FillGaps bool
}

// DailyCounts groups registrations by the calendar date of their creation and
// returns one record per date, ordered ascending. An empty log yields an
// empty slice. The computation is deterministic: running it twice over the
// same log yields identical output.
func DailyCounts(regs []entities.Registration, opts Options) []DailyCount {
	byDate := map[string]int{}
	for i := range regs {
		byDate[regs[i].CreatedAt.Format(DateFormat)]++
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]DailyCount, 0, len(dates))
	if opts.FillGaps && len(dates) > 0 {
		first, _ := time.Parse(DateFormat, dates[0])
		last, _ := time.Parse(DateFormat, dates[len(dates)-1])
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			key := d.Format(DateFormat)
			out = append(out, DailyCount{Date: key, Count: byDate[key]})
		}
		return out
	}
	for _, d := range dates {
		out = append(out, DailyCount{Date: d, Count: byDate[d]})
	}
	return out
}

// PopularEvents counts registrations per event, joins the event title and
// returns at most limit entries ordered by descending count. Ties break on
// ascending event id so the ranking is stable. Events with no registrations
// in the log never appear.
func PopularEvents(regs []entities.Registration, titles map[uint]string, limit int) []PopularEvent {
	counts := map[uint]int{}
	for i := range regs {
		counts[regs[i].EventID]++
	}
	out := make([]PopularEvent, 0, len(counts))
	for id, n := range counts {
		out = append(out, PopularEvent{
			EventID:            id,
			Title:              titles[id],
			TotalRegistrations: n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalRegistrations != out[j].TotalRegistrations {
			return out[i].TotalRegistrations > out[j].TotalRegistrations
		}
		return out[i].EventID < out[j].EventID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// EventIDs returns the distinct event ids referenced by the log, used to
// fetch titles for the ranking join.
func EventIDs(regs []entities.Registration) []uint {
	seen := map[uint]struct{}{}
	out := make([]uint, 0)
	for i := range regs {
		id := regs[i].EventID
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
