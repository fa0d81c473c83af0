// Package seed produces large synthetic datasets for exercising the filter
// engine and aggregation pipeline at scale. Generated registrations only ever
// reference event ids created in the same run, so the dataset is
// referentially consistent by construction.
package seed

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"eventhub/internal/domain"
	"eventhub/internal/domain/entities"
)

// tagPool is the label vocabulary generated events draw from.
var tagPool = []string{
	"tech", "music", "art", "food", "sports", "business", "health", "education",
}

type Generator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

// NewGenerator returns a generator producing a deterministic dataset for a
// given seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		rng:   rand.New(rand.NewSource(int64(seed))),
	}
}

// Events produces n synthetic events with dates drawn uniformly from
// [from, to]. Ids are left unset; the repository assigns them on insert.
func (g *Generator) Events(n int, from, to time.Time) []*entities.Event {
	out := make([]*entities.Event, n)
	for i := range out {
		out[i] = &entities.Event{
			Title:       g.faker.Slogan(),
			Description: g.faker.Sentence(8),
			Location:    g.faker.City(),
			Date:        g.faker.DateRange(from, to),
			Price:       g.price(),
			Tags:        g.tags(),
			Organizer:   g.faker.Company(),
		}
	}
	return out
}

// Registrations produces m synthetic registrations, each referencing an event
// id drawn uniformly from eventIDs. Passing an empty id set is an error:
// every registration must reference an event created in this run.
func (g *Generator) Registrations(m int, eventIDs []uint, from, to time.Time) ([]*entities.Registration, error) {
	if len(eventIDs) == 0 {
		return nil, domain.ErrNoEvents
	}
	out := make([]*entities.Registration, m)
	for i := range out {
		out[i] = &entities.Registration{
			EventID:   eventIDs[g.rng.Intn(len(eventIDs))],
			Reference: uuid.NewString(),
			Name:      g.faker.Name(),
			Email:     g.faker.Email(),
			Phone:     g.faker.Phone(),
			CreatedAt: g.faker.DateRange(from, to),
		}
	}
	return out, nil
}

// price returns nil for roughly a quarter of events (no price set, i.e.
// free) and a value from a few dollars up past the top bucket otherwise.
func (g *Generator) price() *float64 {
	if g.rng.Intn(4) == 0 {
		return nil
	}
	p := g.faker.Price(5, 180)
	return &p
}

func (g *Generator) tags() entities.TagList {
	n := g.rng.Intn(4) // 0..3 labels
	if n == 0 {
		return nil
	}
	picked := g.rng.Perm(len(tagPool))[:n]
	tags := make(entities.TagList, 0, n)
	for _, idx := range picked {
		tags = append(tags, tagPool[idx])
	}
	return tags
}
