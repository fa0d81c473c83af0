package seed

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Profile describes one bulk-generation run.
type Profile struct {
	Events        int    `toml:"events"`
	Registrations int    `toml:"registrations"`
	From          string `toml:"from"` // inclusive, YYYY-MM-DD
	To            string `toml:"to"`   // inclusive, YYYY-MM-DD
}

// LoadProfile reads and validates a TOML profile.
func LoadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := toml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) validate() error {
	if p.Events <= 0 {
		return fmt.Errorf("profile: events must be positive (got %d)", p.Events)
	}
	if p.Registrations < 0 {
		return fmt.Errorf("profile: registrations must not be negative (got %d)", p.Registrations)
	}
	if _, _, err := p.Window(); err != nil {
		return err
	}
	return nil
}

// Window returns the date window timestamps are drawn from.
func (p *Profile) Window() (from, to time.Time, err error) {
	from, err = time.Parse("2006-01-02", p.From)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("profile: invalid from date (%q): %w", p.From, err)
	}
	to, err = time.Parse("2006-01-02", p.To)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("profile: invalid to date (%q): %w", p.To, err)
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("profile: to (%s) must be after from (%s)", p.To, p.From)
	}
	return from, to, nil
}
