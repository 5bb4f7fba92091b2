package service

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"ticketdesk/model"
)

const concertFields = 8

// Catalog holds the loaded venue templates and concerts. Templates keep
// their load order: the first one is the fallback for concerts whose
// venue name matches no file. Concerts are keyed by their id, not by
// their position in the file.
type Catalog struct {
	venues   []*model.Venue
	concerts map[int]*model.Concert
	order    []int
}

func NewCatalog() *Catalog {
	return &Catalog{concerts: make(map[int]*model.Concert)}
}

// AddVenue registers a parsed template.
func (c *Catalog) AddVenue(v *model.Venue) {
	c.venues = append(c.venues, v)
}

// Venues returns the templates in load order.
func (c *Catalog) Venues() []*model.Venue { return c.venues }

// VenueByName finds a template by name, case-insensitively.
func (c *Catalog) VenueByName(name string) *model.Venue {
	for _, v := range c.venues {
		if strings.EqualFold(v.Name, name) {
			return v
		}
	}
	return nil
}

// InstantiateVenue clones the template matching venueName, or the first
// loaded template when none matches. Every concert gets a grid of its
// own; the fallback is deliberate, not an error.
func (c *Catalog) InstantiateVenue(venueName string) (*model.Venue, error) {
	if v := c.VenueByName(venueName); v != nil {
		return v.Clone(), nil
	}
	if len(c.venues) == 0 {
		return nil, ErrNoVenues
	}
	return c.venues[0].Clone(), nil
}

// LoadConcerts parses concert catalog lines and attaches a fresh venue
// clone to each concert. Malformed lines are logged and skipped; running
// without any venue template is fatal.
func (c *Catalog) LoadConcerts(lines []string) error {
	for n, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		concert, err := c.parseConcert(line)
		if err != nil {
			if !IsFormatError(err) {
				return fmt.Errorf("concert line %d: %w", n+1, err)
			}
			slog.Warn("skipping concert line", "line", n+1, "err", err)
			continue
		}
		if _, dup := c.concerts[concert.ID]; dup {
			slog.Warn("skipping duplicate concert id", "line", n+1, "id", concert.ID)
			continue
		}
		c.concerts[concert.ID] = concert
		c.order = append(c.order, concert.ID)
	}
	return nil
}

// Concert returns the concert with the given id, or nil.
func (c *Catalog) Concert(id int) *model.Concert { return c.concerts[id] }

// Concerts returns all concerts in file order.
func (c *Catalog) Concerts() []*model.Concert {
	out := make([]*model.Concert, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.concerts[id])
	}
	return out
}

func (c *Catalog) parseConcert(line string) (*model.Concert, error) {
	parts := strings.Split(line, ",")
	if len(parts) < concertFields {
		return nil, &FormatError{
			Reason: fmt.Sprintf("concert line has %d fields, want %d", len(parts), concertFields),
		}
	}
	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, &FormatError{Reason: "concert id is not a number"}
	}
	concert := &model.Concert{
		ID:        id,
		Date:      parts[1],
		Timing:    parts[2],
		Artist:    parts[3],
		VenueName: parts[4],
	}
	// Field order in the file: standing, seating, vip.
	for i, zone := range []model.Zone{model.ZoneStanding, model.ZoneSeating, model.ZoneVIP} {
		triple, err := parsePriceTriple(parts[5+i])
		if err != nil {
			return nil, err
		}
		concert.SetPrices(zone, triple[0], triple[1], triple[2])
	}
	venue, err := c.InstantiateVenue(concert.VenueName)
	if err != nil {
		return nil, err
	}
	concert.Venue = venue
	return concert, nil
}

// parsePriceTriple reads a label:left:middle:right price field.
func parsePriceTriple(field string) ([3]float64, error) {
	parts := strings.Split(field, ":")
	if len(parts) < 4 {
		return [3]float64{}, &FormatError{
			Reason: fmt.Sprintf("price field %q wants label:left:middle:right", field),
		}
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i+1]), 64)
		if err != nil {
			return out, &FormatError{Reason: fmt.Sprintf("price %q is not a number", parts[i+1])}
		}
		out[i] = v
	}
	return out, nil
}
