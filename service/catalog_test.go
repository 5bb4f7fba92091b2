package service

import (
	"testing"

	"ticketdesk/model"
)

func TestLoadConcertsSkipsMalformedLines(t *testing.T) {
	cat := NewCatalog()
	v, err := ParseLayout("default", sampleLayout())
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	cat.AddVenue(v)

	lines := []string{
		"1,2026-10-01,19:00,The Strokes,default,standing:50:60:50,seating:100:150:100,vip:250:300:250",
		"too,short",
		"",
		"x,2026-10-02,20:00,Bad Id,default,standing:50:60:50,seating:100:150:100,vip:250:300:250",
		"7,2026-10-03,18:30,Phoenix,mcg,standing:40:45:40,seating:90:120:90,vip:200:240:200",
	}
	if err := cat.LoadConcerts(lines); err != nil {
		t.Fatalf("LoadConcerts: %v", err)
	}

	concerts := cat.Concerts()
	if len(concerts) != 2 {
		t.Fatalf("loaded %d concerts, want 2", len(concerts))
	}
	if concerts[0].ID != 1 || concerts[1].ID != 7 {
		t.Errorf("concert ids = %d,%d, want 1,7", concerts[0].ID, concerts[1].ID)
	}
	if cat.Concert(7) == nil || cat.Concert(2) != nil {
		t.Error("lookup by id does not match the loaded set")
	}
}

func TestLoadConcertsPriceTable(t *testing.T) {
	cat := NewCatalog()
	v, err := ParseLayout("default", sampleLayout())
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	cat.AddVenue(v)
	line := "1,2026-10-01,19:00,The Strokes,default,standing:50:60:55,seating:100:150:110,vip:250:300:260"
	if err := cat.LoadConcerts([]string{line}); err != nil {
		t.Fatalf("LoadConcerts: %v", err)
	}

	concert := cat.Concert(1)
	cases := []struct {
		zone model.Zone
		band model.Band
		want float64
	}{
		{model.ZoneStanding, model.BandLeft, 50},
		{model.ZoneStanding, model.BandMiddle, 60},
		{model.ZoneStanding, model.BandRight, 55},
		{model.ZoneSeating, model.BandMiddle, 150},
		{model.ZoneVIP, model.BandRight, 260},
	}
	for _, tc := range cases {
		if got := concert.Price(tc.zone, tc.band); got != tc.want {
			t.Errorf("price(%s, %s) = %v, want %v", tc.zone, tc.band, got, tc.want)
		}
	}
}

func TestInstantiateVenueFallback(t *testing.T) {
	cat := NewCatalog()
	if _, err := cat.InstantiateVenue("anything"); err != ErrNoVenues {
		t.Fatalf("empty catalog err = %v, want ErrNoVenues", err)
	}

	def, err := ParseLayout("default", sampleLayout())
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	cat.AddVenue(def)

	named, err := cat.InstantiateVenue("DEFAULT")
	if err != nil {
		t.Fatalf("InstantiateVenue: %v", err)
	}
	if named.Name != "default" {
		t.Errorf("case-insensitive lookup got %q, want default", named.Name)
	}

	fallback, err := cat.InstantiateVenue("no-such-arena")
	if err != nil {
		t.Fatalf("InstantiateVenue fallback: %v", err)
	}
	if fallback.TotalSeats() != def.TotalSeats() {
		t.Errorf("fallback seats = %d, want %d", fallback.TotalSeats(), def.TotalSeats())
	}

	// Clones keep their own occupancy.
	if err := fallback.Book(model.ZoneSeating, 1, 1); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if def.BookedSeats() != 0 || named.BookedSeats() != 0 {
		t.Error("booking a clone leaked into the template or a sibling clone")
	}
}
