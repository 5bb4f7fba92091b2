package model

import "strings"

// Zone is one of the three seating areas a venue row can belong to. Each
// zone has a fixed row marker in layout files and a fixed row in a
// concert's price table.
type Zone int

const (
	ZoneSeating Zone = iota
	ZoneStanding
	ZoneVIP
)

// Marker returns the single-letter boundary marker used in layout files.
func (z Zone) Marker() byte {
	switch z {
	case ZoneStanding:
		return 'T'
	case ZoneVIP:
		return 'V'
	default:
		return 'S'
	}
}

func (z Zone) String() string {
	switch z {
	case ZoneStanding:
		return "STANDING"
	case ZoneVIP:
		return "VIP"
	default:
		return "SEATING"
	}
}

// PriceRow returns the zone's row index in a concert price table.
func (z Zone) PriceRow() int { return int(z) }

// ZoneFromMarker resolves a layout row marker to its zone.
func ZoneFromMarker(c byte) (Zone, bool) {
	switch c {
	case 'S':
		return ZoneSeating, true
	case 'T':
		return ZoneStanding, true
	case 'V':
		return ZoneVIP, true
	}
	return 0, false
}

// ZoneFromName resolves a spelled-out zone name, case-insensitively.
func ZoneFromName(name string) (Zone, bool) {
	for _, z := range []Zone{ZoneSeating, ZoneStanding, ZoneVIP} {
		if strings.EqualFold(name, z.String()) {
			return z, true
		}
	}
	return 0, false
}

// Band is the left/middle/right column grouping within a zone row.
type Band int

const (
	BandLeft Band = iota
	BandMiddle
	BandRight
)

func (b Band) String() string {
	switch b {
	case BandMiddle:
		return "Middle"
	case BandRight:
		return "Right"
	default:
		return "Left"
	}
}
