package model

import (
	"errors"
	"testing"
)

// seatRow fills one grid row with a zone marker and numbered seats so
// tests can exercise booking without the layout codec.
func seatRow(v *Venue, row int, marker byte) {
	v.SetCell(row, 0, marker)
	v.SetCell(row, v.Width()-1, marker)
	seats := v.LeftCols + v.MiddleCols + v.RightCols
	col := 2
	for seat := 1; seat <= seats; seat++ {
		v.SetCell(row, col, byte('0'+seat%10))
		col++
		if seat == v.LeftCols || seat == v.LeftCols+v.MiddleCols {
			col++
		}
	}
}

func TestBandFor(t *testing.T) {
	v := NewVenue(3, 5, 3, 2)
	cases := []struct {
		seat int
		want Band
	}{
		{1, BandLeft},
		{5, BandLeft},
		{6, BandMiddle},
		{8, BandMiddle},
		{9, BandRight},
		{10, BandRight},
	}
	for _, tc := range cases {
		if got := v.BandFor(tc.seat); got != tc.want {
			t.Errorf("BandFor(%d) = %s, want %s", tc.seat, got, tc.want)
		}
	}
}

func TestBook(t *testing.T) {
	v := NewVenue(3, 2, 3, 2)
	seatRow(v, 0, 'S')

	if !v.SeatAvailable(ZoneSeating, 1, 3) {
		t.Fatal("fresh seat reported unavailable")
	}
	if err := v.Book(ZoneSeating, 1, 3); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if v.SeatAvailable(ZoneSeating, 1, 3) {
		t.Error("booked seat reported available")
	}
	if v.BookedSeats() != 1 {
		t.Errorf("booked = %d, want 1", v.BookedSeats())
	}

	if err := v.Book(ZoneSeating, 1, 3); !errors.Is(err, ErrSeatBooked) {
		t.Errorf("double booking err = %v, want ErrSeatBooked", err)
	}
	if err := v.Book(ZoneSeating, 2, 1); !errors.Is(err, ErrRowNotFound) {
		t.Errorf("missing row err = %v, want ErrRowNotFound", err)
	}
	if err := v.Book(ZoneStanding, 1, 1); !errors.Is(err, ErrRowNotFound) {
		t.Errorf("wrong zone err = %v, want ErrRowNotFound", err)
	}
	if err := v.Book(ZoneSeating, 1, 8); !errors.Is(err, ErrSeatNotFound) {
		t.Errorf("seat out of range err = %v, want ErrSeatNotFound", err)
	}
	if v.BookedSeats() != 1 {
		t.Errorf("failed bookings changed the count to %d", v.BookedSeats())
	}
}

func TestZoneRowNumberingIsZoneLocal(t *testing.T) {
	v := NewVenue(5, 2, 2, 2)
	seatRow(v, 0, 'V')
	seatRow(v, 2, 'S')
	seatRow(v, 3, 'S')

	// S row 2 is the fourth grid row, not the second.
	if err := v.Book(ZoneSeating, 2, 1); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if v.SeatAvailable(ZoneSeating, 2, 1) {
		t.Error("S2 seat 1 still available after booking")
	}
	if !v.SeatAvailable(ZoneSeating, 1, 1) {
		t.Error("booking S2 touched S1")
	}
	if !v.SeatAvailable(ZoneVIP, 1, 1) {
		t.Error("booking S2 touched V1")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	v := NewVenue(3, 2, 2, 2)
	seatRow(v, 0, 'T')

	clone := v.Clone()
	if err := clone.Book(ZoneStanding, 1, 1); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if v.BookedSeats() != 0 {
		t.Error("booking the clone changed the template")
	}
	if !v.SeatAvailable(ZoneStanding, 1, 1) {
		t.Error("template seat vanished after clone booking")
	}
	if clone.SeatsLeft() != clone.TotalSeats()-1 {
		t.Errorf("clone seats left = %d, want %d", clone.SeatsLeft(), clone.TotalSeats()-1)
	}
}

func TestZoneConversions(t *testing.T) {
	for _, z := range []Zone{ZoneSeating, ZoneStanding, ZoneVIP} {
		got, ok := ZoneFromMarker(z.Marker())
		if !ok || got != z {
			t.Errorf("ZoneFromMarker(%c) = %v, %v", z.Marker(), got, ok)
		}
		got, ok = ZoneFromName(z.String())
		if !ok || got != z {
			t.Errorf("ZoneFromName(%s) = %v, %v", z, got, ok)
		}
	}
	if z, ok := ZoneFromName("standing"); !ok || z != ZoneStanding {
		t.Errorf("lowercase name = %v, %v", z, ok)
	}
	if _, ok := ZoneFromMarker('X'); ok {
		t.Error("ZoneFromMarker accepted X")
	}
	if _, ok := ZoneFromName("BALCONY"); ok {
		t.Error("ZoneFromName accepted BALCONY")
	}
}
