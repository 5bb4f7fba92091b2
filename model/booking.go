package model

import (
	"strconv"
	"strings"
)

// Seat is one reserved seat inside a booking: its sequence number within
// the purchase, the zone-local row, the seat number within the row, and
// the unit price paid (integer-truncated).
type Seat struct {
	Seq   int
	Row   int
	Col   int
	Zone  Zone
	Price int
}

// Booking is one purchase transaction: a single ledger line decoded into
// individually addressable seat reservations. Booking ids are unique per
// customer/concert pair.
type Booking struct {
	ID           int
	CustomerID   int
	CustomerName string
	ConcertID    int
	Seats        []Seat
}

// TotalPrice sums the seat prices of the booking.
func (b Booking) TotalPrice() int {
	total := 0
	for _, s := range b.Seats {
		total += s.Price
	}
	return total
}

// Encode renders the booking as one ledger line: the five header fields
// followed by five fields per seat. Fields are comma-joined with no
// escaping; commas inside customer names are not supported by the format.
func (b Booking) Encode() string {
	fields := []string{
		strconv.Itoa(b.ID),
		strconv.Itoa(b.CustomerID),
		b.CustomerName,
		strconv.Itoa(b.ConcertID),
		strconv.Itoa(len(b.Seats)),
	}
	for _, s := range b.Seats {
		fields = append(fields,
			strconv.Itoa(s.Seq),
			strconv.Itoa(s.Row),
			strconv.Itoa(s.Col),
			s.Zone.String(),
			strconv.Itoa(s.Price),
		)
	}
	return strings.Join(fields, ",")
}
