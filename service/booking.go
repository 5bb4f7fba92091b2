package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"ticketdesk/model"
)

const (
	bookingHeaderFields = 5
	seatRecordFields    = 5
)

// DecodeBooking parses one ledger line. The first five fields are the
// booking header; the rest are read in fixed groups of five per seat.
// Fewer than five fields or a seat count below one yield a FormatError,
// which lenient load paths treat as a skippable line. A line whose
// declared seat count outruns its fields is a hard error.
func DecodeBooking(line string) (model.Booking, error) {
	parts := strings.Split(line, ",")
	if len(parts) < bookingHeaderFields {
		return model.Booking{}, &FormatError{
			Reason: fmt.Sprintf("booking line has %d fields, want at least %d", len(parts), bookingHeaderFields),
		}
	}
	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Booking{}, &FormatError{Reason: "booking id is not a number"}
	}
	customerID, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Booking{}, &FormatError{Reason: "customer id is not a number"}
	}
	concertID, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return model.Booking{}, &FormatError{Reason: "concert id is not a number"}
	}
	count, err := strconv.Atoi(strings.TrimSpace(parts[4]))
	if err != nil {
		return model.Booking{}, &FormatError{Reason: "seat count is not a number"}
	}
	if count < 1 {
		return model.Booking{}, &FormatError{
			Reason: fmt.Sprintf("booking declares %d seats", count),
			Err:    errZeroSeats,
		}
	}

	b := model.Booking{
		ID:           id,
		CustomerID:   customerID,
		CustomerName: parts[2],
		ConcertID:    concertID,
	}
	if len(parts) < bookingHeaderFields+count*seatRecordFields {
		return model.Booking{}, fmt.Errorf(
			"booking %d declares %d seats but the line holds %d fields", id, count, len(parts))
	}
	for i := 0; i < count; i++ {
		off := bookingHeaderFields + i*seatRecordFields
		seat, err := decodeSeat(parts[off : off+seatRecordFields])
		if err != nil {
			return model.Booking{}, fmt.Errorf("booking %d seat %d: %w", id, i+1, err)
		}
		b.Seats = append(b.Seats, seat)
	}
	return b, nil
}

func decodeSeat(fields []string) (model.Seat, error) {
	seq, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return model.Seat{}, fmt.Errorf("sequence %q is not a number", fields[0])
	}
	row, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return model.Seat{}, fmt.Errorf("row %q is not a number", fields[1])
	}
	col, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return model.Seat{}, fmt.Errorf("seat number %q is not a number", fields[2])
	}
	zone, ok := model.ZoneFromName(strings.TrimSpace(fields[3]))
	if !ok {
		return model.Seat{}, fmt.Errorf("unknown zone %q", fields[3])
	}
	price, err := strconv.Atoi(strings.TrimSpace(fields[4]))
	if err != nil {
		return model.Seat{}, fmt.Errorf("price %q is not a number", fields[4])
	}
	return model.Seat{Seq: seq, Row: row, Col: col, Zone: zone, Price: price}, nil
}

// Apply replays one booking against a venue grid. Each historical ledger
// line must be applied exactly once; the grid rejects a second
// application of the same seat.
func Apply(b model.Booking, v *model.Venue) error {
	for _, s := range b.Seats {
		if err := v.Book(s.Zone, s.Row, s.Col); err != nil {
			return fmt.Errorf("booking %d: %w", b.ID, err)
		}
	}
	return nil
}

// Allocate reserves count consecutive seats starting at startSeat in one
// zone row of the concert's venue, pricing each seat by the band it
// lands in. All seats are validated before any is booked. Booking and
// customer identity are filled in by the caller.
func Allocate(c *model.Concert, zone model.Zone, row, startSeat, count int) (model.Booking, error) {
	if count < 1 {
		return model.Booking{}, fmt.Errorf("seat count must be positive, got %d", count)
	}
	for i := 0; i < count; i++ {
		if !c.Venue.SeatAvailable(zone, row, startSeat+i) {
			return model.Booking{}, fmt.Errorf("seat %c%d %d is not available", zone.Marker(), row, startSeat+i)
		}
	}
	b := model.Booking{ConcertID: c.ID}
	for i := 0; i < count; i++ {
		seat := startSeat + i
		if err := c.Venue.Book(zone, row, seat); err != nil {
			return model.Booking{}, err
		}
		b.Seats = append(b.Seats, model.Seat{
			Seq:   i + 1,
			Row:   row,
			Col:   seat,
			Zone:  zone,
			Price: int(c.Price(zone, c.Venue.BandFor(seat))),
		})
	}
	return b, nil
}

// NextBookingID derives the next id for a customer/concert pair from the
// ledger: one more than the highest id already recorded for the pair, or
// 1 when the pair has no bookings yet.
func NextBookingID(lines []string, customerID, concertID int) int {
	maxID := 0
	for _, line := range lines {
		parts := strings.Split(line, ",")
		if len(parts) < bookingHeaderFields {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		cust, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			continue
		}
		conc, err := strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil {
			continue
		}
		if cust == customerID && conc == concertID && id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// ReplayLedger re-derives occupancy from historical ledger lines. The
// grid state is reconstructed, never saved: durability relies on this
// replay succeeding at every load. In lenient mode malformed, zero-seat
// and unresolvable lines are logged and skipped; in strict mode the
// first bad line aborts the load, except zero-seat lines, which are
// benign skips in both modes.
func ReplayLedger(lines []string, cat *Catalog, strict bool) error {
	for n, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b, err := DecodeBooking(line)
		if err != nil {
			if strict && !errors.Is(err, errZeroSeats) {
				return fmt.Errorf("ledger line %d: %w", n+1, err)
			}
			slog.Warn("skipping booking line", "line", n+1, "err", err)
			continue
		}
		concert := cat.Concert(b.ConcertID)
		if concert == nil {
			if strict {
				return fmt.Errorf("ledger line %d: %w %d", n+1, ErrUnknownConcert, b.ConcertID)
			}
			slog.Warn("skipping booking for unknown concert", "line", n+1, "concert", b.ConcertID)
			continue
		}
		if err := Apply(b, concert.Venue); err != nil {
			if strict {
				return fmt.Errorf("ledger line %d: %w", n+1, err)
			}
			slog.Warn("skipping unresolvable booking", "line", n+1, "err", err)
		}
	}
	return nil
}

// BookingsFor returns the decoded bookings of one concert, oldest first.
// A negative customerID keeps every customer's bookings; otherwise only
// that customer's. Undecodable lines are ignored.
func BookingsFor(lines []string, concertID, customerID int) []model.Booking {
	var out []model.Booking
	for _, line := range lines {
		b, err := DecodeBooking(line)
		if err != nil {
			continue
		}
		if b.ConcertID != concertID {
			continue
		}
		if customerID >= 0 && b.CustomerID != customerID {
			continue
		}
		out = append(out, b)
	}
	return out
}

// TotalPayments sums the ticket prices of every booking for a concert.
func TotalPayments(lines []string, concertID int) int {
	total := 0
	for _, b := range BookingsFor(lines, concertID, -1) {
		total += b.TotalPrice()
	}
	return total
}
