package model

import (
	"errors"
	"fmt"
)

// seatGridPadding is the number of non-seat columns in a grid row: two
// boundary markers and the gap columns around each band.
const seatGridPadding = 6

// BookedCell marks a sold seat in the grid. Booked is terminal for a
// cell; there is no cancellation.
const BookedCell = 'X'

var (
	ErrRowNotFound  = errors.New("row not found in zone")
	ErrSeatNotFound = errors.New("seat not found in row")
	ErrSeatBooked   = errors.New("seat already booked")
)

// Venue is one seat grid instance, either a named template or a
// per-concert clone. Rows counts physical grid rows including spacers;
// the *Cols fields count seats per band.
type Venue struct {
	Name       string
	Rows       int
	LeftCols   int
	MiddleCols int
	RightCols  int

	cells       [][]byte
	totalSeats  int
	bookedSeats int
}

// NewVenue allocates a blank grid for the given geometry.
func NewVenue(rows, leftCols, middleCols, rightCols int) *Venue {
	v := &Venue{
		Rows:       rows,
		LeftCols:   leftCols,
		MiddleCols: middleCols,
		RightCols:  rightCols,
		totalSeats: (rows - 2) * (leftCols + middleCols + rightCols),
	}
	v.cells = make([][]byte, rows)
	for i := range v.cells {
		row := make([]byte, v.Width())
		for j := range row {
			row[j] = ' '
		}
		v.cells[i] = row
	}
	return v
}

// Width returns the cell count of one grid row.
func (v *Venue) Width() int {
	return v.LeftCols + v.MiddleCols + v.RightCols + seatGridPadding
}

func (v *Venue) TotalSeats() int  { return v.totalSeats }
func (v *Venue) BookedSeats() int { return v.bookedSeats }
func (v *Venue) SeatsLeft() int   { return v.totalSeats - v.bookedSeats }

// Cell returns the character at a grid position.
func (v *Venue) Cell(row, col int) byte { return v.cells[row][col] }

// SetCell places a character at a grid position. Used by the layout
// codec while populating a template.
func (v *Venue) SetCell(row, col int, c byte) { v.cells[row][col] = c }

// Clone returns a deep copy. Clones never share cells with their
// template, so concerts on the same venue keep independent occupancy.
func (v *Venue) Clone() *Venue {
	out := *v
	out.cells = make([][]byte, len(v.cells))
	for i, row := range v.cells {
		out.cells[i] = append([]byte(nil), row...)
	}
	return &out
}

// BandFor returns the band a 1-based seat number falls into.
func (v *Venue) BandFor(seat int) Band {
	switch {
	case seat <= v.LeftCols:
		return BandLeft
	case seat <= v.LeftCols+v.MiddleCols:
		return BandMiddle
	default:
		return BandRight
	}
}

// seatColumn maps a 1-based seat number to its grid column, accounting
// for the gap column before each band.
func (v *Venue) seatColumn(seat int) (int, bool) {
	switch {
	case seat < 1:
		return 0, false
	case seat <= v.LeftCols:
		return 1 + seat, true
	case seat <= v.LeftCols+v.MiddleCols:
		return 2 + seat, true
	case seat <= v.LeftCols+v.MiddleCols+v.RightCols:
		return 3 + seat, true
	}
	return 0, false
}

// zoneRow resolves a zone-local row number to its grid row: the Nth row
// whose boundary marker carries the zone letter. This matches the
// renderer's per-zone numbering, which resets after every spacer row.
func (v *Venue) zoneRow(zone Zone, row int) (int, bool) {
	if row < 1 {
		return 0, false
	}
	marker := zone.Marker()
	n := 0
	for i := 0; i < v.Rows; i++ {
		if v.cells[i][0] != marker {
			continue
		}
		n++
		if n == row {
			return i, true
		}
	}
	return 0, false
}

// SeatAvailable reports whether a seat exists and is still open.
func (v *Venue) SeatAvailable(zone Zone, row, seat int) bool {
	r, ok := v.zoneRow(zone, row)
	if !ok {
		return false
	}
	c, ok := v.seatColumn(seat)
	if !ok {
		return false
	}
	cell := v.cells[r][c]
	return cell != ' ' && cell != BookedCell
}

// Book marks one seat as taken. The cell is addressed from the grid
// geometry, so replaying a ledger line twice fails instead of silently
// rescanning for a seat label that no longer exists.
func (v *Venue) Book(zone Zone, row, seat int) error {
	r, ok := v.zoneRow(zone, row)
	if !ok {
		return fmt.Errorf("%w: %c%d", ErrRowNotFound, zone.Marker(), row)
	}
	c, ok := v.seatColumn(seat)
	if !ok {
		return fmt.Errorf("%w: %c%d seat %d", ErrSeatNotFound, zone.Marker(), row, seat)
	}
	switch v.cells[r][c] {
	case BookedCell:
		return fmt.Errorf("%w: %c%d seat %d", ErrSeatBooked, zone.Marker(), row, seat)
	case ' ':
		return fmt.Errorf("%w: %c%d seat %d", ErrSeatNotFound, zone.Marker(), row, seat)
	}
	v.cells[r][c] = BookedCell
	v.bookedSeats++
	return nil
}
