package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"ticketdesk/model"
	"ticketdesk/service"
)

var (
	markerStyle = lipgloss.NewStyle().Bold(true)
	freeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	bookedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func (m appModel) costsView() string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Zone", "Left", "Middle", "Right"})
	for _, zone := range []model.Zone{model.ZoneStanding, model.ZoneSeating, model.ZoneVIP} {
		t.AppendRow(table.Row{
			zone.String(),
			m.concert.Price(zone, model.BandLeft),
			m.concert.Price(zone, model.BandMiddle),
			m.concert.Price(zone, model.BandRight),
		})
	}
	return t.Render()
}

// seatMapView renders the venue grid with booked seats highlighted.
func (m appModel) seatMapView() string {
	v := m.concert.Venue
	var b strings.Builder
	num := 1
	for i := 0; i < v.Rows; i++ {
		marker := v.Cell(i, 0)
		if marker == ' ' {
			num = 1
			b.WriteByte('\n')
			continue
		}
		b.WriteString(markerStyle.Render(string(marker) + strconv.Itoa(num)))
		for j := 1; j < v.Width()-1; j++ {
			switch c := v.Cell(i, j); c {
			case ' ':
				b.WriteByte(' ')
			case model.BookedCell:
				b.WriteString("[" + bookedStyle.Render(string(c)) + "]")
			default:
				b.WriteString("[" + freeStyle.Render(string(c)) + "]")
			}
		}
		b.WriteString(markerStyle.Render(string(v.Cell(i, v.Width()-1)) + strconv.Itoa(num)))
		b.WriteByte('\n')
		num++
	}

	legend := fmt.Sprintf("%s booked  %s available",
		bookedStyle.Render("X"), freeStyle.Render("n"))
	counts := fmt.Sprintf("Total: %d  Booked: %d  Left: %d",
		v.TotalSeats(), v.BookedSeats(), v.SeatsLeft())
	return b.String() + "\n" + legend + "\n" + hint(counts)
}

func (m appModel) bookingsView() string {
	customerID := -1
	if !m.session.Admin {
		customerID = m.session.Customer.ID
	}
	bookings := service.BookingsFor(m.session.Ledger, m.concert.ID, customerID)
	if len(bookings) == 0 {
		return "No bookings found for this concert."
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Booking", "Customer", "Seats", "Total"})
	for _, b := range bookings {
		t.AppendRow(table.Row{b.ID, b.CustomerName, len(b.Seats), b.TotalPrice()})
	}
	return t.Render()
}

func (m appModel) paymentsView() string {
	total := service.TotalPayments(m.session.Ledger, m.concert.ID)
	return fmt.Sprintf("Total payments received: %d", total)
}
