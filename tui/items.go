package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"ticketdesk/model"
)

type menuAction int

const (
	actionCosts menuAction = iota
	actionLayout
	actionBook
	actionBookings
	actionPayments
	actionUpdatePrices
	actionBack
)

type concertItem struct {
	concert *model.Concert
}

func (i concertItem) Title() string {
	return fmt.Sprintf("%s — %s", i.concert.Artist, i.concert.Date)
}

func (i concertItem) Description() string {
	return fmt.Sprintf("%s • %s • %d seats left", i.concert.VenueName, i.concert.Timing, i.concert.Venue.SeatsLeft())
}

func (i concertItem) FilterValue() string {
	return i.concert.Artist
}

type menuItem struct {
	title  string
	desc   string
	action menuAction
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

func buildConcertItems(concerts []*model.Concert) []list.Item {
	items := make([]list.Item, 0, len(concerts))
	for _, c := range concerts {
		items = append(items, concertItem{concert: c})
	}
	return items
}

func buildMenuItems(admin bool) []list.Item {
	items := []list.Item{
		menuItem{"Ticket costs", "Prices per zone and band", actionCosts},
		menuItem{"Seat layout", "Current seat map with availability", actionLayout},
	}
	if admin {
		items = append(items,
			menuItem{"View bookings", "All bookings for this concert", actionBookings},
			menuItem{"Total payments", "Sum of all booking amounts", actionPayments},
			menuItem{"Update prices", "Change zone prices for this concert", actionUpdatePrices},
		)
	} else {
		items = append(items,
			menuItem{"Book seats", "Reserve seats in a zone row", actionBook},
			menuItem{"My bookings", "Your bookings for this concert", actionBookings},
		)
	}
	items = append(items, menuItem{"Back", "Choose another concert", actionBack})
	return items
}
