package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ticketdesk/model"
	"ticketdesk/service"
	"ticketdesk/store"
)

type appState int

const (
	stateSelectConcert appState = iota
	stateMenu
	stateCosts
	stateLayout
	stateBookings
	statePayments
	stateBookForm
	statePriceForm
	stateMessage
	stateError
)

// Session is the loaded world the UI operates on: catalog with replayed
// occupancy, ledger lines, and the caller's identity.
type Session struct {
	Catalog      *service.Catalog
	Customer     model.Customer
	Admin        bool
	Ledger       []string
	BookingsPath string
}

type appModel struct {
	session Session
	state   appState

	width  int
	height int

	concertList list.Model
	menuList    list.Model

	concert *model.Concert
	form    *promptForm

	message string
	err     error
}

// New builds the interactive menu over a loaded session.
func New(session Session) tea.Model {
	m := appModel{
		session: session,
		state:   stateSelectConcert,
	}
	m.concertList = newList("Select Concert")
	m.concertList.SetItems(buildConcertItems(session.Catalog.Concerts()))
	m.menuList = newList("Menu")
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateBookForm || m.state == statePriceForm {
			return m.handleFormKey(msg)
		}
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectConcert:
		m.concertList, cmd = m.concertList.Update(msg)
	case stateMenu:
		m.menuList, cmd = m.menuList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateSelectConcert:
		return header + "\n\n" + m.concertList.View()
	case stateMenu:
		return header + "\n\n" + m.menuList.View()
	case stateCosts:
		return header + "\n\n" + m.costsView() + "\n" + hint("Press esc to go back.")
	case stateLayout:
		return header + "\n\n" + m.seatMapView() + "\n" + hint("Press esc to go back.")
	case stateBookings:
		return header + "\n\n" + m.bookingsView() + "\n" + hint("Press esc to go back.")
	case statePayments:
		return header + "\n\n" + m.paymentsView() + "\n\n" + hint("Press esc to go back.")
	case stateBookForm, statePriceForm:
		return header + "\n\n" + m.form.view() + "\n\n" + hint("enter next • esc cancel • ctrl+c quit")
	case stateMessage:
		return header + "\n\n" + m.message + "\n\n" + hint("Press esc to go back.")
	case stateError:
		errLine := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error())
		return header + "\n\n" + errLine + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("ticketdesk")
	var sub []string
	if m.session.Admin {
		sub = append(sub, "Mode: admin")
	} else if m.session.Customer.Name != "" {
		sub = append(sub, fmt.Sprintf("Customer: %s", m.session.Customer.Name))
	}
	if m.concert != nil {
		sub = append(sub, fmt.Sprintf("Concert: %s • %s @ %s", m.concert.Artist, m.concert.Date, m.concert.VenueName))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}
	return title + meta
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit, true
	case "esc":
		next, cmd := m.goBack()
		return next, cmd, true
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateSelectConcert:
			item, ok := m.concertList.SelectedItem().(concertItem)
			if !ok {
				return m, nil, true
			}
			m.concert = item.concert
			m.menuList.SetItems(buildMenuItems(m.session.Admin))
			m.menuList.Select(0)
			m.state = stateMenu
			return m, nil, true
		case stateMenu:
			item, ok := m.menuList.SelectedItem().(menuItem)
			if !ok {
				return m, nil, true
			}
			return m.openMenuEntry(item.action)
		}
	}
	return m, nil, false
}

func (m appModel) openMenuEntry(action menuAction) (tea.Model, tea.Cmd, bool) {
	switch action {
	case actionCosts:
		m.state = stateCosts
	case actionLayout:
		m.state = stateLayout
	case actionBook:
		m.form = newBookingForm()
		m.state = stateBookForm
	case actionBookings:
		m.state = stateBookings
	case actionPayments:
		m.state = statePayments
	case actionUpdatePrices:
		m.form = newPriceForm()
		m.state = statePriceForm
	case actionBack:
		m.concert = nil
		m.state = stateSelectConcert
	}
	return m, nil, true
}

func (m appModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.form = nil
		m.state = stateMenu
		return m, nil
	}

	done := m.form.handleKey(msg)
	if !done {
		return m, nil
	}
	if m.state == statePriceForm {
		return m.submitPriceForm()
	}
	return m.submitBookingForm()
}

func (m appModel) submitBookingForm() (tea.Model, tea.Cmd) {
	zone, row, err := parseAisle(m.form.value(0))
	if err != nil {
		return m.fail(err)
	}
	seat, _ := strconv.Atoi(strings.TrimSpace(m.form.value(1)))
	count, _ := strconv.Atoi(strings.TrimSpace(m.form.value(2)))

	booking, err := service.Allocate(m.concert, zone, row, seat, count)
	if err != nil {
		return m.fail(err)
	}
	booking.ID = service.NextBookingID(m.session.Ledger, m.session.Customer.ID, m.concert.ID)
	booking.CustomerID = m.session.Customer.ID
	booking.CustomerName = m.session.Customer.Name

	line := booking.Encode()
	if err := store.AppendLine(m.session.BookingsPath, line); err != nil {
		slog.Warn("could not append booking", "path", m.session.BookingsPath, "err", err)
	}
	m.session.Ledger = append(m.session.Ledger, line)

	m.form = nil
	m.message = fmt.Sprintf("Booked %d seat(s) in %s row %d for a total of %d.",
		count, zone, row, booking.TotalPrice())
	m.state = stateMessage
	return m, nil
}

func (m appModel) submitPriceForm() (tea.Model, tea.Cmd) {
	zone, ok := model.ZoneFromName(strings.TrimSpace(m.form.value(0)))
	if !ok {
		return m.fail(fmt.Errorf("unknown zone %q", m.form.value(0)))
	}
	var prices [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(m.form.value(i+1)), 64)
		if err != nil {
			return m.fail(fmt.Errorf("price %q is not a number", m.form.value(i+1)))
		}
		prices[i] = v
	}
	m.concert.SetPrices(zone, prices[0], prices[1], prices[2])

	m.form = nil
	m.message = fmt.Sprintf("Updated %s prices to %.1f / %.1f / %.1f.", zone, prices[0], prices[1], prices[2])
	m.state = stateMessage
	return m, nil
}

func (m appModel) fail(err error) (tea.Model, tea.Cmd) {
	m.form = nil
	m.err = err
	m.state = stateError
	return m, nil
}

func (m appModel) goBack() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		m.concert = nil
		m.state = stateSelectConcert
	case stateCosts, stateLayout, stateBookings, statePayments:
		m.state = stateMenu
	case stateMessage, stateError:
		if m.concert != nil {
			m.state = stateMenu
		} else {
			m.state = stateSelectConcert
		}
	default:
		return m, nil
	}
	return m, nil
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.concertList.SetSize(m.width, h)
	m.menuList.SetSize(m.width, h)
}

// parseAisle splits an aisle number such as S2 into zone and row.
func parseAisle(input string) (model.Zone, int, error) {
	input = strings.TrimSpace(strings.ToUpper(input))
	if len(input) < 2 {
		return 0, 0, fmt.Errorf("want a zone letter followed by a row number, e.g. S2")
	}
	zone, ok := model.ZoneFromMarker(input[0])
	if !ok {
		return 0, 0, fmt.Errorf("zone letter must be S, T or V")
	}
	row, err := strconv.Atoi(input[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("row %q is not a number", input[1:])
	}
	return zone, row, nil
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}
