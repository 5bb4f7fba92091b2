package cmd

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"ticketdesk/model"
	"ticketdesk/service"
	"ticketdesk/store"
	"ticketdesk/tui"
)

// Env is everything a command needs after the load sequence: templates,
// concerts with replayed occupancy, the raw ledger lines and the
// caller's identity.
type Env struct {
	Catalog  *service.Catalog
	Customer model.Customer
	Admin    bool
	Ledger   []string
}

// Session converts the env into what the interactive UI needs.
func (e *Env) Session() tui.Session {
	return tui.Session{
		Catalog:      e.Catalog,
		Customer:     e.Customer,
		Admin:        e.Admin,
		Ledger:       e.Ledger,
		BookingsPath: bookingsPath,
	}
}

// loadEnv runs the whole load sequence: venue templates, customer
// identity, concert catalog, then ledger replay. Any missing file aborts
// the sequence; the admin path replays leniently, the customer path
// strictly.
func loadEnv() (*Env, error) {
	env := &Env{Admin: adminMode}

	cat := service.NewCatalog()
	for _, path := range venuePaths {
		lines, err := store.ReadLines(path)
		if err != nil {
			return nil, err
		}
		venue, err := service.ParseLayout(store.VenueName(path), lines)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		cat.AddVenue(venue)
	}

	if !adminMode {
		customer, err := resolveCustomer()
		if err != nil {
			return nil, err
		}
		env.Customer = customer
	}

	concertLines, err := store.ReadLines(concertsPath)
	if err != nil {
		return nil, err
	}
	if err := cat.LoadConcerts(concertLines); err != nil {
		return nil, err
	}

	ledger, err := store.ReadLines(bookingsPath)
	if err != nil {
		return nil, err
	}
	if err := service.ReplayLedger(ledger, cat, !adminMode); err != nil {
		return nil, err
	}

	env.Catalog = cat
	env.Ledger = ledger
	return env, nil
}

// resolveCustomer authenticates the flagged customer id, or registers a
// new customer when no id was given.
func resolveCustomer() (model.Customer, error) {
	lines, err := store.ReadLines(customersPath)
	if err != nil {
		return model.Customer{}, err
	}
	customers, err := service.ParseCustomers(lines)
	if err != nil {
		return model.Customer{}, err
	}

	if customerID >= 0 {
		return service.Authenticate(customers, customerID, password)
	}

	namePrompt := promptui.Prompt{
		Label: "Enter your name",
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("name is required")
			}
			if strings.Contains(input, ",") {
				return fmt.Errorf("names may not contain commas")
			}
			return nil
		},
	}
	name, err := namePrompt.Run()
	if err != nil {
		return model.Customer{}, err
	}
	pwPrompt := promptui.Prompt{
		Label: "Enter your password",
		Mask:  '*',
		Validate: func(input string) error {
			if input == "" {
				return fmt.Errorf("password is required")
			}
			return nil
		},
	}
	pw, err := pwPrompt.Run()
	if err != nil {
		return model.Customer{}, err
	}

	customer := service.Register(customers, name, pw)
	record := fmt.Sprintf("%d,%s,%s", customer.ID, customer.Name, customer.Password)
	if err := store.AppendLine(customersPath, record); err != nil {
		return model.Customer{}, err
	}
	return customer, nil
}

// pickConcert resolves the --concert flag against the catalog.
func pickConcert(env *Env, id int) (*model.Concert, error) {
	concert := env.Catalog.Concert(id)
	if concert == nil {
		return nil, fmt.Errorf("%w %d", service.ErrUnknownConcert, id)
	}
	return concert, nil
}
