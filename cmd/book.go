package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"ticketdesk/model"
	"ticketdesk/service"
	"ticketdesk/store"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book consecutive seats for a concert",
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminMode {
			return fmt.Errorf("booking requires customer mode")
		}
		env, err := loadEnv()
		if err != nil {
			return err
		}

		concert, err := promptSelectConcert(env)
		if err != nil {
			return err
		}
		fmt.Print(service.RenderLayout(concert.Venue))

		zone, row, err := promptAisle()
		if err != nil {
			return err
		}
		seat, err := promptNumber("Enter the seat number")
		if err != nil {
			return err
		}
		count, err := promptNumber("Enter the number of seats to be booked")
		if err != nil {
			return err
		}

		booking, err := service.Allocate(concert, zone, row, seat, count)
		if err != nil {
			return err
		}
		booking.ID = service.NextBookingID(env.Ledger, env.Customer.ID, concert.ID)
		booking.CustomerID = env.Customer.ID
		booking.CustomerName = env.Customer.Name

		// Appending the encoded line is the only persistence step; the
		// grid is reconstructed from the ledger at the next load.
		if err := store.AppendLine(bookingsPath, booking.Encode()); err != nil {
			slog.Warn("could not append booking", "path", bookingsPath, "err", err)
		}

		fmt.Printf("Booked %d seat(s) in %s row %d for a total of %d\n",
			count, zone, row, booking.TotalPrice())
		return nil
	},
}

func promptSelectConcert(env *Env) (*model.Concert, error) {
	concertByLabel := make(map[string]*model.Concert)
	for _, c := range env.Catalog.Concerts() {
		label := fmt.Sprintf("%d • %s • %s @ %s (%d seats left)",
			c.ID, c.Artist, c.Date, c.VenueName, c.Venue.SeatsLeft())
		concertByLabel[label] = c
	}
	if len(concertByLabel) == 0 {
		return nil, fmt.Errorf("no concerts loaded")
	}

	selectConcert := promptui.Select{
		Label: "Select Concert",
		Items: maps.Keys(concertByLabel),
		Size:  10,
	}
	_, label, err := selectConcert.Run()
	if err != nil {
		return nil, err
	}
	concert, ok := concertByLabel[label]
	if !ok {
		return nil, fmt.Errorf("invalid concert")
	}
	return concert, nil
}

// promptAisle reads an aisle number such as S2 or V1: zone letter plus
// zone-local row number.
func promptAisle() (model.Zone, int, error) {
	prompt := promptui.Prompt{
		Label: "Enter the aisle number",
		Validate: func(input string) error {
			input = strings.TrimSpace(strings.ToUpper(input))
			if len(input) < 2 {
				return fmt.Errorf("want a zone letter followed by a row number, e.g. S2")
			}
			if _, ok := model.ZoneFromMarker(input[0]); !ok {
				return fmt.Errorf("zone letter must be S, T or V")
			}
			if _, err := strconv.Atoi(input[1:]); err != nil {
				return fmt.Errorf("row %q is not a number", input[1:])
			}
			return nil
		},
	}
	aisle, err := prompt.Run()
	if err != nil {
		return 0, 0, err
	}
	aisle = strings.TrimSpace(strings.ToUpper(aisle))
	zone, _ := model.ZoneFromMarker(aisle[0])
	row, _ := strconv.Atoi(aisle[1:])
	return zone, row, nil
}

func promptNumber(label string) (int, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			n, err := strconv.Atoi(strings.TrimSpace(input))
			if err != nil {
				return fmt.Errorf("%q is not a number", input)
			}
			if n < 1 {
				return fmt.Errorf("must be positive")
			}
			return nil
		},
	}
	raw, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(strings.TrimSpace(raw))
	return n, nil
}
