package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"ticketdesk/service"
)

var bookingsConcert int

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Show booking details for a concert",
	Long: `Show booking details for a concert. Customers see their own bookings;
admin mode shows every customer's bookings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		concert, err := pickConcert(env, bookingsConcert)
		if err != nil {
			return err
		}

		customerID := env.Customer.ID
		if env.Admin {
			customerID = -1
		}
		bookings := service.BookingsFor(env.Ledger, concert.ID, customerID)
		if len(bookings) == 0 {
			fmt.Println("No bookings found for this concert")
			return nil
		}

		summary := table.NewWriter()
		summary.SetOutputMirror(os.Stdout)
		summary.AppendHeader(table.Row{"Id", "Concert Date", "Artist", "Timing", "Venue", "Seats Booked", "Total Price"})
		for _, b := range bookings {
			summary.AppendRow(table.Row{
				b.ID, concert.Date, concert.Artist, concert.Timing,
				concert.VenueName, len(b.Seats), b.TotalPrice(),
			})
		}
		summary.Render()

		for _, b := range bookings {
			fmt.Printf("\nBooking Id: %d\n", b.ID)
			tickets := table.NewWriter()
			tickets.SetOutputMirror(os.Stdout)
			tickets.AppendHeader(table.Row{"Id", "Aisle", "Seat", "Zone", "Price"})
			for _, s := range b.Seats {
				tickets.AppendRow(table.Row{
					s.Seq, fmt.Sprintf("%c%d", s.Zone.Marker(), s.Row), s.Col, s.Zone.String(), s.Price,
				})
			}
			tickets.Render()
		}
		return nil
	},
}

func init() {
	bookingsCmd.Flags().IntVar(&bookingsConcert, "concert", 1, "concert id")
}
