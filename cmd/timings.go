package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var timingsCmd = &cobra.Command{
	Use:   "timings",
	Short: "List all concerts with seat availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Date", "Artist", "Timing", "Venue", "Total Seats", "Seats Booked", "Seats Left"})
		for _, c := range env.Catalog.Concerts() {
			t.AppendRow(table.Row{
				c.ID, c.Date, c.Artist, c.Timing, c.VenueName,
				c.Venue.TotalSeats(), c.Venue.BookedSeats(), c.Venue.SeatsLeft(),
			})
		}
		t.Render()
		return nil
	},
}
