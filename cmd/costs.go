package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"ticketdesk/model"
)

var costsConcert int

var costsCmd = &cobra.Command{
	Use:   "costs",
	Short: "Show ticket costs per zone and band for a concert",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		concert, err := pickConcert(env, costsConcert)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Zone", "Left", "Middle", "Right"})
		for _, zone := range []model.Zone{model.ZoneStanding, model.ZoneSeating, model.ZoneVIP} {
			t.AppendRow(table.Row{
				zone.String(),
				concert.Price(zone, model.BandLeft),
				concert.Price(zone, model.BandMiddle),
				concert.Price(zone, model.BandRight),
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	costsCmd.Flags().IntVar(&costsConcert, "concert", 1, "concert id")
}
