package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ticketdesk/service"
)

var layoutConcert int

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the seat layout of a concert's venue",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		concert, err := pickConcert(env, layoutConcert)
		if err != nil {
			return err
		}
		fmt.Print(service.RenderLayout(concert.Venue))
		return nil
	},
}

func init() {
	layoutCmd.Flags().IntVar(&layoutConcert, "concert", 1, "concert id")
}
