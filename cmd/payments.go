package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ticketdesk/service"
)

var paymentsConcert int

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Show total payment received for a concert",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !adminMode {
			return fmt.Errorf("payments requires admin mode")
		}
		env, err := loadEnv()
		if err != nil {
			return err
		}
		concert, err := pickConcert(env, paymentsConcert)
		if err != nil {
			return err
		}
		fmt.Printf("Total payment received for this concert is %d\n",
			service.TotalPayments(env.Ledger, concert.ID))
		return nil
	},
}

func init() {
	paymentsCmd.Flags().IntVar(&paymentsConcert, "concert", 1, "concert id")
}
