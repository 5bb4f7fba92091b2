package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ticketdesk/logger"
	"ticketdesk/store"
	"ticketdesk/tui"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	customersPath string
	concertsPath  string
	bookingsPath  string
	venuePaths    []string
	adminMode     bool
	customerID    int
	password      string
	logPath       string
)

var rootCmd = &cobra.Command{
	Use:   "ticketdesk",
	Short: "Concert ticket bookkeeping from flat files",
	Long: `ticketdesk keeps venue seat maps, concerts and the booking ledger in
plain text files and lets you browse and book from the terminal.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(tui.New(env.Session()), tea.WithAltScreen()).Run()
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ticketdesk version",
	Run: func(cmd *cobra.Command, args []string) {
		if commit != "none" && commit != "" {
			fmt.Printf("ticketdesk %s (%s)\n", version, commit)
			return
		}
		fmt.Printf("ticketdesk %s\n", version)
	},
}

func Execute() {
	rootCmd.AddCommand(versionCmd, timingsCmd, costsCmd, layoutCmd, bookCmd, bookingsCmd, paymentsCmd)

	assets := store.DefaultAssetDir()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&customersPath, "customers", filepath.Join(assets, "customer.csv"), "customer file")
	pf.StringVar(&concertsPath, "concerts", filepath.Join(assets, "concert.csv"), "concert catalog file")
	pf.StringVar(&bookingsPath, "bookings", filepath.Join(assets, "bookings.csv"), "booking ledger file")
	pf.StringSliceVar(&venuePaths, "venues", defaultVenuePaths(assets),
		"venue layout files; the first is the default template")
	pf.BoolVar(&adminMode, "admin", false, "run in admin mode")
	pf.IntVar(&customerID, "customer", -1, "customer id")
	pf.StringVar(&password, "password", "", "customer password")
	pf.StringVar(&logPath, "log-file", "ticketdesk.log", "diagnostic log file")

	cobra.OnInitialize(func() { logger.Setup(logPath) })

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defaultVenuePaths lists every venue_*.txt template under the asset
// directory, with the default template first so it keeps its role as
// the fallback for unmatched venue names.
func defaultVenuePaths(assets string) []string {
	paths, err := filepath.Glob(filepath.Join(assets, "venue_*.txt"))
	if err != nil || len(paths) == 0 {
		return []string{filepath.Join(assets, "venue_default.txt")}
	}
	for i, p := range paths {
		if store.VenueName(p) == "default" && i > 0 {
			paths = append([]string{p}, append(paths[:i:i], paths[i+1:]...)...)
			break
		}
	}
	return paths
}
