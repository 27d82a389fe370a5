package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"wedding-planner/internal/usecase"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the admin dashboard counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		stats, err := usecase.NewStatsService(rt.repo, rt.logger).Dashboard(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if statsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Users\t%d\n", stats.TotalUsers)
		fmt.Fprintf(w, "Bookings\t%d\n", stats.TotalBookings)
		fmt.Fprintf(w, "Vendors\t%d\n", stats.TotalVendors)
		fmt.Fprintf(w, "Unread messages\t%d\n", stats.UnreadMessages)
		fmt.Fprintf(w, "Pending applications\t%d\n", stats.PendingApplications)
		return w.Flush()
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statsCmd)
}
