package cmd

import (
	"fmt"

	"wedding-planner/internal/usecase"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert bootstrap data",
	Long: `Insert bootstrap data.

Subcommands:
  admin    - create the admin account from ADMIN_NAME, ADMIN_EMAIL, ADMIN_PASSWORD
  vendors  - insert the sample vendor catalogue into an empty vendors table`,
}

var seedAdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Create the default admin account if absent",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		seeder := usecase.NewSeedService(rt.repo, rt.config.Security.BcryptCost, rt.logger)
		admin := rt.config.Admin

		created, err := seeder.SeedAdmin(cmd.Context(), admin.Name, admin.Email, admin.Password)
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}

		out := cmd.OutOrStdout()
		if !created {
			fmt.Fprintf(out, "Admin user already exists: %s\n", admin.Email)
			return nil
		}
		fmt.Fprintf(out, "Admin user created: %s\n", admin.Email)
		return nil
	},
}

var seedVendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "Insert the sample vendors when the directory is empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		seeder := usecase.NewSeedService(rt.repo, rt.config.Security.BcryptCost, rt.logger)

		inserted, err := seeder.SeedVendors(cmd.Context())
		if err != nil {
			return fmt.Errorf("seed vendors: %w", err)
		}

		if inserted == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Vendors table is not empty, nothing inserted")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d sample vendors\n", inserted)
		return nil
	},
}

func init() {
	seedCmd.AddCommand(seedAdminCmd, seedVendorsCmd)
	rootCmd.AddCommand(seedCmd)
}
