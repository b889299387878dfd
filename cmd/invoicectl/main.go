// invoicectl is the admin companion of the server: it seeds the
// Estonian default reference data and reports overdue invoices.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"invoicing-backend/internal/config"
	"invoicing-backend/internal/logger"
	"invoicing-backend/internal/models"
	"invoicing-backend/internal/money"
	"invoicing-backend/internal/repository"
	"invoicing-backend/internal/seed"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg := config.Load()
	if err := logger.Setup(logger.LogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	root := &cobra.Command{
		Use:   "invoicectl",
		Short: "Admin tooling for the invoicing backend",
	}
	root.AddCommand(seedCmd(cfg), overdueCmd(cfg))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func seedCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install default VAT rates, payment terms and penalty rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := config.InitDB(cfg.DatabaseDSN)
			db.AutoMigrate(
				&models.VatRate{},
				&models.PaymentTerms{},
				&models.PenaltyRate{},
				&models.CompanySettings{},
			)
			if err := seed.Defaults(db); err != nil {
				return err
			}
			log := logger.WithComponent("invoicectl")
			log.Info().Msg("default reference data installed")
			return nil
		},
	}
}

func overdueCmd(cfg *config.Config) *cobra.Command {
	var minTotal string

	cmd := &cobra.Command{
		Use:   "overdue",
		Short: "List unpaid invoices past their due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			min, err := money.Parse(minTotal)
			if err != nil {
				return fmt.Errorf("invalid --min-total %q: %w", minTotal, err)
			}

			db := config.InitDB(cfg.DatabaseDSN)
			invoices := repository.NewInvoiceRepository(db)

			now := time.Now()
			overdue, err := invoices.ListOverdue(now)
			if err != nil {
				return err
			}
			overdue = overdueAtLeast(overdue, min)

			for _, inv := range overdue {
				name := ""
				if inv.Client != nil {
					name = inv.Client.Name
				}
				fmt.Printf("%s\t%s\t%s\t%s EUR\n",
					inv.Number, inv.DueDate.Format("2006-01-02"), name, inv.Total.StringFixed(2))
			}
			fmt.Printf("%d overdue invoice(s)\n", len(overdue))
			return nil
		},
	}
	cmd.Flags().StringVar(&minTotal, "min-total", "", "only report invoices with at least this total")
	return cmd
}

// overdueAtLeast filters the report to invoices whose total reaches the
// threshold. A zero threshold keeps everything.
func overdueAtLeast(invoices []models.Invoice, min decimal.Decimal) []models.Invoice {
	if min.IsZero() {
		return invoices
	}
	kept := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Total.GreaterThanOrEqual(min) {
			kept = append(kept, inv)
		}
	}
	return kept
}
