package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pharmanet/pharmacy-console/internal/export"
	"github.com/pharmanet/pharmacy-console/internal/report"
	"github.com/pharmanet/pharmacy-console/internal/service/pharmacy"
	"github.com/pharmanet/pharmacy-console/internal/session"
)

func (c *container) newSalesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Sales reports and recording",
	}

	cmd.AddCommand(
		c.newSalesTopCommand(),
		c.newSalesTrendsCommand(),
		c.newSalesExportCommand(),
		c.newSalesRecordCommand(),
	)
	return cmd
}

func (c *container) newSalesTopCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "top",
		Short:   "Show the top-sold medications",
		PreRunE: c.requireRole(session.RoleManager),
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := c.pharmacies.MostSold(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printJSON(cmd, report.RankMostSold(items, limit))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", pharmacy.DefaultMostSoldLimit, "number of medications to show")
	return cmd
}

func (c *container) newSalesTrendsCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:     "trends",
		Short:   "Show daily sales over the recent window",
		PreRunE: c.requireRole(session.RoleManager),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			points, err := c.pharmacies.SaleTrends(ctx, days)
			if err != nil {
				return err
			}

			now := c.clock.Now(ctx)
			filled := report.FillDailyTrends(points, now.AddDate(0, 0, -(days-1)), now)
			return printJSON(cmd, filled)
		},
	}

	cmd.Flags().IntVar(&days, "days", pharmacy.DefaultTrendDays, "window size in days")
	return cmd
}

func (c *container) newSalesExportCommand() *cobra.Command {
	var (
		days       int
		outputPath string
	)

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export the daily sales series as CSV",
		PreRunE: c.requireRole(session.RoleManager),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			points, err := c.pharmacies.SaleTrends(ctx, days)
			if err != nil {
				return err
			}

			now := c.clock.Now(ctx)
			filled := report.FillDailyTrends(points, now.AddDate(0, 0, -(days-1)), now)

			out := cmd.OutOrStdout()
			if outputPath != "" {
				file, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer file.Close()
				out = file
			}
			return export.WriteCSV(out, filled)
		},
	}

	cmd.Flags().IntVar(&days, "days", pharmacy.DefaultTrendDays, "window size in days")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write CSV to a file instead of stdout")
	return cmd
}

func (c *container) newSalesRecordCommand() *cobra.Command {
	var (
		pharmacyID   int64
		medicationID int64
		quantity     int
		unitPrice    int
	)

	cmd := &cobra.Command{
		Use:     "record",
		Short:   "Record a sale of one medication",
		PreRunE: c.requireRole(session.RoleEmployee),
		RunE: func(cmd *cobra.Command, _ []string) error {
			sale := pharmacy.SaleRequest{
				SaleItems: []pharmacy.SaleItem{{
					MedicationID: medicationID,
					Quantity:     quantity,
					UnitPrice:    unitPrice,
				}},
			}
			message, err := c.pharmacies.RecordSale(cmd.Context(), pharmacyID, sale)
			if err != nil {
				return err
			}
			cmd.Println(message)
			return nil
		},
	}

	cmd.Flags().Int64Var(&pharmacyID, "pharmacy", 0, "pharmacy the sale happened in")
	cmd.Flags().Int64Var(&medicationID, "medication", 0, "medication sold")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "units sold")
	cmd.Flags().IntVar(&unitPrice, "price", 0, "unit price in minor currency units")
	_ = cmd.MarkFlagRequired("pharmacy")
	_ = cmd.MarkFlagRequired("medication")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}
