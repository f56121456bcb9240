package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pharmanet/pharmacy-console/internal/service/pharmacy"
	"github.com/pharmanet/pharmacy-console/internal/session"
)

func (c *container) newInventoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage pharmacy inventory",
	}

	cmd.AddCommand(
		c.newInventoryRegisterCommand(),
		c.newInventoryUpdateCommand(),
	)
	return cmd
}

func (c *container) newInventoryRegisterCommand() *cobra.Command {
	var (
		pharmacyID   int64
		medicationID int64
		quantity     int
		expiration   string
	)

	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Register a medication batch in a pharmacy",
		PreRunE: c.requireRole(session.RoleManager),
		RunE: func(cmd *cobra.Command, _ []string) error {
			expirationDate, err := time.Parse(time.DateOnly, expiration)
			if err != nil {
				return err
			}

			message, err := c.pharmacies.RegisterInventory(cmd.Context(), pharmacyID, pharmacy.InventoryRegistration{
				MedicationID:   medicationID,
				Quantity:       quantity,
				ExpirationDate: expirationDate,
			})
			if err != nil {
				return err
			}
			cmd.Println(message)
			return nil
		},
	}

	cmd.Flags().Int64Var(&pharmacyID, "pharmacy", 0, "pharmacy to stock")
	cmd.Flags().Int64Var(&medicationID, "medication", 0, "medication to register")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "units in the batch")
	cmd.Flags().StringVar(&expiration, "expires", "", "expiration date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("pharmacy")
	_ = cmd.MarkFlagRequired("medication")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("expires")
	return cmd
}

func (c *container) newInventoryUpdateCommand() *cobra.Command {
	var (
		pharmacyID   int64
		medicationID int64
		quantity     int
		expiration   string
	)

	cmd := &cobra.Command{
		Use:     "update",
		Short:   "Adjust quantity or expiration of stocked inventory",
		PreRunE: c.requireRole(session.RoleEmployee),
		RunE: func(cmd *cobra.Command, _ []string) error {
			update := pharmacy.InventoryUpdate{MedicationID: medicationID}
			if cmd.Flags().Changed("quantity") {
				update.Quantity = &quantity
			}
			if cmd.Flags().Changed("expires") {
				expirationDate, err := time.Parse(time.DateOnly, expiration)
				if err != nil {
					return err
				}
				update.ExpirationDate = &expirationDate
			}

			message, err := c.pharmacies.UpdateInventory(cmd.Context(), pharmacyID, update)
			if err != nil {
				return err
			}
			cmd.Println(message)
			return nil
		},
	}

	cmd.Flags().Int64Var(&pharmacyID, "pharmacy", 0, "pharmacy holding the inventory")
	cmd.Flags().Int64Var(&medicationID, "medication", 0, "medication to adjust")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "new quantity")
	cmd.Flags().StringVar(&expiration, "expires", "", "new expiration date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("pharmacy")
	_ = cmd.MarkFlagRequired("medication")
	return cmd
}
