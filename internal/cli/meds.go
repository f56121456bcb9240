package cli

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pharmanet/pharmacy-console/internal/service/medication"
	"github.com/pharmanet/pharmacy-console/internal/session"
)

func (c *container) newMedsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meds",
		Short: "Browse and manage the medication catalog",
	}

	cmd.AddCommand(
		c.newMedsListCommand(),
		c.newMedsManufacturersCommand(),
		c.newMedsCreateCommand(),
		c.newMedsStockCommand(),
	)
	return cmd
}

func (c *container) newMedsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the public medication catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			medications, err := c.medications.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, medications)
		},
	}
}

func (c *container) newMedsManufacturersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "manufacturers",
		Short: "List known manufacturers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			manufacturers, err := c.medications.Manufacturers(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, manufacturers)
		},
	}
}

func (c *container) newMedsCreateCommand() *cobra.Command {
	var (
		payload    medication.CreateMedication
		imagePaths []string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Register a medication with its images",
		PreRunE: c.requireRole(session.RoleManager),
		RunE: func(cmd *cobra.Command, _ []string) error {
			images := make([]medication.ImageUpload, 0, len(imagePaths))
			for _, path := range imagePaths {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read image %s: %w", path, err)
				}
				images = append(images, medication.ImageUpload{
					Filename:    filepath.Base(path),
					ContentType: http.DetectContentType(data),
					Data:        data,
				})
			}

			created, err := c.medications.Create(cmd.Context(), payload, images)
			if err != nil {
				return err
			}
			return printJSON(cmd, created)
		},
	}

	cmd.Flags().StringVar(&payload.Name, "name", "", "medication name")
	cmd.Flags().StringVar(&payload.Description, "description", "", "medication description")
	cmd.Flags().Float64Var(&payload.PurchasePrice, "price", 0, "purchase price")
	cmd.Flags().Int64Var(&payload.ManufacturerID, "manufacturer", 0, "manufacturer id")
	cmd.Flags().StringSliceVar(&imagePaths, "image", nil, "image file, repeat for up to three")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("manufacturer")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}

func (c *container) newMedsStockCommand() *cobra.Command {
	var pharmacyID int64

	cmd := &cobra.Command{
		Use:     "stock",
		Short:   "List medications stocked by a pharmacy",
		PreRunE: c.requireRole(session.RoleEmployee),
		RunE: func(cmd *cobra.Command, _ []string) error {
			medications, err := c.pharmacies.Medications(cmd.Context(), pharmacyID)
			if err != nil {
				return err
			}
			return printJSON(cmd, medications)
		},
	}

	cmd.Flags().Int64Var(&pharmacyID, "pharmacy", 0, "pharmacy to inspect")
	_ = cmd.MarkFlagRequired("pharmacy")
	return cmd
}
